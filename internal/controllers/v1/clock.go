package v1

import "time"

// now is the clock used to derive the default month. Tests replace it to
// keep month selection deterministic.
var now = time.Now
