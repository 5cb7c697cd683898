package v1

import (
	"io"

	"github.com/I4AN/MagnetWallet/internal/feed"
	"github.com/gin-gonic/gin"
)

// streamSnapshots forwards feed snapshots to the client as server-sent
// events until the client disconnects. The subscription is stopped when
// the handler returns, releasing the feed resources.
func streamSnapshots[T any](c *gin.Context, sub *feed.Subscription[T]) {
	defer sub.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-sub.C():
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
