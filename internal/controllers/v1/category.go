package v1

import (
	"net/http"

	"github.com/I4AN/MagnetWallet/internal/categories"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for the category taxonomy
// with the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetCategories)
	}

	{
		r.OPTIONS("/selection", httputil.OptionsGet)
		r.GET("/selection", GetCategorySelection)
	}
}

type CategoryListResponse struct {
	Data  []categories.Group `json:"data"`  // The taxonomy in its fixed order
	Error *string            `json:"error"` // The error, if any occurred
}

// CategorySelection is a consistent (group, category) pair.
type CategorySelection struct {
	Group    categories.Group `json:"group"`
	Category string           `json:"category" example:"Supermercado"`
}

type CategorySelectionResponse struct {
	Data  *CategorySelection `json:"data"`  // The resolved selection
	Error *string            `json:"error"` // The error, if any occurred
}

// GetCategories returns the static taxonomy.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: categories.Groups()})
}

// GetCategorySelection resolves a (group, category) selection. Without
// query parameters the default selection is returned; a category that is
// not part of the selected group resets to the group's first entry.
func GetCategorySelection(c *gin.Context) {
	groupTitle := c.Query("group")
	if groupTitle == "" {
		groupTitle = categories.DefaultGroup().Title
	}

	group, resolved := categories.ResolveSelection(groupTitle, c.Query("category"))
	c.JSON(http.StatusOK, CategorySelectionResponse{Data: &CategorySelection{Group: group, Category: resolved}})
}
