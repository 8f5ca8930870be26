package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"endlessvault/catalog"
	"endlessvault/models"
)

// BrowseController serves the shopper-facing catalog listing through the
// filter/sort/paginate pipeline.
type BrowseController struct {
	Store *catalog.Store
	View  *catalog.View
}

// List applies q, brand, sort and page query parameters to the browse
// view and returns the visible page. Changing any filter resets to page 1;
// an out-of-range page request leaves the current page untouched.
func (b *BrowseController) List(c *gin.Context) {
	b.View.SetQuery(c.Query("q"))
	b.View.SetBrand(c.Query("brand"))
	b.View.SetSort(catalog.ParseSort(c.Query("sort")))

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			b.View.SetPage(page)
		}
	}

	res, params := b.View.Page()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetch items success",
		"items":      res.Items,
		"count":      res.TotalMatches,
		"page":       params.Page,
		"totalPages": res.TotalPages,
		"pageRange":  catalog.PageRange(params.Page, res.TotalPages),
		"brands":     models.Brands,
	})
}
