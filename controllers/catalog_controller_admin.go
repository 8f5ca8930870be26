package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"endlessvault/catalog"
)

// AdminController owns the catalog record editor plus the admin listing,
// which shares the pipeline with the shopper view but keeps its own
// pagination state.
type AdminController struct {
	Editor *catalog.Editor
	Store  *catalog.Store
	View   *catalog.View
}

func (a *AdminController) List(c *gin.Context) {
	a.View.SetQuery(c.Query("q"))

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			a.View.SetPage(page)
		}
	}

	res, params := a.View.Page()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetch items success",
		"items":      res.Items,
		"count":      res.TotalMatches,
		"page":       params.Page,
		"totalPages": res.TotalPages,
		"pageRange":  catalog.PageRange(params.Page, res.TotalPages),
	})
}

func (a *AdminController) Create(c *gin.Context) {
	var input catalog.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	item, err := a.Editor.Create(ctx, input)
	if err != nil {
		if errors.Is(err, catalog.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all fields and provide an image."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item created", "item": item})
}

func (a *AdminController) Update(c *gin.Context) {
	id := c.Param("id")

	var fields catalog.ItemFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := a.Editor.Update(ctx, id, fields); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully", "id": id})
}

// Delete removes the record and pulls the admin page back into range when
// the deletion emptied the last visible page.
func (a *AdminController) Delete(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := a.Editor.Delete(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	a.View.ClampPage()

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully", "id": id})
}
