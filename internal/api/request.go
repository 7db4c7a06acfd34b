package api

import (
	"back_office/internal/store" // Paging parameters
	"net/http"                   // HTTP status codes
	"strconv"                    // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
)

// pageFromQuery reads page, page_size and sort from the query string
func pageFromQuery(c *gin.Context) store.Page {
	page := 1                         // Default page number
	pageSize := store.DefaultPageSize // Default page size
	// Check and set page number from query params
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= store.MaxPageSize {
			pageSize = v // Set page size
		}
	}
	return store.Page{Number: page, Size: pageSize, Sort: c.Query("sort")}
}

// idParam parses the :id path parameter, answering 400 when it is not a positive integer
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the request body, answering 400 when it is malformed
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return false
	}
	return true
}
