package api

import (
	"back_office/internal/service" // Business logic
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateCategoryHandler creates a category
func CreateCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryCreateRequest
		if !bindJSON(c, &req) {
			return
		}
		cat, err := catalog.CreateCategory(c.Request.Context(), req.Name, req.Order, req.Description)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCategoryResponse(*cat))
	}
}

// UpdateCategoryHandler overwrites the supplied fields of a category
func UpdateCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req CategoryUpdateRequest
		if !bindJSON(c, &req) {
			return
		}
		cat, err := catalog.UpdateCategory(c.Request.Context(), id, req.Patch())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toCategoryResponse(*cat))
	}
}

// GetCategoryHandler returns an active category
func GetCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		cat, err := catalog.GetCategory(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toCategoryResponse(*cat))
	}
}

// ListCategoriesHandler returns a page of categories
func ListCategoriesHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := catalog.ListCategories(c.Request.Context(), pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toCategoryResponse))
	}
}

// DeleteCategoryHandler soft deletes a category; its products stay active
func DeleteCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := catalog.DeleteCategory(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// CreateProductHandler creates a product in an existing category
func CreateProductHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductCreateRequest
		if !bindJSON(c, &req) {
			return
		}
		p, err := catalog.CreateProduct(c.Request.Context(), req.Name, req.Count, req.CategoryID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, toProductResponse(*p))
	}
}

// UpdateProductHandler overwrites the supplied fields of a product
func UpdateProductHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req ProductUpdateRequest
		if !bindJSON(c, &req) {
			return
		}
		p, err := catalog.UpdateProduct(c.Request.Context(), id, req.Patch())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

// GetProductHandler returns a product with its category name
func GetProductHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		p, err := catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

// ListProductsHandler returns a page of products
func ListProductsHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := catalog.ListProducts(c.Request.Context(), pageFromQuery(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toPage(res, toProductResponse))
	}
}

// DeleteProductHandler soft deletes a product
func DeleteProductHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := catalog.DeleteProduct(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
