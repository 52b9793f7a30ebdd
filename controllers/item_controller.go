package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kbs-store/models"
	"kbs-store/services"
)

type ItemController struct {
	Catalog *services.CatalogService
}

func NewItemController(catalog *services.CatalogService) *ItemController {
	return &ItemController{Catalog: catalog}
}

func itemCacheKey(filter models.ItemFilter) string {
	featured := "any"
	if filter.Featured != nil {
		featured = strconv.FormatBool(*filter.Featured)
	}
	inStock := "any"
	if filter.InStock != nil {
		inStock = strconv.FormatBool(*filter.InStock)
	}
	category := filter.Category
	if category == "" {
		category = "any"
	}
	return fmt.Sprintf("items_list_c%s_f%s_s%s", category, featured, inStock)
}

func invalidateItemCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "items_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary List items
// @Description Get catalog items, optionally filtered, newest first
// @Tags Items
// @Produce json
// @Param category query string false "Exact category match"
// @Param featured query bool false "Featured items only"
// @Param inStock query bool false "In-stock items only"
// @Success 200 {array} models.Item
// @Failure 500 {object} models.ErrorResponse
// @Router /api/items [get]
func (ctrl *ItemController) GetItems(c *gin.Context) {
	filter := models.ItemFilter{Category: c.Query("category")}

	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}
	if raw := c.Query("inStock"); raw != "" {
		inStock := raw == "true"
		filter.InStock = &inStock
	}

	cacheKey := itemCacheKey(filter)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	items, err := ctrl.Catalog.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(items); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get item
// @Description Get a single catalog item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} models.ErrorResponse
// @Router /api/items/{id} [get]
func (ctrl *ItemController) GetItem(c *gin.Context) {
	item, err := ctrl.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Create item
// @Description Create a catalog item. Accepts JSON, or multipart form with an image file that is pushed to the asset store first.
// @Tags Items
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Item
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/items [post]
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := ctrl.Catalog.Create(c.Request.Context(), req, imageFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateItemCache()
	c.JSON(http.StatusCreated, item)
}

// @Summary Update item
// @Description Partially update a catalog item; omitted fields keep their stored values
// @Tags Items
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/items/{id} [put]
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := ctrl.Catalog.Update(c.Request.Context(), c.Param("id"), req, imageFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateItemCache()
	c.JSON(http.StatusOK, item)
}

// @Summary Delete item
// @Description Delete a catalog item permanently
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/items/{id} [delete]
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	if err := ctrl.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	invalidateItemCache()
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

func imageFile(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDuplicateID),
		errors.Is(err, models.ErrInvalidPhone),
		errors.Is(err, models.ErrInvalidPin):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
