package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

func itemResponse(i models.MenuItem) gin.H {
	return gin.H{
		"id":          i.ID,
		"category_id": i.CategoryID,
		"name":        i.Name,
		"price":       i.Price,
		"currency":    i.Currency,
		"description": i.Description,
		"image_url":   i.ImageURL,
		"is_active":   i.IsActive,
		"sort_order":  i.SortOrder,
	}
}

// GetAllItems -> items of the caller's restaurant, optionally filtered
// by ?category_id=
func (ic *ItemController) GetAllItems(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	query := ic.DB.Where("restaurant_id = ?", restaurantID)
	if catID := c.Query("category_id"); catID != "" {
		query = query.Where("category_id = ?", catID)
	}

	var items []models.MenuItem
	if err := query.Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, i := range items {
		out = append(out, itemResponse(i))
	}
	c.JSON(http.StatusOK, out)
}

// CreateItem (owner only). The category must belong to the same
// restaurant.
func (ic *ItemController) CreateItem(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		CategoryID  *uint    `json:"category_id"`
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
		Currency    *string  `json:"currency"`
		ImageURL    *string  `json:"image_url"`
		SortOrder   int      `json:"sort_order"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.CategoryID == nil || body.Name == nil || body.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing required fields"))
		return
	}

	var category models.Category
	if err := ic.DB.Where("id = ? AND restaurant_id = ?", *body.CategoryID, restaurantID).
		First(&category).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category"))
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   *body.CategoryID,
		Name:         *body.Name,
		Description:  body.Description,
		Price:        *body.Price,
		Currency:     "TRY",
		ImageURL:     body.ImageURL,
		SortOrder:    body.SortOrder,
		IsActive:     true,
	}
	if body.Currency != nil {
		item.Currency = *body.Currency
	}
	if body.IsActive != nil {
		item.IsActive = *body.IsActive
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (restaurant=%d)", item.Name, restaurantID)

	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "msg": "Item created"})
}

// UpdateItem (owner only). Pointer fields make partial updates
// explicit; a category move is re-validated against the tenant.
func (ic *ItemController) UpdateItem(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := ic.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	var patch struct {
		CategoryID  *uint    `json:"category_id"`
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Currency    *string  `json:"currency"`
		ImageURL    *string  `json:"image_url"`
		SortOrder   *int     `json:"sort_order"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if patch.CategoryID != nil {
		var category models.Category
		if err := ic.DB.Where("id = ? AND restaurant_id = ?", *patch.CategoryID, restaurantID).
			First(&category).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category"))
			return
		}
		item.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Currency != nil {
		item.Currency = *patch.Currency
	}
	if patch.ImageURL != nil {
		item.ImageURL = patch.ImageURL
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.IsActive != nil {
		item.IsActive = *patch.IsActive
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Item updated")
}

// DeleteItem (owner only). Past orders keep their price snapshots, so
// deleting an item never rewrites order history.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := ic.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Item deleted")
}
