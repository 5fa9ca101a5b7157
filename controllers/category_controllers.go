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

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories -> categories of the caller's restaurant
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var categories []models.Category
	if err := cc.DB.Where("restaurant_id = ?", restaurantID).
		Order("sort_order asc, id asc").
		Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{
			"id":         cat.ID,
			"name":       cat.Name,
			"sort_order": cat.SortOrder,
			"is_active":  cat.IsActive,
		})
	}
	c.JSON(http.StatusOK, out)
}

// CreateCategory (owner only)
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
		IsActive  *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name required"))
		return
	}

	category := models.Category{
		RestaurantID: restaurantID,
		Name:         body.Name,
		SortOrder:    body.SortOrder,
		IsActive:     true,
	}
	if body.IsActive != nil {
		category.IsActive = *body.IsActive
	}

	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Category created: %s (restaurant=%d)", category.Name, restaurantID)

	c.JSON(http.StatusCreated, gin.H{"id": category.ID, "msg": "Category created"})
}

// UpdateCategory (owner only). Only fields present in the payload are
// applied; absent fields leave the row untouched.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	if err := cc.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&category).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var patch struct {
		Name      *string `json:"name"`
		SortOrder *int    `json:"sort_order"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.SortOrder != nil {
		category.SortOrder = *patch.SortOrder
	}
	if patch.IsActive != nil {
		category.IsActive = *patch.IsActive
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Category updated")
}

// DeleteCategory (owner only). Blocked while the category still owns
// menu items; there is no cascade.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	if err := cc.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&category).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var itemCount int64
	if err := cc.DB.Model(&models.MenuItem{}).
		Where("category_id = ?", category.ID).
		Count(&itemCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if itemCount > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cannot delete category with existing items"))
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Category deleted")
}
