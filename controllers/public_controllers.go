package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
	"gorm.io/gorm"
)

type PublicController struct {
	DB *gorm.DB
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{DB: db}
}

// GetMenu -> unauthenticated menu projection for one restaurant.
// Only active categories and active items are returned, both ordered
// by (sort_order, id). Categories without active items stay in the
// response.
func (pc *PublicController) GetMenu(c *gin.Context) {
	slug := c.Param("slug")

	var restaurant models.Restaurant
	if err := pc.DB.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	var categories []models.Category
	if err := pc.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("sort_order asc, id asc").
		Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	responseCategories := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		var items []models.MenuItem
		if err := pc.DB.Where("category_id = ? AND is_active = ?", cat.ID, true).
			Order("sort_order asc, id asc").
			Find(&items).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		activeItems := make([]gin.H, 0, len(items))
		for _, i := range items {
			activeItems = append(activeItems, gin.H{
				"id":          i.ID,
				"name":        i.Name,
				"description": i.Description,
				"price":       i.Price,
				"currency":    i.Currency,
				"image_url":   i.ImageURL,
				"sort_order":  i.SortOrder,
			})
		}

		responseCategories = append(responseCategories, gin.H{
			"id":    cat.ID,
			"name":  cat.Name,
			"items": activeItems,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant_name": restaurant.Name,
		"slug":            restaurant.Slug,
		"categories":      responseCategories,
	})
}
