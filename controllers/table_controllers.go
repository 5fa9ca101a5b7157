package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/yeremiapane/qr-menu-app/config"
	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// tableURL is the public menu address a table's QR code points at.
func tableURL(slug string, t models.Table) string {
	token := t.Token
	if token == "" {
		token = strconv.Itoa(int(t.ID))
	}
	return fmt.Sprintf("/r/%s?t=%s", slug, token)
}

// GetAllTables -> tables of the caller's restaurant with their QR URLs
func (tc *TableController) GetAllTables(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var restaurant models.Restaurant
	if err := tc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var tables []models.Table
	if err := tc.DB.Where("restaurant_id = ?", restaurantID).Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]gin.H, 0, len(tables))
	for _, t := range tables {
		out = append(out, gin.H{
			"id":        t.ID,
			"name":      t.Name,
			"token":     t.Token,
			"is_active": t.IsActive,
			"url":       tableURL(restaurant.Slug, t),
		})
	}
	c.JSON(http.StatusOK, out)
}

// CreateTable -> new table with a generated QR token
func (tc *TableController) CreateTable(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Short opaque token, enough entropy for a QR payload
	token := uuid.NewString()[:8]

	name := body.Name
	if name == "" {
		var count int64
		tc.DB.Model(&models.Table{}).Where("restaurant_id = ?", restaurantID).Count(&count)
		name = fmt.Sprintf("Table %d", count+1)
	}

	table := models.Table{
		RestaurantID: restaurantID,
		Name:         name,
		Token:        token,
		IsActive:     true,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table created: %s (restaurant=%d)", table.Name, restaurantID)

	c.JSON(http.StatusCreated, gin.H{
		"id":    table.ID,
		"name":  table.Name,
		"token": table.Token,
	})
}

// DeleteTable -> remove a table of the caller's restaurant
func (tc *TableController) DeleteTable(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("table_id"))

	var table models.Table
	if err := tc.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Table deleted")
}

// GetTableQRCode -> PNG of the table's public menu URL, ready to print
func (tc *TableController) GetTableQRCode(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("table_id"))

	var table models.Table
	if err := tc.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	var restaurant models.Restaurant
	if err := tc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	qrData := config.BaseURL() + tableURL(restaurant.Slug, table)
	png, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
