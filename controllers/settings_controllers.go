package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// GetSettings -> branding of the caller's restaurant
func (sc *SettingsController) GetSettings(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var restaurant models.Restaurant
	if err := sc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":          restaurant.Name,
		"theme_color":   restaurant.ThemeColor,
		"wifi_ssid":     restaurant.WifiSSID,
		"wifi_password": restaurant.WifiPassword,
		"currency":      "TRY",
	})
}

// UpdateSettings -> partial branding update
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var restaurant models.Restaurant
	if err := sc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var patch struct {
		Name         *string `json:"name"`
		ThemeColor   *string `json:"theme_color"`
		WifiSSID     *string `json:"wifi_ssid"`
		WifiPassword *string `json:"wifi_password"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if patch.Name != nil {
		restaurant.Name = *patch.Name
	}
	if patch.ThemeColor != nil {
		restaurant.ThemeColor = *patch.ThemeColor
	}
	if patch.WifiSSID != nil {
		restaurant.WifiSSID = patch.WifiSSID
	}
	if patch.WifiPassword != nil {
		restaurant.WifiPassword = patch.WifiPassword
	}

	if err := sc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Settings updated")
}
