package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Ping -> session check, echoes the resolved tenant and role
func (ac *AdminController) Ping(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	role, _ := c.Get("role")

	c.JSON(http.StatusOK, gin.H{
		"ok":            true,
		"restaurant_id": restaurantID,
		"role":          role,
	})
}

type demoItem struct {
	category    string
	name        string
	description string
	price       float64
	imageURL    string
}

var demoCategories = []string{"Başlangıçlar", "Ana Yemekler", "İçecekler", "Tatlılar"}

var demoItems = []demoItem{
	{"Başlangıçlar", "Mercimek Çorbası", "Geleneksel süzme mercimek çorbası, kızarmış ekmek ile.", 120.0, "https://images.unsplash.com/photo-1547592166-23acbe3226bf?w=500&q=80"},
	{"Başlangıçlar", "Paçanga Böreği", "Pastırmalı ve kaşarlı çıtır börek.", 180.0, "https://images.unsplash.com/photo-1626804475297-411d8c6b553e?w=500&q=80"},
	{"Ana Yemekler", "Izgara Köfte", "Dana kıymadan özel baharatlarla hazırlanmış ızgara köfte. Pilav ile.", 450.0, "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=500&q=80"},
	{"Ana Yemekler", "Tavuk Şiş", "Marine edilmiş yumuşak tavuk göğsü şişleri.", 380.0, "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=500&q=80"},
	{"İçecekler", "Ev Yapımı Limonata", "Taze naneli ferahlatıcı limonata.", 90.0, "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=500&q=80"},
	{"İçecekler", "Ayran", "Yayık ayranı, bol köpüklü.", 50.0, "https://images.unsplash.com/photo-1626139589334-a16f9fa12613?w=500&q=80"},
	{"Tatlılar", "Fıstıklı Baklava", "Antep fıstıklı çıtır baklava (3 dilim).", 220.0, "https://images.unsplash.com/photo-1597075687490-8f673c6c17f6?w=500&q=80"},
	{"Tatlılar", "Sütlaç", "Fırınlanmış köy sütlacı.", 140.0, "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=500&q=80"},
}

// SeedDemo -> idempotent demo menu for the caller's restaurant.
// Categories and items are upserted by (restaurant_id, name), so
// repeated calls never duplicate rows.
func (ac *AdminController) SeedDemo(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var restaurant models.Restaurant
	if err := ac.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	categories := make(map[string]models.Category)
	for idx, name := range demoCategories {
		var cat models.Category
		err := ac.DB.Where("restaurant_id = ? AND name = ?", restaurantID, name).First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cat = models.Category{
				RestaurantID: restaurantID,
				Name:         name,
				SortOrder:    idx + 1,
				IsActive:     true,
			}
			if err := ac.DB.Create(&cat).Error; err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		} else if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		categories[name] = cat
	}

	for _, d := range demoItems {
		cat, ok := categories[d.category]
		if !ok {
			continue
		}

		var existing models.MenuItem
		err := ac.DB.Where("restaurant_id = ? AND name = ?", restaurantID, d.name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		desc := d.description
		img := d.imageURL
		item := models.MenuItem{
			RestaurantID: restaurantID,
			CategoryID:   cat.ID,
			Name:         d.name,
			Description:  &desc,
			Price:        d.price,
			ImageURL:     &img,
			IsActive:     true,
		}
		if err := ac.DB.Create(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.InfoLogger.Printf("Demo data seeded for restaurant %d", restaurantID)

	c.JSON(http.StatusOK, gin.H{
		"msg":        "Demo data seeded successfully",
		"restaurant": restaurant.Name,
	})
}
