package database

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the demo tenant on a fresh database so the app is
// usable immediately after first start. A database that already holds
// a restaurant is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := models.Restaurant{
		Name: "Demo Restoran",
		Slug: "demo-restoran",
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := models.User{
		RestaurantID: demo.ID,
		Email:        "owner@demo.com",
		PasswordHash: string(hashed),
		Role:         "owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	if err := seedMenuItems(db, demo); err != nil {
		return err
	}

	utils.InfoLogger.Println("Database seeded with initial data.")
	return nil
}

func seedMenuItems(db *gorm.DB, restaurant models.Restaurant) error {
	names := []string{"Başlangıçlar", "Ana Yemekler", "İçecekler"}
	image := "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=500&q=80"

	for idx, name := range names {
		category := models.Category{
			RestaurantID: restaurant.ID,
			Name:         name,
			SortOrder:    idx + 1,
			IsActive:     true,
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		for i := 1; i <= 2; i++ {
			desc := fmt.Sprintf("Lezzetli %s %d", strings.ToLower(name), i)
			img := image
			item := models.MenuItem{
				RestaurantID: restaurant.ID,
				CategoryID:   category.ID,
				Name:         fmt.Sprintf("%s Ürün %d", name, i),
				Description:  &desc,
				Price:        100.0*float64(idx+1) + float64(i*10),
				SortOrder:    i,
				ImageURL:     &img,
				IsActive:     true,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
