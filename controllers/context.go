package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errNoTenant = errors.New("restaurant context missing")

// currentRestaurantID reads the tenant resolved by the auth middleware.
// Every admin query must filter by this id.
func currentRestaurantID(c *gin.Context) (uint, error) {
	v, exists := c.Get("restaurant_id")
	if !exists {
		return 0, errNoTenant
	}
	id, ok := v.(uint)
	if !ok {
		return 0, errNoTenant
	}
	return id, nil
}
