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

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder -> public order placement from the menu page.
//
// The client submits only (menuItemId, quantity) pairs; prices are
// resolved against the live menu and snapshotted onto the order items,
// so a client-supplied total is never trusted. Lines with quantity < 1
// or an item id outside the restaurant are dropped silently, matching
// the cart behaviour the frontend relies on.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		RestaurantSlug string `json:"restaurantSlug"`
		TableNumber    int    `json:"tableNumber"`
		Items          []struct {
			MenuItemID uint `json:"menuItemId"`
			Quantity   int  `json:"quantity"`
		} `json:"items"`
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.RestaurantSlug == "" || body.TableNumber == 0 || len(body.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing required fields"))
		return
	}

	var restaurant models.Restaurant
	if err := oc.DB.Where("slug = ?", body.RestaurantSlug).First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	var totalAmount float64
	var orderItems []models.OrderItem

	for _, line := range body.Items {
		if line.Quantity < 1 {
			continue
		}

		var menuItem models.MenuItem
		if err := oc.DB.Where("id = ? AND restaurant_id = ?", line.MenuItemID, restaurant.ID).
			First(&menuItem).Error; err != nil {
			continue
		}

		lineTotal := menuItem.Price * float64(line.Quantity)
		totalAmount += lineTotal

		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			UnitPrice:  menuItem.Price,
			LineTotal:  lineTotal,
		})
	}

	if len(orderItems) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no valid items in order"))
		return
	}

	order := models.Order{
		RestaurantID: restaurant.ID,
		TableNumber:  body.TableNumber,
		Status:       models.OrderPending,
		TotalAmount:  totalAmount,
		Note:         body.Note,
	}

	// Order header and its lines commit as one unit; a partial order
	// must never be observable.
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		return tx.Create(&orderItems).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d placed for %s table %d (total=%.2f, items=%d)",
		order.ID, restaurant.Slug, order.TableNumber, totalAmount, len(orderItems))

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "Order placed successfully",
		"orderId": order.ID,
		"total":   totalAmount,
		"table":   order.TableNumber,
	})
}

// GetOrderByID -> public status poll. No tenant scoping: the diner has
// no session, only the order id handed back at placement.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("Items.MenuItem").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	items := make([]gin.H, 0, len(order.Items))
	for _, i := range order.Items {
		items = append(items, gin.H{
			"name":     i.MenuItem.Name,
			"quantity": i.Quantity,
			"total":    i.LineTotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        order.ID,
		"status":    order.Status,
		"table":     order.TableNumber,
		"total":     order.TotalAmount,
		"createdAt": order.CreatedAt,
		"items":     items,
	})
}

// GetAllOrders -> staff view of the caller's restaurant, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var orders []models.Order
	if err := oc.DB.Where("restaurant_id = ?", restaurantID).
		Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items := make([]gin.H, 0, len(o.Items))
		for _, i := range o.Items {
			items = append(items, gin.H{
				"name":       i.MenuItem.Name,
				"quantity":   i.Quantity,
				"unit_price": i.UnitPrice,
			})
		}
		out = append(out, gin.H{
			"id":         o.ID,
			"table":      o.TableNumber,
			"total":      o.TotalAmount,
			"status":     o.Status,
			"itemsCount": len(o.Items),
			"note":       o.Note,
			"createdAt":  o.CreatedAt,
			"items":      items,
		})
	}
	c.JSON(http.StatusOK, out)
}

// UpdateOrderStatus -> staff move an order to any status in the fixed
// set. Membership is enforced, direction is not.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	restaurantID, err := currentRestaurantID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidOrderStatuses[body.Status] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	order.Status = body.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d status -> %s", order.ID, order.Status)

	c.JSON(http.StatusOK, gin.H{"msg": "Status updated", "status": order.Status})
}
