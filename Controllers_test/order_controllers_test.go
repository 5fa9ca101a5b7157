package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/qr-menu-app/controllers"
	"github.com/yeremiapane/qr-menu-app/models"
	"github.com/yeremiapane/qr-menu-app/utils"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatal(err)
	}

	db.Create(&models.Restaurant{Name: "Demo Restoran", Slug: "demo"})
	db.Create(&models.Category{RestaurantID: 1, Name: "Drinks", IsActive: true})
	db.Create(&models.MenuItem{
		RestaurantID: 1,
		CategoryID:   1,
		Name:         "Cola",
		Price:        50,
		IsActive:     true,
	})
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/api/public/orders", orderCtrl.CreateOrder)
	router.GET("/api/public/orders/:order_id", orderCtrl.GetOrderByID)

	admin := router.Group("/api/admin")
	admin.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("restaurant_id", uint(1))
		c.Set("role", "owner")
	})
	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return router
}

func placeOrder(t *testing.T, router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/public/orders", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderComputesTotalServerSide(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    3,
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 2},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(100), resp["total"])
	assert.Equal(t, float64(3), resp["table"])

	orderID := int(resp["orderId"].(float64))

	var order models.Order
	assert.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, float64(100), order.TotalAmount)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, float64(50), order.Items[0].UnitPrice)
	assert.Equal(t, float64(100), order.Items[0].LineTotal)
}

func TestCreateOrderSnapshotsPriceAtOrderTime(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    1,
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Price edit after the fact must not change the stored snapshot
	db.Model(&models.MenuItem{}).Where("id = ?", 1).Update("price", 999)

	var item models.OrderItem
	assert.NoError(t, db.First(&item).Error)
	assert.Equal(t, float64(50), item.UnitPrice)
	assert.Equal(t, float64(50), item.LineTotal)
}

func TestCreateOrderDropsInvalidLines(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	// One good line, one zero-quantity line, one unknown item
	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    2,
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 2},
			{"menuItemId": 1, "quantity": 0},
			{"menuItemId": 9999, "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(100), resp["total"])

	var itemCount int64
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(1), itemCount)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	// All lines invalid -> 400, and no rows persisted at all
	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    2,
		"items": []map[string]interface{}{
			{"menuItemId": 9999, "quantity": 1},
			{"menuItemId": 1, "quantity": 0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestCreateOrderUnknownSlug(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "nope",
		"tableNumber":    1,
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderByID(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    5,
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	orderID := int(createResp["orderId"].(float64))

	req := httptest.NewRequest(http.MethodGet, "/api/public/orders/"+strconv.Itoa(orderID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var getResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &getResp))
	assert.Equal(t, "PENDING", getResp["status"])
	assert.Equal(t, float64(5), getResp["table"])
	items := getResp["items"].([]interface{})
	assert.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Cola", first["name"])
	assert.Equal(t, float64(100), first["total"])

	// Unknown id -> 404
	req = httptest.NewRequest(http.MethodGet, "/api/public/orders/424242", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    1,
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	orderID := int(createResp["orderId"].(float64))

	setStatus := func(status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"status": status})
		req := httptest.NewRequest(http.MethodPut,
			"/api/admin/orders/"+strconv.Itoa(orderID)+"/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Forward and backward transitions are both allowed
	for _, status := range []string{"ACCEPTED", "PREPARING", "READY", "SERVED", "PENDING", "CANCELLED"} {
		w := setStatus(status)
		assert.Equal(t, http.StatusOK, w.Code, "status %s should be accepted", status)
	}

	// Anything outside the fixed set is rejected
	w2 := setStatus("DELIVERED")
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	// Unknown order -> 404
	body, _ := json.Marshal(map[string]string{"status": "READY"})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/424242/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	assert.Equal(t, http.StatusNotFound, w3.Code)
}

func TestGetAllOrdersScopedToRestaurant(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	// Second restaurant with its own order
	db.Create(&models.Restaurant{Name: "Other", Slug: "other"})
	db.Create(&models.MenuItem{RestaurantID: 2, CategoryID: 1, Name: "Tea", Price: 30, IsActive: true})

	w := placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "demo",
		"tableNumber":    1,
		"items":          []map[string]interface{}{{"menuItemId": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = placeOrder(t, router, map[string]interface{}{
		"restaurantSlug": "other",
		"tableNumber":    2,
		"items":          []map[string]interface{}{{"menuItemId": 2, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Caller belongs to restaurant 1 and must only see its order
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var listResp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Len(t, listResp, 1)
	assert.Equal(t, float64(1), listResp[0]["table"])
}
