package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"EasyShop/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	)
	require.NoError(t, err)

	return db
}

// 建立測試路由，以假登入中間件植入UserID
func setupCartTestRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("UserID", userID)
		c.Next()
	})

	router.GET("/cart", func(c *gin.Context) {
		GetCartHandler(c, db)
	})
	router.POST("/cart/products/:productID", func(c *gin.Context) {
		AddToCartHandler(c, db)
	})
	router.PUT("/cart/products/:productID", func(c *gin.Context) {
		UpdateCartItemQuantityHandler(c, db)
	})
	router.DELETE("/cart", func(c *gin.Context) {
		ClearCartHandler(c, db)
	})

	return router
}

func seedHandlerProduct(t *testing.T, db *gorm.DB, productID uint, name string, price string) {
	t.Helper()

	product := models.Product{
		ProductID: productID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     100,
	}
	require.NoError(t, db.Create(&product).Error)
}

func doRequest(t *testing.T, router *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func cartItems(t *testing.T, response map[string]interface{}) map[string]interface{} {
	t.Helper()

	cart, ok := response["cart"].(map[string]interface{})
	require.True(t, ok)
	items, ok := cart["items"].(map[string]interface{})
	require.True(t, ok)
	return items
}

func TestGetCartHandlerEmpty(t *testing.T) {
	db := setupHandlerTestDB(t)
	router := setupCartTestRouter(t, db, 5)

	recorder := doRequest(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cart))
	items, ok := cart["items"].(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestAddToCartHandler(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedHandlerProduct(t, db, 10, "滑鼠", "25.00")
	router := setupCartTestRouter(t, db, 5)

	recorder := doRequest(t, router, http.MethodPost, "/cart/products/10", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	items := cartItems(t, response)
	require.Contains(t, items, "10")

	item := items["10"].(map[string]interface{})
	assert.Equal(t, float64(1), item["quantity"])

	//再次新增同一商品，數量累加為2
	recorder = doRequest(t, router, http.MethodPost, "/cart/products/10", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	item = cartItems(t, response)["10"].(map[string]interface{})
	assert.Equal(t, float64(2), item["quantity"])
}

func TestAddToCartHandlerUnknownProduct(t *testing.T) {
	db := setupHandlerTestDB(t)
	router := setupCartTestRouter(t, db, 5)

	recorder := doRequest(t, router, http.MethodPost, "/cart/products/999", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateCartItemQuantityHandler(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedHandlerProduct(t, db, 10, "滑鼠", "25.00")
	router := setupCartTestRouter(t, db, 5)

	doRequest(t, router, http.MethodPost, "/cart/products/10", nil)

	recorder := doRequest(t, router, http.MethodPut, "/cart/products/10", gin.H{"quantity": 7})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	item := cartItems(t, response)["10"].(map[string]interface{})
	assert.Equal(t, float64(7), item["quantity"])
}

func TestUpdateCartItemQuantityHandlerZeroRemoves(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedHandlerProduct(t, db, 10, "滑鼠", "25.00")
	router := setupCartTestRouter(t, db, 5)

	doRequest(t, router, http.MethodPost, "/cart/products/10", nil)

	recorder := doRequest(t, router, http.MethodPut, "/cart/products/10", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, cartItems(t, response))
}

func TestUpdateCartItemQuantityHandlerNegative(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedHandlerProduct(t, db, 10, "滑鼠", "25.00")
	router := setupCartTestRouter(t, db, 5)

	doRequest(t, router, http.MethodPost, "/cart/products/10", nil)

	recorder := doRequest(t, router, http.MethodPut, "/cart/products/10", gin.H{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestClearCartHandler(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedHandlerProduct(t, db, 10, "滑鼠", "25.00")
	seedHandlerProduct(t, db, 11, "鍵盤", "60.00")
	router := setupCartTestRouter(t, db, 5)

	doRequest(t, router, http.MethodPost, "/cart/products/10", nil)
	doRequest(t, router, http.MethodPost, "/cart/products/11", nil)

	recorder := doRequest(t, router, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cart))
	items, ok := cart["items"].(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, items)
}
