package daos

import (
	"testing"

	"EasyShop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCartByUserIDEmpty(t *testing.T) {
	db := setupTestDB(t)

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestAddToCartNewItem(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item, ok := cart.Items[10]
	require.True(t, ok)
	assert.Equal(t, uint(1), item.Quantity)
	assert.Equal(t, "滑鼠", item.Product.Name)
	assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("25.00")))
}

func TestAddToCartTwiceIncrementsQuantity(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))
	require.NoError(t, AddToCart(db, 10, 5))

	//同一商品只會有一筆紀錄，數量累加
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", 5).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(2), cart.Items[10].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("50.00")))
}

func TestAddToCartSeparatePerUser(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))
	require.NoError(t, AddToCart(db, 10, 6))
	require.NoError(t, AddToCart(db, 10, 6))

	cartA, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	cartB, err := GetCartByUserID(db, 6)
	require.NoError(t, err)

	assert.Equal(t, uint(1), cartA.Items[10].Quantity)
	assert.Equal(t, uint(2), cartB.Items[10].Quantity)
}

func TestEditCartOverwritesQuantity(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))
	require.NoError(t, EditCart(db, 10, 5, 7))

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(7), cart.Items[10].Quantity)
}

func TestEditCartZeroDeletesRow(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))
	require.NoError(t, EditCart(db, 10, 5, 0))

	//數量為0的紀錄不會被保留
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", 5).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestEditCartAbsentRowIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	//與AddToCart不同，EditCart不會新增紀錄
	require.NoError(t, EditCart(db, 10, 5, 3))

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestEditCartNegativeQuantity(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))

	err := EditCart(db, 10, 5, -1)
	assert.ErrorIs(t, err, ErrNegativeQuantity)

	//原數量不受影響
	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(1), cart.Items[10].Quantity)
}

func TestClearCart(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)
	seedProduct(t, db, 11, "鍵盤", "60.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))
	require.NoError(t, AddToCart(db, 11, 5))
	require.NoError(t, AddToCart(db, 10, 6))

	require.NoError(t, ClearCart(db, 5))

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	//不影響其他使用者的購物車
	other, err := GetCartByUserID(db, 6)
	require.NoError(t, err)
	assert.Len(t, other.Items, 1)
}

func TestGetCartJoinsProductSnapshot(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "電腦週邊", "")
	product := models.Product{
		ProductID:   10,
		Name:        "滑鼠",
		Price:       decimal.RequireFromString("25.50"),
		CategoryID:  category.CategoryID,
		Description: "無線滑鼠",
		SubCategory: "mouse",
		Stock:       30,
		Featured:    true,
		ImageURL:    "/uploads/mouse.png",
	}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, AddToCart(db, 10, 5))
	require.NoError(t, EditCart(db, 10, 5, 2))

	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)

	item := cart.Items[10]
	assert.Equal(t, "滑鼠", item.Product.Name)
	assert.Equal(t, "無線滑鼠", item.Product.Description)
	assert.Equal(t, "mouse", item.Product.SubCategory)
	assert.Equal(t, uint(30), item.Product.Stock)
	assert.True(t, item.Product.Featured)
	assert.Equal(t, "/uploads/mouse.png", item.Product.ImageURL)
	assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("51.00")))
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("51.00")))
}

// 完整情境:加入兩次、清為0、再修改不存在的紀錄
func TestCartLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, 10, "滑鼠", "25.00", 1)

	require.NoError(t, AddToCart(db, 10, 5))
	cart, err := GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(1), cart.Items[10].Quantity)

	require.NoError(t, AddToCart(db, 10, 5))
	cart, err = GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(2), cart.Items[10].Quantity)

	require.NoError(t, EditCart(db, 10, 5, 0))
	cart, err = GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.NoError(t, EditCart(db, 10, 5, 3))
	cart, err = GetCartByUserID(db, 5)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
