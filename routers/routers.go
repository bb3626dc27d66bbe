package routers

import (
	"EasyShop/handlers"
	"EasyShop/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"net/http"
)

func SetupRouters(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	//建立Gin路由器
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	//設定商品圖片靜態資源路徑
	router.Static("/uploads", "./uploads")

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	////無須權限，使用中間件檢查是否登入
	router.Use(middleware.AuthMiddleware(db))
	{
		//查詢商品分類列表
		router.GET("/categories", func(context *gin.Context) {
			handlers.GetAllCategoriesHandler(context, db)
		})
		//查詢商品分類
		router.GET("/categories/:categoryID", func(context *gin.Context) {
			handlers.GetCategoryHandler(context, db)
		})
		//查詢分類下的所有商品
		router.GET("/categories/:categoryID/products", func(context *gin.Context) {
			handlers.GetProductsByCategoryHandler(context, db)
		})
		//查詢商品列表
		router.GET("/products", func(context *gin.Context) {
			handlers.GetProductListHandler(context, db, rdb)
		})
		//依條件搜尋商品
		router.GET("/products/search", func(context *gin.Context) {
			handlers.SearchProductsHandler(context, db)
		})
		//查詢商品詳細資料
		router.GET("/products/:productID", func(context *gin.Context) {
			handlers.GetProductDataHandler(context, db)
		})
		//註冊帳號
		router.POST("/register", func(context *gin.Context) {
			handlers.RegisterHandler(context, db)
		})
		//登入帳號
		router.POST("/login", func(context *gin.Context) {
			handlers.LoginHandler(context, db)
		})

		////需要登入，使用中間件檢查是否登入
		loginRequired := router.Group("/")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			//查詢購物車
			loginRequired.GET("/cart", func(context *gin.Context) {
				handlers.GetCartHandler(context, db)
			})
			//新增商品至購物車
			loginRequired.POST("/cart/products/:productID", func(context *gin.Context) {
				handlers.AddToCartHandler(context, db)
			})
			//更新購物車商品數量
			loginRequired.PUT("/cart/products/:productID", func(context *gin.Context) {
				handlers.UpdateCartItemQuantityHandler(context, db)
			})
			//清空購物車
			loginRequired.DELETE("/cart", func(context *gin.Context) {
				handlers.ClearCartHandler(context, db)
			})
			//查詢使用者資料
			loginRequired.GET("/profile", func(context *gin.Context) {
				handlers.GetUserProfileHandler(context, db)
			})
			//修改使用者資料
			loginRequired.PUT("/profile", func(context *gin.Context) {
				handlers.UpdateUserProfileHandler(context, db)
			})
			//送出訂單並清除購物車內對應商品
			loginRequired.POST("/orders", func(context *gin.Context) {
				handlers.SendOrderHandler(context, db, rdb)
			})
			//查詢訂單列表
			loginRequired.GET("/orders", func(context *gin.Context) {
				handlers.GetOrderListHandler(context, db)
			})
			//查詢訂單詳細資訊
			loginRequired.GET("/orders/:orderID", func(context *gin.Context) {
				handlers.GetOrderDataHandler(context, db)
			})
			//登出
			loginRequired.POST("/logout", func(context *gin.Context) {
				handlers.LogOutHandler(context, db)
			})
		}

		////需要admin身分，使用中間件檢查是否登入及admin權限
		adminRequired := router.Group("/")
		adminRequired.Use(middleware.CheckLoginMiddleware(), middleware.CheckAdminPermissionMiddleware())
		{
			//新增商品分類
			adminRequired.POST("/categories", func(context *gin.Context) {
				handlers.CreateCategoryHandler(context, db)
			})
			//更新商品分類
			adminRequired.PUT("/categories/:categoryID", func(context *gin.Context) {
				handlers.UpdateCategoryHandler(context, db)
			})
			//刪除商品分類
			adminRequired.DELETE("/categories/:categoryID", func(context *gin.Context) {
				handlers.DeleteCategoryHandler(context, db)
			})
			//查詢使用者列表
			adminRequired.GET("/admin/users", func(context *gin.Context) {
				handlers.GetUserListHandler(context, db)
			})
			//上傳商品圖片
			adminRequired.POST("/admin/image", func(context *gin.Context) {
				handlers.UploadImageHandler(context)
			})
			//新增商品
			adminRequired.POST("/products", func(context *gin.Context) {
				handlers.CreateProductHandler(context, db, rdb)
			})
			//修改商品
			adminRequired.PUT("/products/:productID", func(context *gin.Context) {
				handlers.UpdateProductHandler(context, db, rdb)
			})
			//刪除商品
			adminRequired.DELETE("/products/:productID", func(context *gin.Context) {
				handlers.DeleteProductHandler(context, db, rdb)
			})
		}
	}

	return router
}
