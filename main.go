package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"ergoshop/internal/account"
	"ergoshop/internal/cart"
	"ergoshop/internal/catalog"
	"ergoshop/internal/config"
	"ergoshop/internal/handlers"
	"ergoshop/internal/invoice"
	"ergoshop/internal/middleware"
	"ergoshop/internal/store"
)

func main() {
	config.Load()

	durable, err := store.NewFileStore(config.AppEnv.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	session := store.NewMemoryStore()

	log.Println("store opened at:", config.AppEnv.DataDir)

	cat := catalog.New(durable)
	if err := cat.Ensure(); err != nil {
		log.Fatal("catalog seed failed:", err)
	}

	cartLedger := cart.NewLedger(durable)
	registry := account.NewRegistry(durable, session)
	invoices, err := invoice.NewLedger(durable)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()

	r.GET("/", handlers.Home())

	r.GET("/products", handlers.GetProducts(cat))
	r.GET("/categories", handlers.GetCategories(cat))

	r.GET("/cart", handlers.GetCart(cartLedger))
	r.POST("/cart/items", handlers.AddCartItem(cartLedger))
	r.PUT("/cart/items/:index", handlers.SetCartQuantity(cartLedger))
	r.DELETE("/cart/items/:index", handlers.RemoveCartItem(cartLedger))
	r.POST("/cart/clear", handlers.ClearCart(cartLedger))

	r.POST("/auth/register", handlers.Register(registry))
	r.POST("/auth/login", handlers.Login(registry, config.AppEnv.SessionSecret, config.AppEnv.SessionTTL))
	r.POST("/auth/reset-password", handlers.ResetPassword(registry))
	r.POST("/auth/logout", middleware.RequireSession(config.AppEnv.SessionSecret), handlers.Logout(registry))

	r.POST("/checkout", handlers.Checkout(cartLedger, invoices, config.AppEnv.SessionSecret))

	r.GET("/invoices", middleware.RequireSession(config.AppEnv.SessionSecret), handlers.GetMyInvoices(invoices))

	admin := r.Group("/admin/api")
	{
		admin.GET("/invoices", handlers.GetAllInvoices(invoices))
		admin.GET("/dashboard", handlers.GetDashboard(registry, invoices))
	}

	r.Run(":" + config.AppEnv.Port)
}
