package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daniellbaii/mp-fishnchips/configs"
	"github.com/daniellbaii/mp-fishnchips/controllers"
	"github.com/daniellbaii/mp-fishnchips/middlewares"
	"github.com/daniellbaii/mp-fishnchips/repository"
	"github.com/daniellbaii/mp-fishnchips/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store repository.Store) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	menuSvc := services.NewMenuService()
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	cartSvc := services.NewCartService(cartRepo, menuSvc)
	orderSvc := services.NewOrderService(orderRepo, cartSvc)

	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Catalog (public, read-only)
	m := r.Group("/menu")
	{
		m.GET("", menuCtrl.List)
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/popular", menuCtrl.Popular)
		m.GET("/:id", menuCtrl.Detail)
	}

	r.GET("/checkout/pickup-times", orderCtrl.PickupTimes)

	// Cart and orders are scoped to the anonymous session cookie
	sess := r.Group("/", middlewares.SessionMiddleware(cfg.SessionSecret))
	{
		sess.GET("/cart", cartCtrl.Get)
		sess.POST("/cart/items", cartCtrl.Add)
		sess.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		sess.DELETE("/cart/items/:id", cartCtrl.Remove)
		sess.DELETE("/cart", cartCtrl.Clear)
		sess.POST("/cart/open", cartCtrl.Open)
		sess.POST("/cart/close", cartCtrl.Close)
		sess.POST("/cart/toggle", cartCtrl.Toggle)

		sess.POST("/orders", orderCtrl.Create)
		sess.GET("/orders/:id", orderCtrl.Detail)
	}
}
