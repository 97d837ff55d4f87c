package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/notifications"
)

// SetupRoutes registers the whole API surface. The hub and the stateful
// handlers are constructed in main and passed in; nothing here owns
// process-wide state.
func SetupRoutes(r *gin.Engine, hub *notifications.Hub, orders *handlers.OrderHandler, payments *handlers.PaymentHandler) {
	api := r.Group("/api")

	// Liveness probe
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	// ── Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
		auth.GET("/verify", middleware.AuthRequired(), handlers.Verify)
	}

	// ── Menu ───────────────────────────────────────────────────────
	menu := api.Group("/menu")
	{
		menu.GET("", handlers.GetMenu)
		menu.GET("/featured", handlers.GetFeaturedMenu)

		adminMenu := menu.Group("", middleware.AuthRequired(), middleware.AdminRequired())
		{
			adminMenu.POST("", handlers.CreateMenuItem)
			adminMenu.PUT("/:id", handlers.UpdateMenuItem)
			adminMenu.DELETE("/:id", handlers.DeleteMenuItem)
		}
	}

	// ── Orders ─────────────────────────────────────────────────────
	orderRoutes := api.Group("/orders", middleware.AuthRequired())
	{
		orderRoutes.POST("", orders.Create)
		orderRoutes.GET("/user", orders.UserOrders)

		adminOrders := orderRoutes.Group("", middleware.AdminRequired())
		{
			adminOrders.GET("", orders.AllOrders)
			adminOrders.GET("/recent", orders.Recent)
			adminOrders.PUT("/:orderId/status", orders.UpdateStatus)
		}
	}

	// ── Users ──────────────────────────────────────────────────────
	userRoutes := api.Group("/users", middleware.AuthRequired())
	{
		userRoutes.PUT("/:userId", handlers.UpdateUser)

		adminUsers := userRoutes.Group("", middleware.AdminRequired())
		{
			adminUsers.GET("/clients", handlers.GetClients)
			adminUsers.POST("", handlers.CreateClient)
			adminUsers.DELETE("/:id", handlers.DeleteUser)
		}
	}

	// ── Payments ───────────────────────────────────────────────────
	paymentRoutes := api.Group("/payments")
	{
		paymentRoutes.POST("/process_payment", payments.Process)
		paymentRoutes.GET("", middleware.AuthRequired(), middleware.AdminRequired(), payments.List)
	}

	// ── Realtime channel ───────────────────────────────────────────
	r.GET("/ws", middleware.AuthRequired(), notifications.ServeWS(hub))
}
