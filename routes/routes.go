package routes

import (
	"net/http"
	"time"

	"lumiere/handlers"
	"lumiere/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/grant-admin", hb.Auth.GrantAdminHandler)
	}
}

// RegisterUserRoutes registers the authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.GetProfileHandler)
		api.PUT("/me", hb.Users.UpdateProfileHandler)
		api.PUT("/me/password", hb.Users.UpdatePasswordHandler)
		api.DELETE("/me", hb.Users.DeleteAccountHandler)
		api.POST("/me/signout", hb.Users.SignOutHandler)

		api.POST("/me/push-tokens", hb.Devices.SubscribeTokenHandler)
		api.DELETE("/me/push-tokens", hb.Devices.UnsubscribeTokenHandler)
	}
}

// RegisterCatalogRoutes registers the public service catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServicesHandler)
		api.GET("/:id", hb.Catalog.GetServiceHandler)
	}
}

// RegisterBookingRoutes registers the customer-facing appointment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("/availability", hb.Booking.AvailabilityHandler)
		api.POST("", hb.Booking.BookHandler)
		api.GET("/mine", hb.Booking.ListMineHandler)
		api.PUT("/:id/reschedule", hb.Booking.RescheduleHandler)
		api.POST("/:id/resolve", hb.Booking.ResolveContestHandler)

		api.POST("/:id/messages", hb.Chat.SendMessageHandler)
		api.GET("/:id/messages", hb.Chat.ListMessagesHandler)
		api.POST("/:id/messages/read", hb.Chat.MarkReadHandler)
		api.GET("/:id/messages/unread", hb.Chat.UnreadCountHandler)
	}
}

// RegisterPromotionRoutes registers the public promotions listing.
func RegisterPromotionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/promotions", hb.Promotion.ListActivePromotionsHandler)
}

// RegisterSettingsRoutes registers the public site configuration reads.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.GET("/business-hours", hb.Settings.GetBusinessHoursHandler)
		api.GET("/theme", hb.Settings.GetThemeHandler)
		api.GET("/hero-banner", hb.Settings.GetHeroBannerHandler)
		api.GET("/social-links", hb.Settings.GetSocialLinksHandler)
		api.GET("/gallery", hb.Settings.ListGalleryHandler)
	}
}

// RegisterAddressRoutes registers the postal-code lookup.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/address/:postalCode", hb.Address.LookupPostalCodeHandler)
}

// RegisterUploadRoutes registers the authenticated image upload endpoint.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.Storage.UploadImageHandler)
		api.GET("/url/*publicId", hb.Storage.ResolveImageURLHandler)
	}
}

// RegisterAdminRoutes registers everything behind the admin role gate.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.Use(middleware.AdminOnly())

		api.GET("/appointments", hb.Admin.ListDayHandler)
		api.GET("/appointments/unviewed", hb.Admin.ListUnviewedHandler)
		api.POST("/appointments/mark-viewed", hb.Admin.MarkViewedHandler)
		api.PUT("/appointments/:id/status", hb.Admin.SetStatusHandler)
		api.POST("/appointments/:id/contest", hb.Admin.ContestHandler)
		api.GET("/users", hb.Admin.ListUsersHandler)

		api.POST("/services", hb.Catalog.CreateServiceHandler)
		api.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)

		api.GET("/promotions", hb.Promotion.ListPromotionsHandler)
		api.POST("/promotions", hb.Promotion.CreatePromotionHandler)
		api.PUT("/promotions/:id", hb.Promotion.UpdatePromotionHandler)
		api.DELETE("/promotions/:id", hb.Promotion.DeletePromotionHandler)

		api.PUT("/settings/business-hours", hb.Settings.UpdateBusinessHoursHandler)
		api.PUT("/settings/theme", hb.Settings.UpdateThemeHandler)
		api.PUT("/settings/hero-banner", hb.Settings.UpdateHeroBannerHandler)
		api.PUT("/settings/social-links", hb.Settings.UpdateSocialLinksHandler)
		api.POST("/settings/gallery", hb.Settings.AddGalleryImageHandler)
		api.DELETE("/settings/gallery/:id", hb.Settings.DeleteGalleryImageHandler)

		api.DELETE("/uploads/*publicId", hb.Storage.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lumiere"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPromotionRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
