package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shalfa/handlers"
	"shalfa/utils"
)

// RegisterContentRoutes registers the catalog and localization endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/rooms", hb.GetRooms)
		api.GET("/rooms/:id", hb.GetRoom)
		api.GET("/attractions", hb.GetAttractions)
		api.GET("/shopping", hb.GetShopping)
		api.GET("/price-search", hb.GetPriceSearch)
		api.GET("/slides", hb.GetHeroSlides)
		api.GET("/info", hb.GetHotelInfo)
	}
	r.GET("/api/i18n/:lang", hb.GetTranslations)
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", hb.StartBookingSession)
		booking.GET("/session/:sessionID", hb.GetBookingSession)
		booking.PATCH("/session/:sessionID", hb.UpdateBookingSession)
		booking.POST("/session/:sessionID/room", hb.ToggleBookingRoom)
		booking.POST("/session/:sessionID/submit", hb.SubmitBooking)
	}
}

// RegisterConciergeRoutes sets up the chat widget endpoints.
func RegisterConciergeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	concierge := r.Group("/api/concierge")
	{
		concierge.POST("/session", hb.StartChatSession)
		concierge.GET("/session/:sessionID", hb.GetChatSession)
		concierge.POST("/session/:sessionID/message", hb.SendChatMessage)
		concierge.PUT("/session/:sessionID/panel", hb.SetChatPanel)
		concierge.GET("/suggestions", hb.GetChatSuggestions)
		concierge.GET("/tooltip", hb.GetTooltipState)
	}
}

// RegisterPrefsRoutes sets up the client preference endpoints.
func RegisterPrefsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	prefs := r.Group("/api/prefs")
	{
		prefs.GET("/:clientID", hb.GetPreferences)
		prefs.PATCH("/:clientID", hb.UpdatePreferences)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterConciergeRoutes(r, hb)
	RegisterPrefsRoutes(r, hb)
	RegisterHealthRoute(r)
}
