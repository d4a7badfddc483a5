package transport

import (
	"net/http"
	"time"

	"github.com/ds124wfegd/listings/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(
	venueHandler *VenueHandler,
	artistHandler *ArtistHandler,
	showHandler *ShowHandler,
	notifier *Notifier,
	requestTimeout time.Duration,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(requestTimeout))

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.Session())
	{
		// Venue routes
		venues := api.Group("/venues")
		{
			venues.GET("", venueHandler.GetVenues)
			venues.GET("/search", venueHandler.SearchVenues)
			venues.POST("/search", venueHandler.SearchVenues)
			venues.GET("/:id", venueHandler.GetVenue)
			venues.POST("", venueHandler.CreateVenue)
			venues.PUT("/:id", venueHandler.UpdateVenue)
			venues.DELETE("/:id", venueHandler.DeleteVenue)
		}

		// Artist routes
		artists := api.Group("/artists")
		{
			artists.GET("", artistHandler.GetArtists)
			artists.GET("/search", artistHandler.SearchArtists)
			artists.POST("/search", artistHandler.SearchArtists)
			artists.GET("/:id", artistHandler.GetArtist)
			artists.POST("", artistHandler.CreateArtist)
			artists.PUT("/:id", artistHandler.UpdateArtist)
		}

		// Show routes
		shows := api.Group("/shows")
		{
			shows.GET("", showHandler.GetShows)
			shows.POST("", showHandler.CreateShow)
		}

		api.GET("/notices", notifier.GetNotices)
		api.GET("/choices", GetChoices)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	return router
}
