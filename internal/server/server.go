package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/adriamr/gigbook/config"
	"github.com/adriamr/gigbook/internal/handlers"
	"github.com/adriamr/gigbook/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("starting server")
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		public.GET("/states", handlers.ListStates)
		public.GET("/genres", handlers.ListGenres)

		venuePublic := public.Group("/venues")
		{
			venuePublic.GET("", handlers.ListVenues)
			venuePublic.GET("/search", handlers.SearchVenues)
			venuePublic.GET("/:id", handlers.GetVenue)
		}

		artistPublic := public.Group("/artists")
		{
			artistPublic.GET("", handlers.ListArtists)
			artistPublic.GET("/search", handlers.SearchArtists)
			artistPublic.GET("/:id", handlers.GetArtist)
		}

		public.GET("/shows", handlers.ListShows)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		venueProtected := protected.Group("/venues")
		{
			venueProtected.POST("", handlers.CreateVenue)
			venueProtected.PUT("/:id", handlers.UpdateVenue)
			venueProtected.DELETE("/:id", handlers.DeleteVenue)
		}

		artistProtected := protected.Group("/artists")
		{
			artistProtected.POST("", handlers.CreateArtist)
			artistProtected.PUT("/:id", handlers.UpdateArtist)
			artistProtected.DELETE("/:id", handlers.DeleteArtist)
		}

		protected.POST("/shows", handlers.CreateShow)
	}
}
