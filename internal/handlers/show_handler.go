package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/adriamr/gigbook/internal/helpers"
	"github.com/adriamr/gigbook/internal/models"
	"github.com/adriamr/gigbook/internal/views"
)

type ShowRequest struct {
	VenueID   uuid.UUID `json:"venue_id" binding:"required"`
	ArtistID  uuid.UUID `json:"artist_id" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
}

func ListShows(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var shows []models.Show
	if err := gormDB.Preload("Venue").Preload("Artist").Find(&shows).Error; err != nil {
		log.Error().Err(err).Msg("failed to list shows")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	c.JSON(http.StatusOK, views.ShowListings(shows))
}

func CreateShow(c *gin.Context) {
	var req ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	startTime, err := helpers.ParseShowTime(req.StartTime)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format. Expected YYYY-MM-DD HH:MM:SS.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var artist models.Artist
	if err := gormDB.Where("id = ?", req.ArtistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		log.Error().Err(err).Str("artist_id", req.ArtistID.String()).Msg("failed to load artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	var venue models.Venue
	if err := gormDB.Where("id = ?", req.VenueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		log.Error().Err(err).Str("venue_id", req.VenueID.String()).Msg("failed to load venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding venue.")
		return
	}

	if !helpers.WithinAvailability(startTime, artist.AvailableFrom, artist.AvailableTo) {
		helpers.RespondWithError(c, http.StatusConflict, fmt.Sprintf("Artist %s is not available at the requested time.", artist.Name))
		return
	}

	show := models.Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: startTime,
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&show).Error
	})
	if err != nil {
		log.Error().Err(err).Str("venue_id", req.VenueID.String()).Str("artist_id", req.ArtistID.String()).Msg("failed to create show")
		helpers.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Show could not be listed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed.",
	})
}
