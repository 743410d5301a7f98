package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/adriamr/gigbook/internal/helpers"
	"github.com/adriamr/gigbook/internal/models"
	"github.com/adriamr/gigbook/internal/views"
)

type VenueRequest struct {
	Name               string      `json:"name" binding:"required"`
	City               string      `json:"city" binding:"required"`
	StateID            uuid.UUID   `json:"state_id" binding:"required"`
	Address            string      `json:"address" binding:"required"`
	Phone              string      `json:"phone" binding:"required"`
	ImageLink          string      `json:"image_link"`
	FacebookLink       string      `json:"facebook_link"`
	Website            string      `json:"website"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	GenreIDs           []uuid.UUID `json:"genres"`
}

func ListVenues(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venues []models.Venue
	if err := gormDB.Preload("State").Preload("Shows").Find(&venues).Error; err != nil {
		log.Error().Err(err).Msg("failed to list venues")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, views.VenueAreas(venues, time.Now()))
}

func SearchVenues(c *gin.Context) {
	term := c.Query("term")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	pattern := "%" + term + "%"
	var venues []models.Venue
	err := gormDB.
		Joins("JOIN states ON states.id = venues.state_id").
		Where("venues.name ILIKE ? OR (venues.city || ', ' || states.name) ILIKE ?", pattern, pattern).
		Preload("Shows").
		Find(&venues).Error
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("venue search failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, views.VenueSearchResults{
		Count: len(venues),
		Data:  views.VenueSummaries(venues, now),
	})
}

func GetVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venue models.Venue
	if err := gormDB.Preload("State").Preload("Genres").Preload("Shows.Artist").Where("id = ?", venueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		log.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to load venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	c.JSON(http.StatusOK, views.NewVenueDetail(&venue, time.Now()))
}

func CreateVenue(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	venue := models.Venue{
		ID:                 uuid.New(),
		Name:               req.Name,
		City:               req.City,
		Address:            req.Address,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
		StateID:            req.StateID,
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, req.GenreIDs)
		if err != nil {
			return err
		}
		venue.Genres = genres
		return tx.Create(&venue).Error
	})
	if err != nil {
		log.Error().Err(err).Str("venue", req.Name).Msg("failed to create venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Venue %s was successfully listed.", req.Name),
		"venue_id": venue.ID,
	})
}

func UpdateVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venue models.Venue
	if err := gormDB.Where("id = ?", venueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		log.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to load venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding venue.")
		return
	}

	venue.Name = req.Name
	venue.City = req.City
	venue.Address = req.Address
	venue.Phone = req.Phone
	venue.ImageLink = req.ImageLink
	venue.FacebookLink = req.FacebookLink
	venue.Website = req.Website
	venue.SeekingTalent = req.SeekingTalent
	venue.SeekingDescription = req.SeekingDescription
	venue.StateID = req.StateID

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, req.GenreIDs)
		if err != nil {
			return err
		}
		if err := tx.Save(&venue).Error; err != nil {
			return err
		}
		return tx.Model(&venue).Association("Genres").Replace(genres)
	})
	if err != nil {
		log.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to update venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully updated.", req.Name),
	})
}

func DeleteVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venue models.Venue
	if err := gormDB.Where("id = ?", venueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		log.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to load venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding venue.")
		return
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&venue).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		log.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to delete venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Venue %s could not be deleted.", venue.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully deleted.", venue.Name),
	})
}
