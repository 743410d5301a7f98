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

type ArtistRequest struct {
	Name               string      `json:"name" binding:"required"`
	City               string      `json:"city" binding:"required"`
	StateID            uuid.UUID   `json:"state_id" binding:"required"`
	Phone              string      `json:"phone" binding:"required"`
	ImageLink          string      `json:"image_link"`
	FacebookLink       string      `json:"facebook_link"`
	Website            string      `json:"website"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	AvailableFrom      string      `json:"available_from"`
	AvailableTo        string      `json:"available_to"`
	GenreIDs           []uuid.UUID `json:"genres"`
}

func ListArtists(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var artists []models.Artist
	if err := gormDB.Preload("Shows").Order("name asc").Find(&artists).Error; err != nil {
		log.Error().Err(err).Msg("failed to list artists")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, views.ArtistSummaries(artists, time.Now()))
}

func SearchArtists(c *gin.Context) {
	term := c.Query("term")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	pattern := "%" + term + "%"
	var artists []models.Artist
	err := gormDB.
		Joins("JOIN states ON states.id = artists.state_id").
		Where("artists.name ILIKE ? OR (artists.city || ', ' || states.name) ILIKE ?", pattern, pattern).
		Preload("Shows").
		Find(&artists).Error
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("artist search failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, views.ArtistSearchResults{
		Count: len(artists),
		Data:  views.ArtistSummaries(artists, now),
	})
}

func GetArtist(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var artist models.Artist
	if err := gormDB.Preload("State").Preload("Genres").Preload("Shows.Venue").Where("id = ?", artistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		log.Error().Err(err).Str("artist_id", artistID.String()).Msg("failed to load artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	c.JSON(http.StatusOK, views.NewArtistDetail(&artist, time.Now()))
}

func CreateArtist(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	availableFrom, err := helpers.ParseClock(req.AvailableFrom)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid available_from time format. Expected HH:MM.")
		return
	}
	availableTo, err := helpers.ParseClock(req.AvailableTo)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid available_to time format. Expected HH:MM.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	artist := models.Artist{
		ID:                 uuid.New(),
		Name:               req.Name,
		City:               req.City,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
		AvailableFrom:      availableFrom,
		AvailableTo:        availableTo,
		StateID:            req.StateID,
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, req.GenreIDs)
		if err != nil {
			return err
		}
		artist.Genres = genres
		return tx.Create(&artist).Error
	})
	if err != nil {
		log.Error().Err(err).Str("artist", req.Name).Msg("failed to create artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   fmt.Sprintf("Artist %s was successfully listed.", req.Name),
		"artist_id": artist.ID,
	})
}

func UpdateArtist(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	availableFrom, err := helpers.ParseClock(req.AvailableFrom)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid available_from time format. Expected HH:MM.")
		return
	}
	availableTo, err := helpers.ParseClock(req.AvailableTo)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid available_to time format. Expected HH:MM.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var artist models.Artist
	if err := gormDB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		log.Error().Err(err).Str("artist_id", artistID.String()).Msg("failed to load artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	artist.Name = req.Name
	artist.City = req.City
	artist.Phone = req.Phone
	artist.ImageLink = req.ImageLink
	artist.FacebookLink = req.FacebookLink
	artist.Website = req.Website
	artist.SeekingVenue = req.SeekingVenue
	artist.SeekingDescription = req.SeekingDescription
	artist.AvailableFrom = availableFrom
	artist.AvailableTo = availableTo
	artist.StateID = req.StateID

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, req.GenreIDs)
		if err != nil {
			return err
		}
		if err := tx.Save(&artist).Error; err != nil {
			return err
		}
		return tx.Model(&artist).Association("Genres").Replace(genres)
	})
	if err != nil {
		log.Error().Err(err).Str("artist_id", artistID.String()).Msg("failed to update artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully updated.", req.Name),
	})
}

func DeleteArtist(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var artist models.Artist
	if err := gormDB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		log.Error().Err(err).Str("artist_id", artistID.String()).Msg("failed to load artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", artist.ID).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&artist).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		log.Error().Err(err).Str("artist_id", artistID.String()).Msg("failed to delete artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Artist %s could not be deleted.", artist.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully deleted.", artist.Name),
	})
}
