package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/adriamr/gigbook/internal/helpers"
	"github.com/adriamr/gigbook/internal/models"
)

func ListStates(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var states []models.State
	if err := gormDB.Order("name asc").Find(&states).Error; err != nil {
		log.Error().Err(err).Msg("failed to list states")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving states.")
		return
	}

	c.JSON(http.StatusOK, states)
}

func ListGenres(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var genres []models.Genre
	if err := gormDB.Order("name asc").Find(&genres).Error; err != nil {
		log.Error().Err(err).Msg("failed to list genres")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving genres.")
		return
	}

	c.JSON(http.StatusOK, genres)
}

// resolveGenres loads the submitted genre ids; unknown ids are dropped rather
// than failing the write.
func resolveGenres(tx *gorm.DB, ids []uuid.UUID) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(ids))
	if len(ids) == 0 {
		return genres, nil
	}
	if err := tx.Where("id IN ?", ids).Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
