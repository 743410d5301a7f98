package views

import (
	"time"

	"github.com/google/uuid"

	"github.com/adriamr/gigbook/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

type ShowListing struct {
	VenueID         uuid.UUID `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       string    `json:"start_time"`
}

func ShowListings(shows []models.Show) []ShowListing {
	listings := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		listings = append(listings, ShowListing{
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime.Format(timeLayout),
		})
	}
	return listings
}

// UpcomingCount counts shows strictly after now. Callers capture now once per
// request so every count in a response agrees on the boundary.
func UpcomingCount(shows []models.Show, now time.Time) int {
	count := 0
	for _, show := range shows {
		if show.StartTime.After(now) {
			count++
		}
	}
	return count
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
