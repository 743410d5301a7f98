package views

import (
	"time"

	"github.com/google/uuid"

	"github.com/adriamr/gigbook/internal/models"
)

type ArtistSummary struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int       `json:"num_upcoming_shows"`
}

type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

type ArtistDetail struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingVenue       bool             `json:"seeking_venue"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	AvailableFrom      string           `json:"available_from"`
	AvailableTo        string           `json:"available_to"`
	PastShows          []VenueShowEntry `json:"past_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// VenueShowEntry is a show as seen from the artist page: the venue is the
// counterpart.
type VenueShowEntry struct {
	VenueID        uuid.UUID `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      string    `json:"start_time"`
}

func ArtistSummaries(artists []models.Artist, now time.Time) []ArtistSummary {
	summaries := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		summaries = append(summaries, ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: UpcomingCount(artist.Shows, now),
		})
	}
	return summaries
}

func NewArtistDetail(artist *models.Artist, now time.Time) ArtistDetail {
	genres := make([]string, 0, len(artist.Genres))
	for _, genre := range artist.Genres {
		genres = append(genres, genre.Name)
	}

	past := make([]VenueShowEntry, 0)
	upcoming := make([]VenueShowEntry, 0)
	for _, show := range artist.Shows {
		entry := VenueShowEntry{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      show.StartTime.Format(timeLayout),
		}
		if show.StartTime.After(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}

	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             genres,
		City:               artist.City,
		State:              artist.State.Name,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		AvailableFrom:      formatClock(artist.AvailableFrom),
		AvailableTo:        formatClock(artist.AvailableTo),
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
	}
}
