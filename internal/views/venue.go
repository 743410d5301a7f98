package views

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/adriamr/gigbook/internal/models"
)

type VenueSummary struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int       `json:"num_upcoming_shows"`
}

type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

type VenueDetail struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []ShowEntry `json:"past_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ShowEntry is a show as seen from the venue page: the artist is the
// counterpart.
type ShowEntry struct {
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       string    `json:"start_time"`
}

func VenueSummaries(venues []models.Venue, now time.Time) []VenueSummary {
	summaries := make([]VenueSummary, 0, len(venues))
	for _, venue := range venues {
		summaries = append(summaries, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: UpcomingCount(venue.Shows, now),
		})
	}
	return summaries
}

// VenueAreas groups venues by their (city, state) pair, ordered by city
// ascending. Venues keep their query order within a group.
func VenueAreas(venues []models.Venue, now time.Time) []Area {
	type areaKey struct {
		city  string
		state string
	}

	index := make(map[areaKey]int)
	areas := make([]Area, 0)
	for _, venue := range venues {
		key := areaKey{city: venue.City, state: venue.State.Name}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: key.city, State: key.state, Venues: []VenueSummary{}})
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: UpcomingCount(venue.Shows, now),
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})
	return areas
}

func NewVenueDetail(venue *models.Venue, now time.Time) VenueDetail {
	genres := make([]string, 0, len(venue.Genres))
	for _, genre := range venue.Genres {
		genres = append(genres, genre.Name)
	}

	past := make([]ShowEntry, 0)
	upcoming := make([]ShowEntry, 0)
	for _, show := range venue.Shows {
		entry := ShowEntry{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime.Format(timeLayout),
		}
		if show.StartTime.After(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}

	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State.Name,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
	}
}
