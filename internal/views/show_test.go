package views

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adriamr/gigbook/internal/models"
)

func TestUpcomingCount_StrictBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	shows := []models.Show{
		{StartTime: now.Add(-time.Second)},
		{StartTime: now}, // exactly now is not upcoming
		{StartTime: now.Add(time.Second)},
	}
	if got := UpcomingCount(shows, now); got != 1 {
		t.Errorf("UpcomingCount = %d, want 1", got)
	}
}

func TestShowListings(t *testing.T) {
	venueID := uuid.New()
	artistID := uuid.New()
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

	shows := []models.Show{{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: start,
		Venue:     models.Venue{ID: venueID, Name: "The Musical Hop"},
		Artist:    models.Artist{ID: artistID, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"},
	}}

	listings := ShowListings(shows)
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	got := listings[0]
	if got.VenueName != "The Musical Hop" || got.ArtistName != "Guns N Petals" {
		t.Errorf("unexpected listing names: %+v", got)
	}
	if got.ArtistImageLink != "https://example.com/gnp.jpg" {
		t.Errorf("artist image = %q", got.ArtistImageLink)
	}
	if got.StartTime != "2025-06-01 20:00:00" {
		t.Errorf("start_time = %q, want literal timestamp", got.StartTime)
	}

	if empty := ShowListings(nil); empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}
}
