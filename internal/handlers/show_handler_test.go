package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestCreateShow_OutsideAvailability(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	artistID := uuid.New()
	venueID := uuid.New()
	from := time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "available_from", "available_to"}).
			AddRow(artistID.String(), "Guns N Petals", from, to))
	mock.ExpectQuery(`SELECT .+ FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(venueID.String(), "The Musical Hop"))

	body := fmt.Sprintf(`{"venue_id":%q,"artist_id":%q,"start_time":"2025-06-01 09:59:00"}`, venueID, artistID)
	w := performRequest(r, http.MethodPost, "/v1/shows", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body: %s", w.Code, w.Body.String())
	}

	// A rejection must never reach the insert.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateShow_ArtistNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	mock.ExpectQuery(`SELECT .+ FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	body := fmt.Sprintf(`{"venue_id":%q,"artist_id":%q,"start_time":"2025-06-01 20:00:00"}`, uuid.New(), uuid.New())
	w := performRequest(r, http.MethodPost, "/v1/shows", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestCreateShow_BadStartTime(t *testing.T) {
	db, _ := setupMockDB(t)
	r := newTestRouter(db)

	body := fmt.Sprintf(`{"venue_id":%q,"artist_id":%q,"start_time":"next friday"}`, uuid.New(), uuid.New())
	w := performRequest(r, http.MethodPost, "/v1/shows", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}
