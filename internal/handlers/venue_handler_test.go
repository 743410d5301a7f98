package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adriamr/gigbook/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	// Preload queries are issued in map order, so don't pin a sequence.
	mock.MatchExpectationsInOrder(false)
	return gormDB, mock
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.POST("/v1/register", Register)
	r.POST("/v1/login", Login)
	r.GET("/v1/venues/search", SearchVenues)
	r.GET("/v1/venues/:id", GetVenue)
	r.PUT("/v1/venues/:id", UpdateVenue)
	r.DELETE("/v1/venues/:id", DeleteVenue)
	r.GET("/v1/artists/:id", GetArtist)
	r.POST("/v1/shows", CreateShow)
	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetVenue_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	mock.ExpectQuery(`SELECT .+ FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := performRequest(r, http.MethodGet, "/v1/venues/"+uuid.NewString(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSearchVenues(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	venueID := uuid.New()
	stateID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "venues" JOIN states`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state_id"}).
			AddRow(venueID.String(), "The Musical Hop", "San Francisco", stateID.String()))
	mock.ExpectQuery(`SELECT .+ FROM "shows"`).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "artist_id", "start_time"}))

	w := performRequest(r, http.MethodGet, "/v1/venues/search?term=Musical", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var results struct {
		Count int `json:"count"`
		Data  []struct {
			ID               string `json:"id"`
			Name             string `json:"name"`
			NumUpcomingShows int    `json:"num_upcoming_shows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if results.Count != 1 || len(results.Data) != 1 {
		t.Fatalf("count = %d, data len = %d, want 1 and 1", results.Count, len(results.Data))
	}
	if results.Data[0].Name != "The Musical Hop" {
		t.Errorf("name = %q, want The Musical Hop", results.Data[0].Name)
	}
	if results.Data[0].NumUpcomingShows != 0 {
		t.Errorf("num_upcoming_shows = %d, want 0", results.Data[0].NumUpcomingShows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetVenue_InvalidID(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	// No expectations: a malformed id must never reach the database.
	w := performRequest(r, http.MethodGet, "/v1/venues/not-a-uuid", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database access: %v", err)
	}
}

func TestGetArtist_InvalidID(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	w := performRequest(r, http.MethodGet, "/v1/artists/12345", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database access: %v", err)
	}
}

func TestUpdateVenue_ReplacesGenreSet(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)
	mock.MatchExpectationsInOrder(true)

	venueID := uuid.New()
	stateID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "address", "phone", "state_id"}).
			AddRow(venueID.String(), "The Musical Hop", "San Francisco", "1015 Folsom Street", "123-123-1234", stateID.String()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "venues"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Submitting no genres must clear every prior association.
	mock.ExpectExec(`DELETE FROM "venue_genres"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	body := fmt.Sprintf(`{"name":"The Musical Hop","city":"San Francisco","state_id":%q,"address":"1015 Folsom Street","phone":"123-123-1234","genres":[]}`, stateID)
	w := performRequest(r, http.MethodPut, "/v1/venues/"+venueID.String(), body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteVenue_RemovesShows(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)
	mock.MatchExpectationsInOrder(true)

	venueID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(venueID.String(), "The Musical Hop"))
	mock.ExpectBegin()
	// The venue's shows go first, in the same transaction.
	mock.ExpectExec(`DELETE FROM "shows"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "venue_genres"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "venues"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(r, http.MethodDelete, "/v1/venues/"+venueID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSearchVenues_NoMatches(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	mock.ExpectQuery(`SELECT .+ FROM "venues" JOIN states`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state_id"}))

	w := performRequest(r, http.MethodGet, "/v1/venues/search?term=xyz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var results struct {
		Count int               `json:"count"`
		Data  []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if results.Count != 0 {
		t.Errorf("count = %d, want 0", results.Count)
	}
	if results.Data == nil || len(results.Data) != 0 {
		t.Errorf("data should be an empty array, got %s", w.Body.String())
	}
}
