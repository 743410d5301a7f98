package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_DefaultsToEditorRole(t *testing.T) {
	db, mock := setupMockDB(t)
	r := newTestRouter(db)

	roleID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "roles"`).
		WithArgs("editor", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(roleID.String(), "editor"))
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := `{"email":"sam@example.com","password":"secret1"}`
	w := performRequest(r, http.MethodPost, "/v1/register", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	userID := uuid.New()
	roleID := uuid.New()
	expectUser := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(`SELECT .+ FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role_id"}).
				AddRow(userID.String(), "sam@example.com", string(hash), roleID.String()))
		mock.ExpectQuery(`SELECT .+ FROM "roles"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(roleID.String(), "editor"))
	}

	t.Run("wrong password", func(t *testing.T) {
		db, mock := setupMockDB(t)
		r := newTestRouter(db)
		expectUser(mock)

		body := `{"email":"sam@example.com","password":"wrong-password"}`
		w := performRequest(r, http.MethodPost, "/v1/login", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		db, mock := setupMockDB(t)
		r := newTestRouter(db)
		expectUser(mock)

		body := `{"email":"sam@example.com","password":"right-password"}`
		w := performRequest(r, http.MethodPost, "/v1/login", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a signed token in the response")
		}
	})
}
