package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/middleware"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/repository"
	"github.com/vaultpass/pwgen-go/internal/service"
)

type memoryUsers struct {
	byEmail map[string]*model.User
}

func (m *memoryUsers) Create(_ context.Context, u *model.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = int64(len(m.byEmail) + 1)
	stored := *u
	m.byEmail[u.Email] = &stored
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newTestAuthHandler() http.Handler {
	tokens := crypto.NewTokenIssuer("test-secret", time.Hour)
	hasher := crypto.NewHasher(crypto.HashParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	svc := service.NewAuthService(&memoryUsers{byEmail: map[string]*model.User{}}, hasher, tokens, 100)
	h := NewAuthHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", h.HandleRegister)
	mux.HandleFunc("POST /login", h.HandleLogin)
	mux.Handle("GET /me", middleware.JWTAuth(tokens)(http.HandlerFunc(h.HandleMe)))
	return mux
}

func TestAuthFlow(t *testing.T) {
	h := newTestAuthHandler()
	creds := `{"email": "user@example.com", "password": "hunter2hunter2"}`

	rec := doRequest(t, h, http.MethodPost, "/register", creds, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodPost, "/register", creds, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPost, "/login", creds, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var auth model.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&auth); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("expected token")
	}

	rec = doRequest(t, h, http.MethodGet, "/me", "", auth.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var me model.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&me); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if me.Email != "user@example.com" || me.MaxAmount != 100 {
		t.Errorf("unexpected user: %+v", me)
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"register invalid body", "/register", `not json`, http.StatusBadRequest},
		{"register empty body", "/register", ``, http.StatusBadRequest},
		{"register missing email", "/register", `{"password": "hunter2hunter2"}`, http.StatusBadRequest},
		{"register short password", "/register", `{"email": "a@example.com", "password": "short"}`, http.StatusBadRequest},
		{"login unknown user", "/login", `{"email": "nobody@example.com", "password": "hunter2hunter2"}`, http.StatusUnauthorized},
		{"login invalid body", "/login", `[`, http.StatusBadRequest},
	}

	h := newTestAuthHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, tt.path, tt.body, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
