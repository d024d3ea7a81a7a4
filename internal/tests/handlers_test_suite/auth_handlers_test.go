package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/mparraf99/inventory-api/internal/http/handlers"
)

func postCredentials(r http.Handler, path string, creds handler.CredentialsRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(creds)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecureEndpoint(t *testing.T) {
	t.Run("Without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/secure", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	t.Run("With garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/secure", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	t.Run("With valid token", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/secure", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handler.MessageResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Message == "" {
			t.Error("expected an acknowledgement message")
		}
	})
}

func TestProductsRequireAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestRegister(t *testing.T) {
	t.Run("Valid registration returns a working token", func(t *testing.T) {
		w := postCredentials(router, "/api/auth/register",
			handler.CredentialsRequest{Username: "newuser", Password: "secret-password"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}

		var resp handler.RegisterResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("expected a token in the register response")
		}

		req := httptest.NewRequest(http.MethodGet, "/api/secure", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		sw := httptest.NewRecorder()
		router.ServeHTTP(sw, req)
		if sw.Code != http.StatusOK {
			t.Errorf("expected the fresh token to pass the gate, got %d", sw.Code)
		}
	})

	t.Run("Duplicate username", func(t *testing.T) {
		w := postCredentials(router, "/api/auth/register",
			handler.CredentialsRequest{Username: "admin", Password: "secret-password"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("Too short credentials", func(t *testing.T) {
		w := postCredentials(router, "/api/auth/register",
			handler.CredentialsRequest{Username: "ab", Password: "123"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("Wrong password", func(t *testing.T) {
		w := postCredentials(router, "/api/auth/login",
			handler.CredentialsRequest{Username: "admin", Password: "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	t.Run("Unknown user", func(t *testing.T) {
		w := postCredentials(router, "/api/auth/login",
			handler.CredentialsRequest{Username: "nobody", Password: "whatever"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	t.Run("With valid token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/auth/logout", nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 No Content, got %d", w.Code)
		}
	})

	t.Run("Without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})
}
