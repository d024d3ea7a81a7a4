package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	"github.com/mparraf99/inventory-api/internal/auth"
	api "github.com/mparraf99/inventory-api/internal/http"
	handler "github.com/mparraf99/inventory-api/internal/http/handlers"
	"github.com/mparraf99/inventory-api/internal/models"
	"github.com/mparraf99/inventory-api/internal/repo"
)

var (
	token       string
	router      http.Handler
	productRepo *repo.InMemoryProductRepository
	batchRepo   *repo.InMemoryBatchRepository
	userRepo    *repo.InMemoryUserRepository
)

func init() {
	setupTestRouter("secret-password")

	var err error
	token, err = generateToken(router, "admin", "secret-password")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRouter(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	batchRepo = repo.NewInMemoryBatchRepository(productRepo)
	userRepo = repo.NewInMemoryUserRepository()

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	tokens := auth.NewTokenService("test-secret")
	router = api.NewRouter(api.Deps{
		Products: handler.NewProductHandler(productRepo),
		Batches:  handler.NewBatchHandler(batchRepo),
		Auth:     handler.NewAuthHandler(userRepo, tokens, nil),
		Tokens:   tokens,
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends an authenticated request with an optional JSON payload.
func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", p)
}

func createBatch(r http.Handler, b handler.BatchRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products-batches", b)
}

func getProduct(r http.Handler, id int) (handler.ProductTransfer, int) {
	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil)
	var transfer handler.ProductTransfer
	if w.Code == http.StatusOK {
		json.NewDecoder(w.Body).Decode(&transfer)
	}
	return transfer, w.Code
}
