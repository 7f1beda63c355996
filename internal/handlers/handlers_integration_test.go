package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tamrah/internal/handlers"
	"tamrah/internal/middleware"
	"tamrah/internal/models"
	"tamrah/internal/repositories"
	"tamrah/internal/services"
	"tamrah/pkg/identity"
)

const (
	testJWTSecret     = "test_jwt_secret"
	testSessionCookie = "session_token"
	testAdminKey      = "s3cret-admin-key"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// countingRepository records how often the catalog store is touched.
type countingRepository struct {
	repositories.DateTypeRepository
	calls atomic.Int64
}

func (r *countingRepository) GetAll(ctx context.Context) ([]models.DateType, error) {
	r.calls.Add(1)
	return r.DateTypeRepository.GetAll(ctx)
}

func (r *countingRepository) GetByID(ctx context.Context, id uint) (*models.DateType, error) {
	r.calls.Add(1)
	return r.DateTypeRepository.GetByID(ctx, id)
}

func (r *countingRepository) Create(ctx context.Context, dt *models.DateType) error {
	r.calls.Add(1)
	return r.DateTypeRepository.Create(ctx, dt)
}

func (r *countingRepository) Update(ctx context.Context, id uint, dt *models.DateType) (*models.DateType, error) {
	r.calls.Add(1)
	return r.DateTypeRepository.Update(ctx, id, dt)
}

func (r *countingRepository) Delete(ctx context.Context, id uint) error {
	r.calls.Add(1)
	return r.DateTypeRepository.Delete(ctx, id)
}

// stubIdentity accepts a single session token.
type stubIdentity struct{}

func (stubIdentity) OAuthRedirectURL(ctx context.Context, provider string) (string, error) {
	return "https://accounts.example.com/auth?provider=" + provider, nil
}

func (stubIdentity) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code != "good-code" {
		return "", identity.ErrInvalidSession
	}
	return "session-abc", nil
}

func (stubIdentity) CurrentUser(ctx context.Context, sessionToken string) (*identity.User, error) {
	if sessionToken != "session-abc" {
		return nil, identity.ErrInvalidSession
	}
	return &identity.User{ID: "user-1", Email: "admin@tamrah.sa"}, nil
}

func (stubIdentity) DeleteSession(ctx context.Context, sessionToken string) error {
	return nil
}

type testEnv struct {
	app   *fiber.App
	repo  *countingRepository
	token string
}

// setupApp sets up a Fiber app for testing with in-memory SQLite and all handlers/services.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	gormRepo := repositories.NewGORMDateTypeRepository(db)
	require.NoError(t, gormRepo.Migrate())
	repo := &countingRepository{DateTypeRepository: gormRepo}

	// Initialize Services
	jwtAuth := services.NewJWTAuthenticator(testJWTSecret)
	keyHash, err := services.HashAPIKey(testAdminKey)
	require.NoError(t, err)
	gate := services.NewChainAuthenticator(
		services.NewIdentitySessionAuthenticator(stubIdentity{}),
		jwtAuth,
		services.NewAPIKeyAuthenticator(keyHash),
	)
	authService := services.NewAuthService(stubIdentity{}, gate)
	dateTypeService := services.NewDateTypeService(repo, nil)
	preferenceService := services.NewPreferenceService(repositories.NewMockPreferenceRepository(), time.Hour)

	// Initialize Handlers
	dateTypeHandler := handlers.NewDateTypeHandler(dateTypeService, preferenceService)
	recommendationHandler := handlers.NewRecommendationHandler(
		services.NewRecommendationService(repo),
		services.NewPriceService(repo),
	)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, time.Hour)
	imageHandler := handlers.NewImageHandler(services.NewImageService(repositories.NewMockBlobRepository()), 1024)
	authHandler := handlers.NewAuthHandler(authService, testSessionCookie)

	app := fiber.New()
	api := app.Group("/api")
	adminGate := middleware.AdminRequired(authService, testSessionCookie)

	dateTypeHandler.RegisterRoutes(api)
	recommendationHandler.RegisterRoutes(api)
	preferenceHandler.RegisterRoutes(api)
	imageHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)
	authHandler.RegisterAdminRoutes(api, adminGate)

	admin := api.Group("/admin", adminGate)
	dateTypeHandler.RegisterAdminRoutes(admin)
	imageHandler.RegisterAdminRoutes(admin)

	token, err := jwtAuth.IssueToken("admin-1", "admin@tamrah.sa")
	require.NoError(t, err)

	return &testEnv{app: app, repo: repo, token: token}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, auth bool) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func dateTypeBody(name string, sweetness int, price float64, premium bool, texture string) map[string]interface{} {
	return map[string]interface{}{
		"name_en":              name,
		"name_ar":              "تمر " + name,
		"description_en":       "A fine date",
		"description_ar":       "تمر فاخر",
		"taste_profile_en":     "Honey",
		"taste_profile_ar":     "عسل",
		"sweetness_level":      sweetness,
		"texture_en":           texture,
		"texture_ar":           "طري",
		"color":                "brown",
		"size_en":              "medium",
		"size_ar":              "متوسط",
		"average_price_per_kg": price,
		"key_features_en":      "Rich",
		"key_features_ar":      "غني",
		"is_premium":           premium,
	}
}

func (e *testEnv) create(t *testing.T, body map[string]interface{}) models.DateType {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/admin/date-types", body, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var dt models.DateType
	decode(t, resp, &dt)
	return dt
}

func TestDateTypeCRUD(t *testing.T) {
	env := setupApp(t)

	created := env.create(t, dateTypeBody("Ajwa", 4, 120, true, "soft and tender"))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ajwa", created.NameEn)
	assert.False(t, created.CreatedAt.IsZero())

	// GET by id
	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/date-types/%d", created.ID), nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.DateType
	decode(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.True(t, fetched.IsPremium)

	// PUT replaces every field
	update := dateTypeBody("Ajwa Al Madinah", 5, 130, true, "soft")
	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/date-types/%d", created.ID), update, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.DateType
	decode(t, resp, &updated)
	assert.Equal(t, "Ajwa Al Madinah", updated.NameEn)
	assert.Equal(t, 5, updated.SweetnessLevel)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	// PATCH touches only the given fields
	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/date-types/%d", created.ID), map[string]interface{}{
		"average_price_per_kg": 99.5,
		"origin_region_en":     "Al Madinah",
	}, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var patched models.DateType
	decode(t, resp, &patched)
	assert.Equal(t, 99.5, patched.AveragePricePerKg)
	assert.Equal(t, "Ajwa Al Madinah", patched.NameEn)
	require.NotNil(t, patched.OriginRegionEn)
	assert.Equal(t, "Al Madinah", *patched.OriginRegionEn)

	// DELETE is idempotent
	for i := 0; i < 2; i++ {
		resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/date-types/%d", created.ID), nil, true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result map[string]interface{}
		decode(t, resp, &result)
		assert.Equal(t, true, result["success"])
	}

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/date-types/%d", created.ID), nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDateTypeErrors(t *testing.T) {
	env := setupApp(t)

	// Not found
	resp := env.do(t, http.MethodGet, "/api/date-types/999", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPut, "/api/admin/date-types/999", dateTypeBody("Ghost", 3, 10, false, "soft"), true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Malformed id
	resp = env.do(t, http.MethodGet, "/api/date-types/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Validation errors carry field context
	resp = env.do(t, http.MethodPost, "/api/admin/date-types", dateTypeBody("", 6, -1, false, "soft"), true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Errors, "name_en")
	assert.Contains(t, body.Errors, "sweetness_level")
	assert.Contains(t, body.Errors, "average_price_per_kg")

	// Malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/admin/date-types", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListOrdering(t *testing.T) {
	env := setupApp(t)

	env.create(t, dateTypeBody("Plain Sweet", 5, 40, false, "soft"))
	env.create(t, dateTypeBody("Premium Mild", 2, 150, true, "firm"))
	env.create(t, dateTypeBody("Premium Sweet", 4, 120, true, "soft"))
	env.create(t, dateTypeBody("Plain Mild", 1, 20, false, "firm"))

	resp := env.do(t, http.MethodGet, "/api/date-types", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []models.DateType
	decode(t, resp, &list)

	names := make([]string, 0, len(list))
	for _, dt := range list {
		names = append(names, dt.NameEn)
	}
	assert.Equal(t, []string{"Premium Sweet", "Premium Mild", "Plain Sweet", "Plain Mild"}, names)
}

func TestRecommendations(t *testing.T) {
	env := setupApp(t)

	env.create(t, dateTypeBody("Ajwa", 4, 120, true, "soft and tender"))
	env.create(t, dateTypeBody("Sukkari", 5, 45, false, "soft"))
	env.create(t, dateTypeBody("Segai", 3, 40, false, "firm"))
	env.create(t, dateTypeBody("Khalas", 4, 55, false, "soft and sticky"))
	env.create(t, dateTypeBody("Safawi", 3, 35, false, "Chewy"))

	resp := env.do(t, http.MethodPost, "/api/recommendations", map[string]interface{}{
		"sweetness_preference": 4,
		"texture_preference":   "soft",
		"budget_max":           60,
		"is_premium_preferred": false,
	}, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []models.DateType
	decode(t, resp, &results)
	require.Len(t, results, 2)
	assert.Equal(t, "Sukkari", results[0].NameEn)
	assert.Equal(t, "Khalas", results[1].NameEn)

	// Texture keywords are case-sensitive: "Chewy" does not match firm.
	resp = env.do(t, http.MethodPost, "/api/recommendations", map[string]interface{}{
		"texture_preference": "firm",
	}, false)
	decode(t, resp, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "Segai", results[0].NameEn)

	// Empty query caps at three
	resp = env.do(t, http.MethodPost, "/api/recommendations", map[string]interface{}{}, false)
	decode(t, resp, &results)
	assert.Len(t, results, 3)

	// Malformed query
	resp = env.do(t, http.MethodPost, "/api/recommendations", map[string]interface{}{
		"texture_preference": "crunchy",
	}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// No matches yields an empty array, not null
	resp = env.do(t, http.MethodPost, "/api/recommendations", map[string]interface{}{
		"budget_max": 1,
	}, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestAdminGate(t *testing.T) {
	env := setupApp(t)
	existing := env.create(t, dateTypeBody("Ajwa", 4, 120, true, "soft"))
	before := env.repo.calls.Load()

	tests := []struct {
		name   string
		method string
		path   string
		setup  func(r *http.Request)
	}{
		{name: "create without credentials", method: http.MethodPost, path: "/api/admin/date-types"},
		{name: "update with bad token", method: http.MethodPut, path: fmt.Sprintf("/api/admin/date-types/%d", existing.ID), setup: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-token")
		}},
		{name: "delete with bad session", method: http.MethodDelete, path: fmt.Sprintf("/api/admin/date-types/%d", existing.ID), setup: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: testSessionCookie, Value: "stale"})
		}},
		{name: "upload with wrong key", method: http.MethodPost, path: "/api/admin/upload-image", setup: func(r *http.Request) {
			r.Header.Set(middleware.AdminKeyHeader, "wrong")
		}},
		{name: "me without credentials", method: http.MethodGet, path: "/api/users/me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(dateTypeBody("Intruder", 3, 10, false, "soft"))
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.setup != nil {
				tt.setup(req)
			}
			resp, err := env.app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			resp.Body.Close()
		})
	}

	assert.Equal(t, before, env.repo.calls.Load(), "rejected requests must not reach the catalog store")

	// Session cookie and API key are both accepted
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/date-types/%d", existing.ID), nil)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: "session-abc"})
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/date-types/%d", existing.ID), nil)
	req.Header.Set(middleware.AdminKeyHeader, testAdminKey)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func multipartUpload(t *testing.T, category, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if category != "" {
		require.NoError(t, w.WriteField("category", category))
	}
	if data != nil {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImageUploadAndServe(t *testing.T) {
	env := setupApp(t)

	body, contentType := multipartUpload(t, "banners", "hero.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var upload models.UploadResult
	decode(t, resp, &upload)
	assert.True(t, strings.HasPrefix(upload.Key, "banners/"))
	assert.True(t, strings.HasSuffix(upload.Key, "-hero.png"))
	assert.Equal(t, "/api/files/"+url.PathEscape(upload.Key), upload.ImageURL)

	// Served from the escaped URL
	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, upload.ImageURL, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	etag := resp.Header.Get("ETag")
	assert.NotEmpty(t, etag)
	served, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, pngBytes, served)

	// Conditional request
	req = httptest.NewRequest(http.MethodGet, upload.ImageURL, nil)
	req.Header.Set("If-None-Match", etag)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	resp.Body.Close()

	// Missing key
	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/files/dates%2F1-missing.png", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestImageUploadRejects(t *testing.T) {
	env := setupApp(t)

	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{name: "no file", filename: "", data: nil},
		{name: "not an image", filename: "notes.txt", data: []byte("just some text")},
		{name: "too large", filename: "big.png", data: append(append([]byte{}, pngBytes...), make([]byte, 2048)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, "dates", tt.filename, tt.data)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", "Bearer "+env.token)
			resp, err := env.app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestPriceQuote(t *testing.T) {
	env := setupApp(t)
	dt := env.create(t, dateTypeBody("Ajwa", 4, 120, true, "soft"))

	resp := env.do(t, http.MethodPost, "/api/price-quote", map[string]interface{}{
		"dateTypeId": dt.ID,
		"quantity":   1.5,
	}, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var quote models.PriceQuote
	decode(t, resp, &quote)
	assert.Equal(t, 180.0, quote.Total)
	assert.Equal(t, "SAR", quote.Currency)

	resp = env.do(t, http.MethodPost, "/api/price-quote", map[string]interface{}{
		"dateTypeId": 999,
		"quantity":   1,
	}, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestLanguagePreferenceAndCatalog(t *testing.T) {
	env := setupApp(t)
	env.create(t, dateTypeBody("Ajwa", 4, 120, true, "soft"))

	resp := env.do(t, http.MethodPut, "/api/preferences/language", map[string]string{"language": "ar"}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var clientCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == handlers.ClientIDCookie {
			clientCookie = c
		}
	}
	resp.Body.Close()
	require.NotNil(t, clientCookie)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.AddCookie(clientCookie)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var catalog struct {
		Language  string                `json:"language"`
		Dir       string                `json:"dir"`
		DateTypes []models.DateTypeView `json:"date_types"`
	}
	decode(t, resp, &catalog)
	assert.Equal(t, "ar", catalog.Language)
	assert.Equal(t, "rtl", catalog.Dir)
	require.Len(t, catalog.DateTypes, 1)
	assert.Equal(t, "تمر Ajwa", catalog.DateTypes[0].Name)

	// Explicit query wins over the stored preference
	req = httptest.NewRequest(http.MethodGet, "/api/catalog?lang=en", nil)
	req.AddCookie(clientCookie)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	decode(t, resp, &catalog)
	assert.Equal(t, "Ajwa", catalog.DateTypes[0].Name)

	resp = env.do(t, http.MethodGet, "/api/catalog?lang=fr", nil, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPut, "/api/preferences/language", map[string]string{"language": "fr"}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestIdentityHandoff(t *testing.T) {
	env := setupApp(t)

	resp := env.do(t, http.MethodGet, "/api/oauth/google/redirect_url", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var redirect map[string]string
	decode(t, resp, &redirect)
	assert.Contains(t, redirect["redirectUrl"], "provider=google")

	resp = env.do(t, http.MethodPost, "/api/sessions", map[string]string{}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/sessions", map[string]string{"code": "good-code"}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testSessionCookie {
			session = c
		}
	}
	resp.Body.Close()
	require.NotNil(t, session)
	assert.Equal(t, "session-abc", session.Value)
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)
	assert.Equal(t, http.SameSiteNoneMode, session.SameSite)
	assert.Equal(t, 60*24*60*60, session.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: session.Value})
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.AdminIdentity
	decode(t, resp, &me)
	assert.Equal(t, "user-1", me.ID)
	assert.Equal(t, "session", me.Source)

	req = httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: session.Value})
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testSessionCookie {
			cleared = c
		}
	}
	resp.Body.Close()
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}
