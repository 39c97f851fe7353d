package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva-site/internal/cache"
	"minerva-site/internal/handlers"
	"minerva-site/internal/logger"
	"minerva-site/internal/repository"
	"minerva-site/internal/services"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	assets := filepath.Join(dir, "static-assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "banner.jpg"), []byte("jpg"), 0o644))

	log := logger.NewNop()
	svc := services.NewContentService(repository.NewFileRepository(filepath.Join(dir, "data.json")), log)
	c := cache.New(time.Minute)
	t.Cleanup(c.Stop)

	router := gin.New()
	router.Use(handlers.RequestLogger(log))
	RegisterRoutes(router,
		handlers.NewStorefrontHandler(svc, c, handlers.NewImageResolver(assets, "/placeholder.png"), log),
		handlers.NewAdminHandler(svc),
		assets,
	)
	return router, dir
}

func TestStorefrontIsCompressed(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/nav", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestAdminIsNotCompressed(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/nav", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), "Sobre Nosotros")
}

func TestImagesAreServed(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/banner.jpg", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpg", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductImagesPointAtServedAssets(t *testing.T) {
	router, dir := setupRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uploads.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "uploads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uploads", "serum.jpg"), []byte("jpg"), 0o644))

	images := map[string]string{
		"images/banner.jpg":  "/images/banner.jpg",
		"uploads/serum.jpg":  "/placeholder.png",
		"uploads.jpg":        "/placeholder.png",
		"images/missing.jpg": "/placeholder.png",
	}
	for src, want := range images {
		body, err := json.Marshal(map[string]string{"nombre": src, "descripcion": "x", "precio": "1", "imagen": src})
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/"+created.ID, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var product struct {
			Image string `json:"imagen"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, want, product.Image, src)

		if want != "/placeholder.png" {
			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, product.Image, nil))
			assert.Equal(t, http.StatusOK, w.Code, src)
		}
	}
}
