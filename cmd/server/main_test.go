package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextperm/internal/domain/permutation"
	v1 "nextperm/internal/infrastructure/http/v1"
	"nextperm/internal/infrastructure/http/v1/dto"
	"nextperm/internal/infrastructure/http/v1/handlers"
	"nextperm/pkg/logger"
)

func testRouter() http.Handler {
	return v1.NewRouter(v1.RouterConfig{
		Logger:      logger.NewNop(),
		Permutation: permutation.NewService(nil),
		Health:      handlers.NewHealthHandler(appName, appVersion),
	})
}

func get(t *testing.T, h http.Handler, path string, acceptGzip bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if acceptGzip {
		req.Header.Set("Accept-Encoding", "gzip")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_CompressesWhenAccepted(t *testing.T) {
	h, err := newHandler(testRouter(), true, 0)
	require.NoError(t, err)

	rec := get(t, h, "/api/v1/next-permutation/230241", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer zr.Close()

	var resp dto.NextPermutationResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "230412", resp.NextPermNum)
}

func TestNewHandler_PlainWithoutAcceptEncoding(t *testing.T) {
	h, err := newHandler(testRouter(), true, 0)
	require.NoError(t, err)

	rec := get(t, h, "/api/v1/next-permutation/123", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))

	var resp dto.NextPermutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "132", resp.NextPermNum)
}

func TestNewHandler_Disabled(t *testing.T) {
	h, err := newHandler(testRouter(), false, 0)
	require.NoError(t, err)

	rec := get(t, h, "/api/v1/next-permutation/123", true)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestNewHandler_SmallResponsesBelowMinSize(t *testing.T) {
	h, err := newHandler(testRouter(), true, 1024)
	require.NoError(t, err)

	rec := get(t, h, "/api/v1/next-permutation/123", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestNewHandler_InvalidMinSize(t *testing.T) {
	_, err := newHandler(testRouter(), true, -1)

	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("NEXTPERM_TEST_VALUE", "9090")

	assert.Equal(t, "9090", getEnv("NEXTPERM_TEST_VALUE", "8080"))
	assert.Equal(t, "8080", getEnv("NEXTPERM_TEST_UNSET", "8080"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("NEXTPERM_TEST_SIZE", "512")
	t.Setenv("NEXTPERM_TEST_BAD", "big")

	assert.Equal(t, 512, getEnvInt("NEXTPERM_TEST_SIZE", 0))
	assert.Equal(t, 0, getEnvInt("NEXTPERM_TEST_BAD", 0))
	assert.Equal(t, 7, getEnvInt("NEXTPERM_TEST_UNSET", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NEXTPERM_TEST_TIMEOUT", "5s")
	t.Setenv("NEXTPERM_TEST_BAD", "soon")

	assert.Equal(t, 5*time.Second, getEnvDuration("NEXTPERM_TEST_TIMEOUT", time.Minute))
	assert.Equal(t, time.Minute, getEnvDuration("NEXTPERM_TEST_BAD", time.Minute))
	assert.Equal(t, time.Minute, getEnvDuration("NEXTPERM_TEST_UNSET", time.Minute))
}
