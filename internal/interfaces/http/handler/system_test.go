package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping() error {
	return p.err
}

func setupSystemTest(storage StoragePinger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewSystemHandler("1.2.3", storage)
	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine
}

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler("1.0.0", nil)
	require.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_Health(t *testing.T) {
	engine := setupSystemTest(stubPinger{})

	w := performJSON(engine, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := dataObject(t, resp)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.Equal(t, "ok", data["storage"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}

func TestSystemHandler_Health_NoPinger(t *testing.T) {
	engine := setupSystemTest(nil)

	w := performJSON(engine, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := dataObject(t, resp)
	assert.Equal(t, "ok", data["status"])
}

func TestSystemHandler_Health_StorageDown(t *testing.T) {
	engine := setupSystemTest(stubPinger{err: errors.New("connection refused")})

	w := performJSON(engine, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "STORAGE_FAILURE", resp.Error.Code)

	data := dataObject(t, resp)
	assert.Equal(t, "degraded", data["status"])
	assert.Equal(t, "unreachable", data["storage"])
}

func TestSystemHandler_Ping(t *testing.T) {
	engine := setupSystemTest(nil)

	w := performJSON(engine, http.MethodGet, "/api/v1/ping", "")

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := dataObject(t, resp)
	assert.Equal(t, "pong", data["message"])

	timestamp, ok := data["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, timestamp)
	assert.NoError(t, err)
}
