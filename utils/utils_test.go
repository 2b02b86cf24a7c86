package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"silesiagrand/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	gin.SetMode(gin.TestMode)
	Logger = zap.NewNop()
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONError(c, http.StatusNotFound, "Session not found", "abc")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Session not found","details":"abc"}`, w.Body.String())
}

func TestCheckHealth_ReportsUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	status := CheckHealth(context.Background(), []*redis.Client{client})
	assert.Equal(t, []bool{false}, status.Redis)
	assert.Equal(t, status, GetHealthStatus())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn", zapcore.InfoLevel))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("", zapcore.InfoLevel))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("loud", zapcore.DebugLevel))
}

func TestGetSessionCacheClient_NilWithoutAddress(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev; SessionCacheClient = nil })
	config.AppConfig.RedisAddr = ""
	SessionCacheClient = nil

	assert.Nil(t, GetSessionCacheClient())
}

func TestGetSessionCacheClient_NilWhenUnreachable(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev; SessionCacheClient = nil })
	config.AppConfig.RedisAddr = "127.0.0.1:1"
	SessionCacheClient = nil

	assert.Nil(t, GetSessionCacheClient())
	assert.Nil(t, SessionCacheClient)
}
