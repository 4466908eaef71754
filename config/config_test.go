package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaults(t *testing.T) {
	os.Unsetenv("PENDING_RELEASE_SCHEDULE")
	os.Unsetenv("REQUEST_TIMEOUT")
	conf := New()

	assert.Equal(t, "@hourly", conf.PendingReleaseSchedule)
	assert.Equal(t, 30*time.Second, conf.RequestTimeout)
}

func TestNewInvalidTimeoutFallsBack(t *testing.T) {
	os.Setenv("REQUEST_TIMEOUT", "soon")
	defer os.Unsetenv("REQUEST_TIMEOUT")
	conf := New()

	assert.Equal(t, 30*time.Second, conf.RequestTimeout)
}

func TestNewTimeoutFromEnv(t *testing.T) {
	os.Setenv("REQUEST_TIMEOUT", "5s")
	defer os.Unsetenv("REQUEST_TIMEOUT")
	conf := New()

	assert.Equal(t, 5*time.Second, conf.RequestTimeout)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"response": "error it borked, bad request"}`, rr.Body.String())
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
