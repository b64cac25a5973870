package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/ledger/base/ctx"
)

func newServer() *echo.Echo {
	m := InitMiddleware()
	e := echo.New()
	e.Use(echoMiddleware.RequestID())
	e.Use(m.AddContext())
	e.Use(m.ResponseLogger())
	e.Use(m.CORS)
	return e
}

func TestAddContext(t *testing.T) {
	e := newServer()
	var requestID interface{}
	e.GET("/ping", func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		requestID = cont.Value("requestID")
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, requestID)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), requestID)
}

func TestResponseLoggerHandlesErrors(t *testing.T) {
	e := newServer()
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestIsValidAddress(t *testing.T) {
	e := newServer()
	e.GET("/balances/:address", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IsValidAddress("address"))

	tests := []struct {
		path   string
		status int
	}{
		{"/balances/0x5aeda56215b167893e80b4fe645ba6d5bab767de", http.StatusOK},
		{"/balances/0x5aeDA56215b167893e80B4fE645BA6d5Bab767DE", http.StatusOK},
		{"/balances/0x1234", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.status, rec.Code, tt.path)
	}
}
