package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		desc   string
		err    error
		status int
	}{
		{"not found", xerrors.Errorf("token: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unauthorized", xerrors.Errorf("owner: %w", domain.ErrUnauthorized), http.StatusForbidden},
		{"invalid argument", xerrors.Errorf("price: %w", domain.ErrInvalidArgument), http.StatusBadRequest},
		{"insufficient bid", domain.ErrInsufficientBid, http.StatusBadRequest},
		{"auction expired", domain.ErrAuctionExpired, http.StatusConflict},
		{"auction not expired", domain.ErrAuctionNotExpired, http.StatusConflict},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		assert.Equal(t, c.status, StatusOf(c.err, http.StatusInternalServerError), c.desc)
	}
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	assert.NoError(t, MakeJsonResp(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), http.StatusInternalServerError, domain.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var res JsonResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, JsonResponseStatusFail, res.Status)
	assert.Equal(t, domain.ErrNotFound.Error(), res.Data)

	rec = httptest.NewRecorder()
	assert.NoError(t, MakeJsonResp(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), http.StatusOK, map[string]int{"a": 1}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, JsonResponseStatusSuccess, res.Status)
}
