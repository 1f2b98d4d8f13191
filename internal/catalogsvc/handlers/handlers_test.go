package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
)

func TestCreateErrorResponseStatusMapping(t *testing.T) {
	h := &Handler{}

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", &apperr.NotFoundError{Resource: "game", ID: "abc"}, http.StatusNotFound},
		{"conflict", &apperr.ConflictError{Message: "email already registered"}, http.StatusConflict},
		{"forbidden", &apperr.ForbiddenError{Message: "invalid credentials"}, http.StatusForbidden},
		{"upstream", &apperr.UpstreamFetchError{Resource: "games", Status: 503}, http.StatusBadGateway},
		{"wrapped upstream", fmt.Errorf("sync: %w", &apperr.UpstreamFetchError{Resource: "trailers", Status: 500}), http.StatusBadGateway},
		{"persistence", &apperr.PersistenceError{Collection: "games", Err: errors.New("boom")}, http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.CreateErrorResponse(rec, tc.err)

			assert.Equal(t, tc.code, rec.Code)

			var rsp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rsp))
			assert.Equal(t, tc.code, rsp.Code)
			assert.NotEmpty(t, rsp.Error)
		})
	}
}

func TestCreateResponseWritesJSON(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()

	h.CreateResponse(rec, Response{Message: "ok", Code: http.StatusCreated, Data: map[string]string{"id": "1"}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rsp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rsp))
	assert.Equal(t, "ok", rsp.Message)
}
