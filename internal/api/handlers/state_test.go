package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohits-web03/filehub/internal/api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	state, err := GenerateState(map[string]string{"flow": flowRegister})
	require.NoError(t, err)

	data, err := DecodeState(state)
	require.NoError(t, err)
	assert.Equal(t, flowRegister, data["flow"])

	other, err := GenerateState(map[string]string{"flow": flowRegister})
	require.NoError(t, err)
	assert.NotEqual(t, state, other)
}

func TestDecodeStateRejects(t *testing.T) {
	for _, state := range []string{"", "nodot", ".e30", "a.b.c", "abc.!!!", "abc.bm90LWpzb24"} {
		_, err := DecodeState(state)
		assert.Error(t, err, state)
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unauthorized", &services.Error{Kind: services.ErrUnauthorized, Message: "User not authenticated"}, http.StatusUnauthorized, "User not authenticated"},
		{"bad request", &services.Error{Kind: services.ErrBadRequest, Message: "name is required"}, http.StatusBadRequest, "name is required"},
		{"not found", &services.Error{Kind: services.ErrNotFound, Message: "File not found"}, http.StatusNotFound, "File not found"},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			assert.Equal(t, tt.status, rr.Code)
			assert.True(t, strings.Contains(rr.Body.String(), tt.message))
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}
