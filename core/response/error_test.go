package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sendkit/core/response"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("implements_error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Not Found", response.ErrNotFound.Error())
	})

	t.Run("status_codes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusNotFound, response.ErrNotFound.StatusCode())
		assert.Equal(t, http.StatusForbidden, response.ErrForbidden.StatusCode())
		assert.Equal(t, http.StatusBadRequest, response.ErrBadRequest.StatusCode())
		assert.Equal(t, http.StatusInternalServerError, response.ErrInternalServerError.StatusCode())
	})

	t.Run("with_message_copies", func(t *testing.T) {
		t.Parallel()
		custom := response.ErrForbidden.WithMessage("hidden files are not served")
		assert.Equal(t, "hidden files are not served", custom.Error())
		assert.Equal(t, http.StatusForbidden, custom.StatusCode())
		assert.Equal(t, "Forbidden", response.ErrForbidden.Error())
	})

	t.Run("errors_is_matches_sentinels", func(t *testing.T) {
		t.Parallel()
		var err error = response.ErrNotFound
		assert.ErrorIs(t, err, response.ErrNotFound)
		assert.NotErrorIs(t, err, response.ErrForbidden)
	})
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	resp := response.Error(cause)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	err := resp(w, r)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, w.Body.String())
}
