package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrBusiness("invalid_date"), http.StatusBadRequest},
		{ErrNotFound("session_not_found"), http.StatusNotFound},
		{ErrConflict("slot_unavailable"), http.StatusConflict},
		{ErrUnprocessable("step_incomplete"), http.StatusUnprocessableEntity},
		{ErrGone("payment_expired"), http.StatusGone},
		{ErrPayloadTooLarge("image_too_large"), http.StatusRequestEntityTooLarge},
		{BusinessError{Code: "zero"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		be, ok := AsBusiness(tc.err)
		assert.True(t, ok)
		assert.Equal(t, tc.status, be.HTTPStatus(), be.Code)
	}
}

func TestAsBusiness_Wrapped(t *testing.T) {
	errSlot := ErrConflict("slot_unavailable")
	wrapped := fmt.Errorf("finalize: %w", errSlot)

	be, ok := AsBusiness(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "slot_unavailable", be.Code)
	assert.True(t, IsBusiness(wrapped, "slot_unavailable"))
	assert.False(t, IsBusiness(wrapped, "session_locked"))
	assert.ErrorIs(t, wrapped, errSlot)

	_, ok = AsBusiness(errors.New("boom"))
	assert.False(t, ok)
}
