package booking

import "github.com/BruksfildServices01/beleza-studio/internal/httperr"

var (
	ErrSessionNotFound       = httperr.ErrNotFound("session_not_found")
	ErrSessionLocked         = httperr.ErrConflict("session_locked")
	ErrStepIncomplete        = httperr.ErrUnprocessable("step_incomplete")
	ErrInvalidDate           = httperr.ErrBusiness("invalid_date")
	ErrSelectServiceFirst    = httperr.ErrUnprocessable("select_service_first")
	ErrSelectSpecialistFirst = httperr.ErrUnprocessable("select_specialist_and_date_first")
	ErrSpecialistNotEligible = httperr.ErrUnprocessable("specialist_not_eligible")
	ErrSlotUnavailable       = httperr.ErrConflict("slot_unavailable")
	ErrPaymentExpired        = httperr.ErrGone("payment_expired")
)
