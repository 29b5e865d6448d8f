package httperr

import (
	"errors"
	"net/http"
)

// BusinessError é um erro esperado das regras de negócio. Status é o
// HTTP devolvido ao cliente; zero vale 400.
type BusinessError struct {
	Code   string
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest}
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Status: http.StatusNotFound}
}

func ErrConflict(code string) error {
	return BusinessError{Code: code, Status: http.StatusConflict}
}

func ErrUnprocessable(code string) error {
	return BusinessError{Code: code, Status: http.StatusUnprocessableEntity}
}

func ErrGone(code string) error {
	return BusinessError{Code: code, Status: http.StatusGone}
}

func ErrPayloadTooLarge(code string) error {
	return BusinessError{Code: code, Status: http.StatusRequestEntityTooLarge}
}

// AsBusiness extrai o BusinessError da cadeia de err.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}
