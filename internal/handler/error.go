// Package handler holds pieces shared by the HTTP surfaces: domain error
// translation and request validation.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldhouse/ledger/internal/domain"
)

// statusCodes maps domain error codes to HTTP status codes.
var statusCodes = map[string]int{
	domain.ECONFLICT:     http.StatusConflict,
	domain.EINVALID:      http.StatusBadRequest,
	domain.ENOTFOUND:     http.StatusNotFound,
	domain.EUNAUTHORIZED: http.StatusUnauthorized,
	domain.EPAYMENT:      http.StatusPaymentRequired,
	domain.EINTERNAL:     http.StatusInternalServerError,
	domain.ECONSISTENCY:  http.StatusInternalServerError,
}

// StatusCode returns the HTTP status code for a domain error.
func StatusCode(err error) int {
	if code, ok := statusCodes[domain.ErrorCode(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// ErrorBody is the JSON shape every error response uses.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// ErrorResponse writes a domain error as a JSON response. Internal and
// consistency errors surface a generic message; the detail stays in logs.
func ErrorResponse(c echo.Context, err error) error {
	return c.JSON(StatusCode(err), ErrorBody{
		Success: false,
		Error:   domain.ErrorMessage(err),
		Code:    domain.ErrorCode(err),
	})
}
