package dto

import (
	"net/http"
	"strings"
)

// Commonly referenced error codes. Domain services emit many more; the
// full set is resolved through GetHTTPStatus.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "ALREADY_EXISTS"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to the suffix/prefix rules in
// GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	// Authentication
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"VENDOR_NOT_APPROVED": http.StatusForbidden,

	// Conflicts
	"EMAIL_TAKEN":          http.StatusConflict,
	"BUSINESS_NAME_TAKEN":  http.StatusConflict,
	"APPLICATION_EXISTS":   http.StatusConflict,
	"CATEGORY_EXISTS":      http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"ALREADY_REVIEWED":     http.StatusConflict,
	"DUPLICATE_SKU":        http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rules surface as 400, same as validation failures
	"INSUFFICIENT_STOCK":  http.StatusBadRequest,
	"PRODUCT_UNAVAILABLE": http.StatusBadRequest,
	"EMPTY_CART":          http.StatusBadRequest,
	"NO_SHIPPING_ADDRESS": http.StatusBadRequest,
	"PAYMENT_FAILED":      http.StatusBadRequest,
	"CHECKOUT_FAILED":     http.StatusBadRequest,

	// Input
	"BAD_REQUEST":  http.StatusBadRequest,
	"INVALID_JSON": http.StatusBadRequest,

	// Internal
	"INTERNAL_ERROR": http.StatusInternalServerError,
	"SLUG_EXHAUSTED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unlisted codes are classified by shape: *_NOT_FOUND maps to 404,
// *_TAKEN and *_EXISTS to 409, INVALID_* to 400. Anything else is
// treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND") || code == "NOT_FOUND":
		return http.StatusNotFound
	case strings.HasSuffix(code, "_TAKEN") || strings.HasSuffix(code, "_EXISTS"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
