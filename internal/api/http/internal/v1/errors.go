package v1

import (
	"errors"
	"net/http"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

const (
	invalidCredentialsMessage = "Could not validate credentials."
	invalidBodyMessage        = "Unprocessable entity."
	internalErrorMessage      = "Internal server error."
)

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
} // @name ErrorResponse

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
} // @name FieldError

type errorMapping struct {
	err     error
	status  int
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrCountryNotFound, http.StatusNotFound, "Country not found."},
	{domain.ErrCityNotFound, http.StatusNotFound, "City not found."},
	{domain.ErrNoCityFoundForCountry, http.StatusNotFound, "No city found for this country."},
	{domain.ErrCountryNameAlreadyExists, http.StatusConflict, "This 'name' of country already exists."},
	{domain.ErrCountryCodeAlreadyExists, http.StatusConflict, "This 'code' of country already exists."},
	{domain.ErrCityNameAlreadyExists, http.StatusConflict, "This 'name' of city already exists."},
	{domain.ErrDuplicateCityCode, http.StatusConflict, "This 'code' of city already exists."},
	{domain.ErrUniqueViolation, http.StatusConflict, "Unique constraint violation."},
	{domain.ErrForeignKeyViolation, http.StatusConflict, "Record is referenced by another record."},
	{domain.ErrNotNullViolation, http.StatusUnprocessableEntity, "Required value is missing."},
}

// statusFor returns the response status and message for err, and false when err
// is not one the API reports to clients.
func statusFor(err error) (int, string, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message, true
		}
	}
	return http.StatusInternalServerError, internalErrorMessage, false
}
