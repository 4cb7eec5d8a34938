package domain

import "errors"

var (
	ErrCountryNotFound          = errors.New("country not found")
	ErrCountryNameAlreadyExists = errors.New("country name already exists")
	ErrCountryCodeAlreadyExists = errors.New("country code already exists")

	ErrCityNotFound          = errors.New("city not found")
	ErrCityNameAlreadyExists = errors.New("city name already exists")
	ErrDuplicateCityCode     = errors.New("duplicate city code")
	ErrNoCityFoundForCountry = errors.New("no city found for country")

	// Generic store classifications used when no constraint-specific error applies.
	ErrUniqueViolation     = errors.New("unique violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrDriver              = errors.New("store operation failed")
)
