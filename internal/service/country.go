package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository"
)

type countryService struct {
	countryRepository repository.Countries
	cityRepository    repository.Cities
	logger            *zap.Logger
}

func newCountryService(countryRepository repository.Countries, cityRepository repository.Cities, logger *zap.Logger) *countryService {
	return &countryService{
		countryRepository: countryRepository,
		cityRepository:    cityRepository,
		logger:            logger,
	}
}

func (s *countryService) CreateCountry(ctx context.Context, cmd domain.CreateCountryCommand) (*domain.Country, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("creating country", zap.Any("cmd", cmd))
	country, err := s.countryRepository.Create(ctx, cmd)
	if errors.Is(err, domain.ErrUniqueViolation) {
		return nil, fmt.Errorf("%w: %w", domain.ErrCountryNameAlreadyExists, err)
	}
	return country, err
}

func (s *countryService) ReadCountry(ctx context.Context, q domain.ReadCountryQuery) (*domain.Country, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("reading country", zap.Int("country_id", q.ID))
	country, err := s.countryRepository.Read(ctx, q)
	return country, countryNotFound(err)
}

func (s *countryService) ReadAllCountries(ctx context.Context) ([]domain.Country, error) {
	s.logger.Debug("reading all countries")
	return s.countryRepository.ReadAll(ctx)
}

func (s *countryService) UpdateCountry(ctx context.Context, cmd domain.UpdateCountryCommand) (*domain.Country, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("updating country", zap.Any("cmd", cmd))
	country, err := s.countryRepository.Update(ctx, cmd)
	return country, countryNotFound(err)
}

func (s *countryService) DeleteCountry(ctx context.Context, cmd domain.DeleteCountryCommand) (*domain.Country, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("deleting country", zap.Int("country_id", cmd.ID))
	country, err := s.countryRepository.Delete(ctx, cmd)
	return country, countryNotFound(err)
}

// ReadCountryWithCities issues one query for the countries and one per country
// for its cities. A country removed between the two reads gets no cities.
// TODO: one city query per country; replace with a single country/city join.
func (s *countryService) ReadCountryWithCities(ctx context.Context) ([]domain.CountryWithCities, error) {
	s.logger.Debug("reading countries with cities")

	countries, err := s.countryRepository.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CountryWithCities, 0, len(countries))
	for _, country := range countries {
		cities, err := s.cityRepository.ReadByCountry(ctx, domain.ReadCityByCountryQuery{CountryCode: country.Code})
		if err != nil {
			return nil, fmt.Errorf("read cities of %s failed: %w", country.Code, err)
		}
		if cities == nil {
			cities = []domain.City{}
		}
		result = append(result, domain.CountryWithCities{Country: country, Cities: cities})
	}
	return result, nil
}

func countryNotFound(err error) error {
	if errors.Is(err, repository.ErrEmptyResult) {
		return fmt.Errorf("%w: %w", domain.ErrCountryNotFound, err)
	}
	return err
}
