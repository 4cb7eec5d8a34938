package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository"
)

type cityService struct {
	cityRepository    repository.Cities
	countryRepository repository.Countries
	logger            *zap.Logger
}

func newCityService(cityRepository repository.Cities, countryRepository repository.Countries, logger *zap.Logger) *cityService {
	return &cityService{
		cityRepository:    cityRepository,
		countryRepository: countryRepository,
		logger:            logger,
	}
}

func (s *cityService) CreateCity(ctx context.Context, cmd domain.CreateCityCommand) (*domain.City, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("creating city", zap.Any("cmd", cmd))
	city, err := s.cityRepository.Create(ctx, cmd)
	// unknown country code resolves to a NULL country_id
	if errors.Is(err, domain.ErrNotNullViolation) {
		return nil, fmt.Errorf("%w: %w", domain.ErrCountryNotFound, err)
	}
	return city, err
}

func (s *cityService) ReadCity(ctx context.Context, q domain.ReadCityQuery) (*domain.City, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("reading city", zap.Int("city_id", q.ID))
	city, err := s.cityRepository.Read(ctx, q)
	return city, cityNotFound(err)
}

// ReadCitiesByCountry returns an empty list for a known country without cities
// and ErrNoCityFoundForCountry when the country itself is unknown.
func (s *cityService) ReadCitiesByCountry(ctx context.Context, q domain.ReadCityByCountryQuery) ([]domain.City, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("reading cities by country", zap.String("country_code", q.CountryCode))
	cities, err := s.cityRepository.ReadByCountry(ctx, q)
	if err != nil || len(cities) > 0 {
		return cities, err
	}

	country, err := s.countryRepository.ReadByCode(ctx, domain.ReadCountryByCodeQuery{Code: q.CountryCode})
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrNoCityFoundForCountry
	}
	return cities, nil
}

func (s *cityService) ReadAllCities(ctx context.Context) ([]domain.City, error) {
	s.logger.Debug("reading all cities")
	return s.cityRepository.ReadAll(ctx)
}

func (s *cityService) UpdateCity(ctx context.Context, cmd domain.UpdateCityCommand) (*domain.City, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("updating city", zap.Any("cmd", cmd))
	city, err := s.cityRepository.Update(ctx, cmd)
	return city, cityNotFound(err)
}

func (s *cityService) DeleteCity(ctx context.Context, cmd domain.DeleteCityCommand) (*domain.City, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("deleting city", zap.Int("city_id", cmd.ID))
	city, err := s.cityRepository.Delete(ctx, cmd)
	return city, cityNotFound(err)
}

func cityNotFound(err error) error {
	if errors.Is(err, repository.ErrEmptyResult) {
		return fmt.Errorf("%w: %w", domain.ErrCityNotFound, err)
	}
	return err
}
