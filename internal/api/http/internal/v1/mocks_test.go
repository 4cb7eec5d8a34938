package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

type countriesMock struct{ mock.Mock }

func (m *countriesMock) CreateCountry(ctx context.Context, cmd domain.CreateCountryCommand) (*domain.Country, error) {
	args := m.Called(ctx, cmd)
	country, _ := args.Get(0).(*domain.Country)
	return country, args.Error(1)
}

func (m *countriesMock) ReadCountry(ctx context.Context, q domain.ReadCountryQuery) (*domain.Country, error) {
	args := m.Called(ctx, q)
	country, _ := args.Get(0).(*domain.Country)
	return country, args.Error(1)
}

func (m *countriesMock) ReadAllCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	countries, _ := args.Get(0).([]domain.Country)
	return countries, args.Error(1)
}

func (m *countriesMock) UpdateCountry(ctx context.Context, cmd domain.UpdateCountryCommand) (*domain.Country, error) {
	args := m.Called(ctx, cmd)
	country, _ := args.Get(0).(*domain.Country)
	return country, args.Error(1)
}

func (m *countriesMock) DeleteCountry(ctx context.Context, cmd domain.DeleteCountryCommand) (*domain.Country, error) {
	args := m.Called(ctx, cmd)
	country, _ := args.Get(0).(*domain.Country)
	return country, args.Error(1)
}

func (m *countriesMock) ReadCountryWithCities(ctx context.Context) ([]domain.CountryWithCities, error) {
	args := m.Called(ctx)
	countries, _ := args.Get(0).([]domain.CountryWithCities)
	return countries, args.Error(1)
}

type citiesMock struct{ mock.Mock }

func (m *citiesMock) CreateCity(ctx context.Context, cmd domain.CreateCityCommand) (*domain.City, error) {
	args := m.Called(ctx, cmd)
	city, _ := args.Get(0).(*domain.City)
	return city, args.Error(1)
}

func (m *citiesMock) ReadCity(ctx context.Context, q domain.ReadCityQuery) (*domain.City, error) {
	args := m.Called(ctx, q)
	city, _ := args.Get(0).(*domain.City)
	return city, args.Error(1)
}

func (m *citiesMock) ReadCitiesByCountry(ctx context.Context, q domain.ReadCityByCountryQuery) ([]domain.City, error) {
	args := m.Called(ctx, q)
	cities, _ := args.Get(0).([]domain.City)
	return cities, args.Error(1)
}

func (m *citiesMock) ReadAllCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]domain.City)
	return cities, args.Error(1)
}

func (m *citiesMock) UpdateCity(ctx context.Context, cmd domain.UpdateCityCommand) (*domain.City, error) {
	args := m.Called(ctx, cmd)
	city, _ := args.Get(0).(*domain.City)
	return city, args.Error(1)
}

func (m *citiesMock) DeleteCity(ctx context.Context, cmd domain.DeleteCityCommand) (*domain.City, error) {
	args := m.Called(ctx, cmd)
	city, _ := args.Get(0).(*domain.City)
	return city, args.Error(1)
}

type bidsMock struct{ mock.Mock }

func (m *bidsMock) CreateBid(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error) {
	args := m.Called(ctx, cmd)
	return cmd, args.Error(0)
}

func (m *bidsMock) CreateBidSecond(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error) {
	args := m.Called(ctx, cmd)
	return cmd, args.Error(0)
}
