package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

type countryRepoMock struct {
	mock.Mock
}

func (m *countryRepoMock) Create(ctx context.Context, cmd domain.CreateCountryCommand) (*domain.Country, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*domain.Country)
	return c, args.Error(1)
}

func (m *countryRepoMock) Read(ctx context.Context, q domain.ReadCountryQuery) (*domain.Country, error) {
	args := m.Called(ctx, q)
	c, _ := args.Get(0).(*domain.Country)
	return c, args.Error(1)
}

func (m *countryRepoMock) ReadByCode(ctx context.Context, q domain.ReadCountryByCodeQuery) (*domain.Country, error) {
	args := m.Called(ctx, q)
	c, _ := args.Get(0).(*domain.Country)
	return c, args.Error(1)
}

func (m *countryRepoMock) ReadAll(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Country)
	return c, args.Error(1)
}

func (m *countryRepoMock) Update(ctx context.Context, cmd domain.UpdateCountryCommand) (*domain.Country, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*domain.Country)
	return c, args.Error(1)
}

func (m *countryRepoMock) Delete(ctx context.Context, cmd domain.DeleteCountryCommand) (*domain.Country, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*domain.Country)
	return c, args.Error(1)
}

type cityRepoMock struct {
	mock.Mock
}

func (m *cityRepoMock) Create(ctx context.Context, cmd domain.CreateCityCommand) (*domain.City, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*domain.City)
	return c, args.Error(1)
}

func (m *cityRepoMock) Read(ctx context.Context, q domain.ReadCityQuery) (*domain.City, error) {
	args := m.Called(ctx, q)
	c, _ := args.Get(0).(*domain.City)
	return c, args.Error(1)
}

func (m *cityRepoMock) ReadByCountry(ctx context.Context, q domain.ReadCityByCountryQuery) ([]domain.City, error) {
	args := m.Called(ctx, q)
	c, _ := args.Get(0).([]domain.City)
	return c, args.Error(1)
}

func (m *cityRepoMock) ReadAll(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.City)
	return c, args.Error(1)
}

func (m *cityRepoMock) Update(ctx context.Context, cmd domain.UpdateCityCommand) (*domain.City, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*domain.City)
	return c, args.Error(1)
}

func (m *cityRepoMock) Delete(ctx context.Context, cmd domain.DeleteCityCommand) (*domain.City, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*domain.City)
	return c, args.Error(1)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, routingKey string, message any) error {
	return m.Called(ctx, routingKey, message).Error(0)
}
