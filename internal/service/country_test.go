package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository"
)

func newCountryFixture() (*countryService, *countryRepoMock, *cityRepoMock) {
	countries := &countryRepoMock{}
	cities := &cityRepoMock{}
	return newCountryService(countries, cities, zap.NewNop()), countries, cities
}

func TestCreateCountry(t *testing.T) {
	svc, countries, _ := newCountryFixture()
	ctx := context.Background()
	want := &domain.Country{ID: 1, Name: "Russia", Code: "RUS"}

	countries.On("Create", ctx, domain.CreateCountryCommand{Name: "Russia", Code: "RUS"}).Return(want, nil)

	got, err := svc.CreateCountry(ctx, domain.CreateCountryCommand{Name: " Russia ", Code: "RUS "})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	countries.AssertExpectations(t)
}

func TestCreateCountry_UniqueViolation(t *testing.T) {
	svc, countries, _ := newCountryFixture()

	countries.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrUniqueViolation)

	_, err := svc.CreateCountry(context.Background(), domain.CreateCountryCommand{Name: "Russia", Code: "RUS"})
	assert.ErrorIs(t, err, domain.ErrCountryNameAlreadyExists)
}

func TestCreateCountry_NamedConstraintPassesThrough(t *testing.T) {
	svc, countries, _ := newCountryFixture()

	countries.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrCountryCodeAlreadyExists)

	_, err := svc.CreateCountry(context.Background(), domain.CreateCountryCommand{Name: "Russia", Code: "RUS"})
	assert.ErrorIs(t, err, domain.ErrCountryCodeAlreadyExists)
	assert.NotErrorIs(t, err, domain.ErrCountryNameAlreadyExists)
}

func TestCreateCountry_InvalidNeverReachesStore(t *testing.T) {
	svc, countries, _ := newCountryFixture()

	_, err := svc.CreateCountry(context.Background(), domain.CreateCountryCommand{Name: "Russia", Code: "ru"})

	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	countries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCountryNotFound(t *testing.T) {
	svc, countries, _ := newCountryFixture()
	ctx := context.Background()

	countries.On("Read", ctx, domain.ReadCountryQuery{ID: 5}).Return(nil, repository.ErrEmptyResult)
	countries.On("Update", ctx, mock.Anything).Return(nil, repository.ErrEmptyResult)
	countries.On("Delete", ctx, domain.DeleteCountryCommand{ID: 5}).Return(nil, repository.ErrEmptyResult)

	_, err := svc.ReadCountry(ctx, domain.ReadCountryQuery{ID: 5})
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	_, err = svc.UpdateCountry(ctx, domain.UpdateCountryCommand{ID: 5, Name: "Russia", Code: "RUS"})
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	_, err = svc.DeleteCountry(ctx, domain.DeleteCountryCommand{ID: 5})
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestCountry_UntranslatedErrorsPropagate(t *testing.T) {
	svc, countries, _ := newCountryFixture()
	ctx := context.Background()

	countries.On("Read", ctx, mock.Anything).Return(nil, context.Canceled)
	countries.On("ReadAll", ctx).Return(nil, domain.ErrDriver)

	_, err := svc.ReadCountry(ctx, domain.ReadCountryQuery{ID: 1})
	assert.Same(t, context.Canceled, err)

	_, err = svc.ReadAllCountries(ctx)
	assert.Same(t, domain.ErrDriver, err)
}

func TestReadCountryWithCities(t *testing.T) {
	svc, countries, cities := newCountryFixture()
	ctx := context.Background()

	rus := domain.Country{ID: 1, Name: "Russia", Code: "RUS"}
	kaz := domain.Country{ID: 2, Name: "Kazakhstan", Code: "KAZ"}
	moscow := domain.City{ID: 1, Name: "Moscow", Code: "MSK", CountryCode: "RUS"}
	kazan := domain.City{ID: 3, Name: "Kazan", Code: "KZN", CountryCode: "RUS"}

	countries.On("ReadAll", ctx).Return([]domain.Country{rus, kaz}, nil)
	cities.On("ReadByCountry", ctx, domain.ReadCityByCountryQuery{CountryCode: "RUS"}).Return([]domain.City{moscow, kazan}, nil)
	cities.On("ReadByCountry", ctx, domain.ReadCityByCountryQuery{CountryCode: "KAZ"}).Return([]domain.City{}, nil)

	got, err := svc.ReadCountryWithCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CountryWithCities{
		{Country: rus, Cities: []domain.City{moscow, kazan}},
		{Country: kaz, Cities: []domain.City{}},
	}, got)
	cities.AssertNumberOfCalls(t, "ReadByCountry", 2)
	countries.AssertNotCalled(t, "ReadByCode", mock.Anything, mock.Anything)
}

func TestReadCountryWithCities_CountryRemovedDuringMerge(t *testing.T) {
	svc, countries, cities := newCountryFixture()
	ctx := context.Background()

	kaz := domain.Country{ID: 2, Name: "Kazakhstan", Code: "KAZ"}
	countries.On("ReadAll", ctx).Return([]domain.Country{kaz}, nil)
	cities.On("ReadByCountry", ctx, domain.ReadCityByCountryQuery{CountryCode: "KAZ"}).Return(nil, nil)
	countries.On("ReadByCode", ctx, mock.Anything).Return(nil, nil)

	got, err := svc.ReadCountryWithCities(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, kaz, got[0].Country)
	assert.NotNil(t, got[0].Cities)
	assert.Empty(t, got[0].Cities)
	countries.AssertNotCalled(t, "ReadByCode", mock.Anything, mock.Anything)
}

func TestReadCountryWithCities_StoreFailure(t *testing.T) {
	svc, countries, cities := newCountryFixture()
	ctx := context.Background()

	countries.On("ReadAll", ctx).Return([]domain.Country{{ID: 1, Name: "Russia", Code: "RUS"}}, nil)
	cities.On("ReadByCountry", ctx, mock.Anything).Return(nil, domain.ErrDriver)

	_, err := svc.ReadCountryWithCities(ctx)
	assert.ErrorIs(t, err, domain.ErrDriver)
}

func TestReadCountryWithCities_Empty(t *testing.T) {
	svc, countries, cities := newCountryFixture()
	ctx := context.Background()

	countries.On("ReadAll", ctx).Return([]domain.Country{}, nil)

	got, err := svc.ReadCountryWithCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	cities.AssertNotCalled(t, "ReadByCountry", mock.Anything, mock.Anything)
}
