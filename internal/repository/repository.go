package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository/shape"
)

// ErrEmptyResult is returned by single-record operations that found no row.
var ErrEmptyResult = shape.ErrEmptyResult

type Repositories struct {
	Countries Countries
	Cities    Cities
}

func NewRepositories(db *sqlx.DB, logger *zap.Logger) *Repositories {
	classifier := NewClassifier(logger.Named("classifier"))
	return &Repositories{
		Countries: newCountryRepository(db, classifier),
		Cities:    newCityRepository(db, classifier),
	}
}

type Countries interface {
	Create(ctx context.Context, cmd domain.CreateCountryCommand) (*domain.Country, error)
	Read(ctx context.Context, q domain.ReadCountryQuery) (*domain.Country, error)
	ReadByCode(ctx context.Context, q domain.ReadCountryByCodeQuery) (*domain.Country, error)
	ReadAll(ctx context.Context) ([]domain.Country, error)
	Update(ctx context.Context, cmd domain.UpdateCountryCommand) (*domain.Country, error)
	Delete(ctx context.Context, cmd domain.DeleteCountryCommand) (*domain.Country, error)
}

type Cities interface {
	Create(ctx context.Context, cmd domain.CreateCityCommand) (*domain.City, error)
	Read(ctx context.Context, q domain.ReadCityQuery) (*domain.City, error)
	ReadByCountry(ctx context.Context, q domain.ReadCityByCountryQuery) ([]domain.City, error)
	ReadAll(ctx context.Context) ([]domain.City, error)
	Update(ctx context.Context, cmd domain.UpdateCityCommand) (*domain.City, error)
	Delete(ctx context.Context, cmd domain.DeleteCityCommand) (*domain.City, error)
}
