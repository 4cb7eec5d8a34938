package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/config"
	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository"
)

type Services struct {
	Countries Countries
	Cities    Cities
	Bids      Bids
}

type Deps struct {
	Logger    *zap.Logger
	Config    *config.Config
	Repos     *repository.Repositories
	Publisher Publisher
}

func NewServices(deps Deps) *Services {
	return &Services{
		Countries: newCountryService(deps.Repos.Countries, deps.Repos.Cities, deps.Logger.Named("country_service")),
		Cities:    newCityService(deps.Repos.Cities, deps.Repos.Countries, deps.Logger.Named("city_service")),
		Bids: newBidService(deps.Publisher,
			deps.Config.Broker.BidQueue,
			deps.Config.Broker.BidQueueSecond,
			deps.Logger.Named("bid_service"),
		),
	}
}

// Publisher sends a message to the queue named by routingKey.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

type Countries interface {
	CreateCountry(ctx context.Context, cmd domain.CreateCountryCommand) (*domain.Country, error)
	ReadCountry(ctx context.Context, q domain.ReadCountryQuery) (*domain.Country, error)
	ReadAllCountries(ctx context.Context) ([]domain.Country, error)
	UpdateCountry(ctx context.Context, cmd domain.UpdateCountryCommand) (*domain.Country, error)
	DeleteCountry(ctx context.Context, cmd domain.DeleteCountryCommand) (*domain.Country, error)
	ReadCountryWithCities(ctx context.Context) ([]domain.CountryWithCities, error)
}

type Cities interface {
	CreateCity(ctx context.Context, cmd domain.CreateCityCommand) (*domain.City, error)
	ReadCity(ctx context.Context, q domain.ReadCityQuery) (*domain.City, error)
	ReadCitiesByCountry(ctx context.Context, q domain.ReadCityByCountryQuery) ([]domain.City, error)
	ReadAllCities(ctx context.Context) ([]domain.City, error)
	UpdateCity(ctx context.Context, cmd domain.UpdateCityCommand) (*domain.City, error)
	DeleteCity(ctx context.Context, cmd domain.DeleteCityCommand) (*domain.City, error)
}

type Bids interface {
	CreateBid(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error)
	CreateBidSecond(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error)
}
