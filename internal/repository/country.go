package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository/shape"
)

type countryRepository struct {
	exec       executor
	classifier *Classifier
}

func newCountryRepository(db *sqlx.DB, classifier *Classifier) *countryRepository {
	return &countryRepository{
		exec:       executor{db: db},
		classifier: classifier,
	}
}

func (r *countryRepository) Create(ctx context.Context, cmd domain.CreateCountryCommand) (*domain.Country, error) {
	const query = `
	INSERT INTO country (country_name, country_code)
	VALUES (:country_name, :country_code)
	RETURNING country_id, country_name, country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.Country](shape.AsOne, r.exec.named(query, cmd)))
	return single(op(ctx))
}

func (r *countryRepository) Read(ctx context.Context, q domain.ReadCountryQuery) (*domain.Country, error) {
	const query = `
	SELECT country_id, country_name, country_code FROM country WHERE country_id = :country_id;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.Country](shape.AsOne, r.exec.named(query, q)))
	return single(op(ctx))
}

// ReadByCode returns nil without error when no country has the code.
func (r *countryRepository) ReadByCode(ctx context.Context, q domain.ReadCountryByCodeQuery) (*domain.Country, error) {
	const query = `
	SELECT country_id, country_name, country_code FROM country WHERE country_code = :country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.Country](shape.AsOptionalOne, r.exec.named(query, q)))
	return optional(op(ctx))
}

func (r *countryRepository) ReadAll(ctx context.Context) ([]domain.Country, error) {
	const query = `
	SELECT country_id, country_name, country_code FROM country ORDER BY country_id;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.Country](shape.AsList, r.exec.query(query)))
	return op(ctx)
}

func (r *countryRepository) Update(ctx context.Context, cmd domain.UpdateCountryCommand) (*domain.Country, error) {
	const query = `
	UPDATE country
	SET country_name = :country_name,
	    country_code = :country_code
	WHERE country_id = :country_id
	RETURNING country_id, country_name, country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.Country](shape.AsOne, r.exec.named(query, cmd)))
	return single(op(ctx))
}

func (r *countryRepository) Delete(ctx context.Context, cmd domain.DeleteCountryCommand) (*domain.Country, error) {
	const query = `
	DELETE FROM country WHERE country_id = :country_id
	RETURNING country_id, country_name, country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.Country](shape.AsOne, r.exec.named(query, cmd)))
	return single(op(ctx))
}
