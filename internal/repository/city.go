package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository/shape"
)

type cityRepository struct {
	exec       executor
	classifier *Classifier
}

func newCityRepository(db *sqlx.DB, classifier *Classifier) *cityRepository {
	return &cityRepository{
		exec:       executor{db: db},
		classifier: classifier,
	}
}

// Create resolves the country by code inside the insert. An unknown code leaves
// country_id NULL and fails the not-null constraint.
func (r *cityRepository) Create(ctx context.Context, cmd domain.CreateCityCommand) (*domain.City, error) {
	const query = `
	INSERT INTO city (city_name, city_code, country_id)
	VALUES (
		:city_name,
		:city_code,
		(SELECT country_id FROM country WHERE country_code = :country_code)
	)
	RETURNING
		city_id,
		city_name,
		city_code,
		(SELECT country_code FROM country WHERE city.country_id = country.country_id) AS country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.City](shape.AsOne, r.exec.named(query, cmd)))
	return single(op(ctx))
}

func (r *cityRepository) Read(ctx context.Context, q domain.ReadCityQuery) (*domain.City, error) {
	const query = `
	SELECT city_id, city_name, city_code, country_code
	FROM city
	JOIN country c ON c.country_id = city.country_id
	WHERE city_id = :city_id;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.City](shape.AsOne, r.exec.named(query, q)))
	return single(op(ctx))
}

func (r *cityRepository) ReadByCountry(ctx context.Context, q domain.ReadCityByCountryQuery) ([]domain.City, error) {
	const query = `
	SELECT city_id, city_name, city_code, country_code
	FROM city
	JOIN country c ON c.country_id = city.country_id
	WHERE country_code = :country_code
	ORDER BY city_id;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.City](shape.AsList, r.exec.named(query, q)))
	return op(ctx)
}

func (r *cityRepository) ReadAll(ctx context.Context) ([]domain.City, error) {
	const query = `
	SELECT city_id, city_name, city_code, country_code
	FROM city
	JOIN country ON country.country_id = city.country_id
	ORDER BY city_id;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.City](shape.AsList, r.exec.query(query)))
	return op(ctx)
}

// Update keeps the stored value of every column whose command field is nil.
func (r *cityRepository) Update(ctx context.Context, cmd domain.UpdateCityCommand) (*domain.City, error) {
	const query = `
	UPDATE city
	SET city_name  = COALESCE(:city_name, city_name),
	    city_code  = COALESCE(:city_code, city_code),
	    country_id = COALESCE((SELECT country_id FROM country WHERE country_code = :country_code), country_id)
	WHERE city_id = :city_id
	RETURNING
		city_id,
		city_name,
		city_code,
		(SELECT country_code FROM country WHERE city.country_id = country.country_id) AS country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.City](shape.AsOne, r.exec.named(query, cmd)))
	return single(op(ctx))
}

func (r *cityRepository) Delete(ctx context.Context, cmd domain.DeleteCityCommand) (*domain.City, error) {
	const query = `
	DELETE FROM city WHERE city_id = :city_id
	RETURNING
		city_id,
		city_name,
		city_code,
		(SELECT country_code FROM country WHERE city.country_id = country.country_id) AS country_code;
	`
	op := withClassifiedErrors(r.classifier, withShaping[domain.City](shape.AsOne, r.exec.named(query, cmd)))
	return single(op(ctx))
}
