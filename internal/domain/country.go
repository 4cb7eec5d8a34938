package domain

type Country struct {
	ID   int    `db:"country_id" json:"country_id" validate:"gt=0"`
	Name string `db:"country_name" json:"country_name" validate:"required"`
	Code string `db:"country_code" json:"country_code" validate:"required,code"`
} // @name Country

// CountryWithCities is assembled by the service layer, never read from the store directly.
type CountryWithCities struct {
	Country
	Cities []City `json:"cities"`
} // @name CountryWithCities

type CreateCountryCommand struct {
	Name string `db:"country_name" json:"country_name" validate:"required"`
	Code string `db:"country_code" json:"country_code" validate:"required,code"`
} // @name CreateCountryCommand

func (c *CreateCountryCommand) Normalize() {
	trim(&c.Name)
	trim(&c.Code)
}

func (c CreateCountryCommand) Validate() error {
	return validate(c)
}

// UpdateCountryCommand replaces name and code of an existing country.
type UpdateCountryCommand struct {
	ID   int    `db:"country_id" json:"country_id" validate:"gt=0"`
	Name string `db:"country_name" json:"country_name" validate:"required"`
	Code string `db:"country_code" json:"country_code" validate:"required,code"`
} // @name UpdateCountryCommand

func (c *UpdateCountryCommand) Normalize() {
	trim(&c.Name)
	trim(&c.Code)
}

func (c UpdateCountryCommand) Validate() error {
	return validate(c)
}

type DeleteCountryCommand struct {
	ID int `db:"country_id" json:"country_id" validate:"gt=0"`
}

func (c DeleteCountryCommand) Validate() error {
	return validate(c)
}

type ReadCountryQuery struct {
	ID int `db:"country_id" json:"country_id" validate:"gt=0"`
}

func (q ReadCountryQuery) Validate() error {
	return validate(q)
}

type ReadCountryByCodeQuery struct {
	Code string `db:"country_code" json:"country_code" validate:"required,min=3"`
}

func (q *ReadCountryByCodeQuery) Normalize() {
	trim(&q.Code)
}

func (q ReadCountryByCodeQuery) Validate() error {
	return validate(q)
}
