package domain

type City struct {
	ID          int    `db:"city_id" json:"city_id" validate:"gt=0"`
	Name        string `db:"city_name" json:"city_name" validate:"required"`
	Code        string `db:"city_code" json:"city_code" validate:"required,code"`
	CountryCode string `db:"country_code" json:"country_code" validate:"required,min=3"`
} // @name City

type CreateCityCommand struct {
	Name        string `db:"city_name" json:"city_name" validate:"required"`
	Code        string `db:"city_code" json:"city_code" validate:"required,code"`
	CountryCode string `db:"country_code" json:"country_code" validate:"required,min=3"`
} // @name CreateCityCommand

func (c *CreateCityCommand) Normalize() {
	trim(&c.Name)
	trim(&c.Code)
	trim(&c.CountryCode)
}

func (c CreateCityCommand) Validate() error {
	return validate(c)
}

// UpdateCityCommand changes any subset of name, code and country. Nil fields keep
// the stored value.
type UpdateCityCommand struct {
	ID          int     `db:"city_id" json:"city_id" validate:"gt=0"`
	Name        *string `db:"city_name" json:"city_name,omitempty" validate:"omitnil,min=1"`
	Code        *string `db:"city_code" json:"city_code,omitempty" validate:"omitnil,code"`
	CountryCode *string `db:"country_code" json:"country_code,omitempty" validate:"omitnil,min=3"`
} // @name UpdateCityCommand

func (c *UpdateCityCommand) Normalize() {
	trim(c.Name)
	trim(c.Code)
	trim(c.CountryCode)
}

func (c UpdateCityCommand) Validate() error {
	if c.Name == nil && c.Code == nil && c.CountryCode == nil {
		return &ValidationError{Message: "You must provide at least one value."}
	}
	return validate(c)
}

type DeleteCityCommand struct {
	ID int `db:"city_id" json:"city_id" validate:"gt=0"`
}

func (c DeleteCityCommand) Validate() error {
	return validate(c)
}

type ReadCityQuery struct {
	ID int `db:"city_id" json:"city_id" validate:"gt=0"`
}

func (q ReadCityQuery) Validate() error {
	return validate(q)
}

type ReadCityByCountryQuery struct {
	CountryCode string `db:"country_code" json:"country_code" validate:"required,min=3"`
}

func (q *ReadCityByCountryQuery) Normalize() {
	trim(&q.CountryCode)
}

func (q ReadCityByCountryQuery) Validate() error {
	return validate(q)
}
