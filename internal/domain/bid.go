package domain

// Bid is never stored. It only travels as a queue payload.
type Bid struct {
	Name string `json:"bid_name" validate:"required"`
}

type CreateBidCommand struct {
	Name string `json:"bid_name" validate:"required"`
} // @name CreateBidCommand

func (c *CreateBidCommand) Normalize() {
	trim(&c.Name)
}

func (c CreateBidCommand) Validate() error {
	return validate(c)
}
