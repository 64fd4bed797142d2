package model

// APClass is an Advanced Placement class in the catalog.
type APClass struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Resources   *string `json:"resources"`
	Offered     bool    `json:"offered"`
}

// CreateAPClassRequest is the data-entry payload for a catalog entry.
type CreateAPClassRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Resources   *string `json:"resources"`
	Offered     *bool   `json:"offered" validate:"required"`
}

// ToClass converts a validated request into an APClass.
func (r CreateAPClassRequest) ToClass() *APClass {
	c := &APClass{
		Name:        r.Name,
		Description: r.Description,
		Resources:   r.Resources,
	}
	if r.Offered != nil {
		c.Offered = *r.Offered
	}
	return c
}
