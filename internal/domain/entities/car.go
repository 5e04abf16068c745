package entities

// Car is a vehicle offered for import.
type Car struct {
	ID          string  `json:"id"`
	Model       string  `json:"model"`
	Brand       string  `json:"brand"`
	Year        int     `json:"year"`
	SalePrice   float64 `json:"sale_price"`
	Color       string  `json:"color,omitempty"`
	VIN         string  `json:"vin,omitempty"`
	Description string  `json:"description,omitempty"`
}

type CarCreate struct {
	Model       string  `json:"model" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	Year        int     `json:"year" validate:"gte=1900,lte=2100"`
	SalePrice   float64 `json:"sale_price" validate:"gte=0"`
	Color       string  `json:"color,omitempty"`
	VIN         string  `json:"vin,omitempty"`
	Description string  `json:"description,omitempty"`
}

// CarUpdate only carries the fields the admin touched.
type CarUpdate struct {
	Model       *string  `json:"model,omitempty" validate:"omitempty,min=1"`
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,min=1"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	SalePrice   *float64 `json:"sale_price,omitempty" validate:"omitempty,gte=0"`
	Color       *string  `json:"color,omitempty"`
	VIN         *string  `json:"vin,omitempty"`
	Description *string  `json:"description,omitempty"`
}
