package entities

// Client is the buyer of an import.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ClientCreate carries the admin form rules; empty optional fields are not checked.
type ClientCreate struct {
	Name    string `json:"name" validate:"required,trimmed_min=2,trimmed_max=100"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=20,phone"`
	Address string `json:"address,omitempty" validate:"omitempty,max=200"`
	Company string `json:"company,omitempty" validate:"omitempty,max=100"`
	Notes   string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type ClientUpdate struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,trimmed_min=2,trimmed_max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20,phone"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
