package entities

// ShareToken is a revocable, expiring credential for the public import view.
type ShareToken struct {
	Token     string     `json:"token"`
	ShareURL  string     `json:"share_url"`
	ExpiresAt Timestamp  `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}

type ShareCreate struct {
	DaysValid int `json:"days_valid,omitempty"`
}
