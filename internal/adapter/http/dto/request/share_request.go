package request

type CreateShareRequest struct {
	DaysValid *int `json:"days_valid"`
}
