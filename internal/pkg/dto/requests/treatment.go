package requests

type CreateTreatmentRequest struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Description     string  `json:"description,omitempty"`
	PricePerSession float64 `json:"price_per_session" validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
}

type UpdateTreatmentRequest struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,min=2"`
	Description     string   `json:"description,omitempty"`
	PricePerSession *float64 `json:"price_per_session,omitempty" validate:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	Active          *bool    `json:"active,omitempty"`
}
