package models

type Treatment struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	Name            string  `json:"name" bson:"name"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	PricePerSession float64 `json:"pricePerSession" bson:"pricePerSession"`
	DurationMinutes int     `json:"durationMinutes" bson:"durationMinutes"`
	Active          bool    `json:"active" bson:"active"`
	TimeModel       `bson:",inline"`
}
