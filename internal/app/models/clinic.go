package models

type Clinic struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Address   string `json:"address" bson:"address"`
	Phone     string `json:"phone" bson:"phone"`
	TimeModel `bson:",inline"`
}
