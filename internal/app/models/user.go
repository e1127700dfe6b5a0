package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string `json:"role" bson:"role"`
	TimeModel `bson:",inline"`
}
