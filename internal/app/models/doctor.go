package models

type Doctor struct {
	ID               string   `json:"id" bson:"_id,omitempty"`
	Name             string   `json:"name" bson:"name"`
	Email            string   `json:"email" bson:"email"`
	Phone            string   `json:"phone" bson:"phone"`
	Specialization   string   `json:"specialization" bson:"specialization"`
	ClinicID         string   `json:"clinicId" bson:"clinicId"`
	Treatments       []string `json:"treatments,omitempty" bson:"treatments,omitempty"`
	AvatarURL        string   `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	AvatarObjectName string   `json:"-" bson:"avatarObjectName,omitempty"`
	Active           bool     `json:"active" bson:"active"`
	TimeModel        `bson:",inline"`
}
