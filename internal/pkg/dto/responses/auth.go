package responses

import "clinicbook-service/internal/app/models"

type Login struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
