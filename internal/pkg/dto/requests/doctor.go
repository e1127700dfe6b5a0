package requests

type CreateDoctorRequest struct {
	Name           string   `json:"name" validate:"required,min=2"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone,omitempty"`
	Specialization string   `json:"specialization" validate:"required"`
	ClinicID       string   `json:"clinicId" validate:"required"`
	Treatments     []string `json:"treatments,omitempty"`
}

type UpdateDoctorRequest struct {
	Name           string   `json:"name,omitempty" validate:"omitempty,min=2"`
	Email          string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string   `json:"phone,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	ClinicID       string   `json:"clinicId,omitempty"`
	Treatments     []string `json:"treatments,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}
