package utils

import (
	"fmt"
	"path"
	"strings"

	"clinicbook-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GeneratePrescriptionObjectName builds the storage key for a prescription
// file. The uuid keeps overwritten uploads from colliding on the same key.
func GeneratePrescriptionObjectName(bookingID string, sessionNumber int, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s/session-%d-%s%s",
		constvars.MinioPrescriptionObjectPrefix, bookingID, sessionNumber, uuid.NewString(), ext)
}

func GenerateDoctorAvatarObjectName(doctorID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s-%s%s",
		constvars.MinioDoctorAvatarObjectPrefix, doctorID, uuid.NewString(), ext)
}
