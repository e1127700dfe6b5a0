package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBookingUsecase struct {
	result *responses.Booking
	err    error

	lastChangeRequest *requests.ChangeSessionInformationRequest
	lastUpsertInput   *contracts.UpsertPrescriptionInput
}

func (s *stubBookingUsecase) CreateBooking(ctx context.Context, userID string, request *requests.CreateBookingRequest) (*responses.Booking, error) {
	return s.result, s.err
}

func (s *stubBookingUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Booking, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	return []responses.Booking{*s.result}, 1, nil
}

func (s *stubBookingUsecase) FindByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	return s.result, s.err
}

func (s *stubBookingUsecase) ChangeSessionInformation(ctx context.Context, request *requests.ChangeSessionInformationRequest) (*responses.Booking, error) {
	s.lastChangeRequest = request
	return s.result, s.err
}

func (s *stubBookingUsecase) AddNextSession(ctx context.Context, request *requests.AddNextSessionRequest) (*responses.Booking, error) {
	return s.result, s.err
}

func (s *stubBookingUsecase) UpsertSessionPrescription(ctx context.Context, input *contracts.UpsertPrescriptionInput) (*responses.Booking, error) {
	s.lastUpsertInput = input
	return s.result, s.err
}

func (s *stubBookingUsecase) CancelBooking(ctx context.Context, bookingID, reason string) (*responses.Booking, error) {
	return s.result, s.err
}

func newBookingControllerFixture(usecase contracts.BookingUsecase) *BookingController {
	return NewBookingController(zap.NewNop(), usecase, &config.InternalConfig{App: config.App{
		PrescriptionMaxUploadSizeInMB: 5,
	}})
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope
}

func TestChangeSessionInformationEndpoint(t *testing.T) {
	t.Run("valid request returns the success envelope", func(t *testing.T) {
		stub := &stubBookingUsecase{result: &responses.Booking{ID: "abc", SessionStatus: models.BookingPartiallyCompleted}}
		controller := newBookingControllerFixture(stub)

		payload := `{"_id":"abc","sessionNumber":1,"status":"Completed"}`
		req := httptest.NewRequest("POST", "/admin-changes-sessions", bytes.NewBufferString(payload))
		rr := httptest.NewRecorder()

		controller.ChangeSessionInformation(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr.Body)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "session information updated successfully", envelope["message"])
		assert.NotNil(t, envelope["data"])
		assert.Equal(t, 1, stub.lastChangeRequest.SessionNumber)
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		controller := newBookingControllerFixture(&stubBookingUsecase{})

		req := httptest.NewRequest("POST", "/admin-changes-sessions", bytes.NewBufferString("{not-json"))
		rr := httptest.NewRecorder()

		controller.ChangeSessionInformation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr.Body)
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("missing required fields is a 400", func(t *testing.T) {
		stub := &stubBookingUsecase{}
		controller := newBookingControllerFixture(stub)

		req := httptest.NewRequest("POST", "/admin-changes-sessions", bytes.NewBufferString(`{"status":"Completed"}`))
		rr := httptest.NewRecorder()

		controller.ChangeSessionInformation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, stub.lastChangeRequest, "the usecase must not be reached")
	})

	t.Run("an unknown status value is rejected by validation", func(t *testing.T) {
		controller := newBookingControllerFixture(&stubBookingUsecase{})

		payload := `{"_id":"abc","sessionNumber":1,"status":"Done"}`
		req := httptest.NewRequest("POST", "/admin-changes-sessions", bytes.NewBufferString(payload))
		rr := httptest.NewRecorder()

		controller.ChangeSessionInformation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("usecase errors map to their status code", func(t *testing.T) {
		stub := &stubBookingUsecase{err: exceptions.ErrBookingNotFound(nil)}
		controller := newBookingControllerFixture(stub)

		payload := `{"_id":"missing","sessionNumber":1,"status":"Completed"}`
		req := httptest.NewRequest("POST", "/admin-changes-sessions", bytes.NewBufferString(payload))
		rr := httptest.NewRecorder()

		controller.ChangeSessionInformation(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr.Body)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Booking not found", envelope["message"])
	})
}

func TestAddNextSessionEndpoint(t *testing.T) {
	t.Run("valid request succeeds", func(t *testing.T) {
		stub := &stubBookingUsecase{result: &responses.Booking{ID: "abc"}}
		controller := newBookingControllerFixture(stub)

		payload := `{"bookingId":"abc","new_date":"2026-09-17","new_time":"10:00"}`
		req := httptest.NewRequest("POST", "/admin-add-next-sessions", bytes.NewBufferString(payload))
		rr := httptest.NewRecorder()

		controller.AddNextSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("a malformed date fails validation", func(t *testing.T) {
		controller := newBookingControllerFixture(&stubBookingUsecase{})

		payload := `{"bookingId":"abc","new_date":"17-09-2026","new_time":"10:00"}`
		req := httptest.NewRequest("POST", "/admin-add-next-sessions", bytes.NewBufferString(payload))
		rr := httptest.NewRecorder()

		controller.AddNextSession(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("a malformed time fails validation", func(t *testing.T) {
		controller := newBookingControllerFixture(&stubBookingUsecase{})

		payload := `{"bookingId":"abc","new_date":"2026-09-17","new_time":"10.00 AM"}`
		req := httptest.NewRequest("POST", "/admin-add-next-sessions", bytes.NewBufferString(payload))
		rr := httptest.NewRecorder()

		controller.AddNextSession(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpsertSessionPrescriptionEndpoint(t *testing.T) {
	buildForm := func(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
		t.Helper()
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for key, value := range fields {
			assert.NoError(t, writer.WriteField(key, value))
		}
		if withFile {
			part, err := writer.CreateFormFile("image", "rx.pdf")
			assert.NoError(t, err)
			_, err = part.Write([]byte("pdf-bytes"))
			assert.NoError(t, err)
		}
		assert.NoError(t, writer.Close())
		return body, writer.FormDataContentType()
	}

	t.Run("valid multipart request reaches the usecase with the file", func(t *testing.T) {
		stub := &stubBookingUsecase{result: &responses.Booking{ID: "abc"}}
		controller := newBookingControllerFixture(stub)

		body, contentType := buildForm(t, map[string]string{
			"_id":              "abc",
			"sessionNumber":    "1",
			"prescriptionType": "Post-Treatment",
		}, true)
		req := httptest.NewRequest("POST", "/admin-add-updated-prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		controller.UpsertSessionPrescription(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotNil(t, stub.lastUpsertInput)
		assert.Equal(t, "rx.pdf", stub.lastUpsertInput.FileHeader.Filename)
		assert.Equal(t, 1, stub.lastUpsertInput.Request.SessionNumber)
	})

	t.Run("a missing file is a 400", func(t *testing.T) {
		stub := &stubBookingUsecase{}
		controller := newBookingControllerFixture(stub)

		body, contentType := buildForm(t, map[string]string{
			"_id":              "abc",
			"sessionNumber":    "1",
			"prescriptionType": "Post-Treatment",
		}, false)
		req := httptest.NewRequest("POST", "/admin-add-updated-prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		controller.UpsertSessionPrescription(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, stub.lastUpsertInput)
	})

	t.Run("an unknown prescription type fails validation", func(t *testing.T) {
		controller := newBookingControllerFixture(&stubBookingUsecase{})

		body, contentType := buildForm(t, map[string]string{
			"_id":              "abc",
			"sessionNumber":    "1",
			"prescriptionType": "Vitamins",
		}, true)
		req := httptest.NewRequest("POST", "/admin-add-updated-prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		controller.UpsertSessionPrescription(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
