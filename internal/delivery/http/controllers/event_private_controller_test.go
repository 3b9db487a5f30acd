package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateEventController_Create(t *testing.T) {
	annotation := strings.Repeat("a", 30)
	description := strings.Repeat("d", 30)
	validBody := `{"annotation":"` + annotation + `","category":2,"description":"` + description +
		`","eventDate":"2026-10-01 19:00:00","location":{"lat":55.75,"lon":37.62},"paid":true,"participantLimit":50,"title":"Autumn gig"}`

	tests := []struct {
		name       string
		body       string
		wantStatus int
		checkDraft func(t *testing.T, draft domain.NewEvent)
	}{
		{
			name:       "created",
			body:       validBody,
			wantStatus: http.StatusCreated,
			checkDraft: func(t *testing.T, draft domain.NewEvent) {
				assert.Equal(t, int64(2), draft.Category)
				assert.Equal(t, time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC), draft.EventDate)
				assert.True(t, draft.RequestModeration, "moderation defaults on")
				assert.Equal(t, int64(50), draft.ParticipantLimit)
			},
		},
		{
			name:       "annotation too short",
			body:       `{"annotation":"short","category":2,"description":"` + description + `","eventDate":"2026-10-01 19:00:00","location":{"lat":1,"lon":1},"title":"Autumn gig"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			// 110 Cyrillic characters are 220 bytes; bounds count characters.
			name: "multibyte title within bounds",
			body: `{"annotation":"` + annotation + `","category":2,"description":"` + description +
				`","eventDate":"2026-10-01 19:00:00","location":{"lat":1,"lon":1},"title":"` + strings.Repeat("я", 110) + `"}`,
			wantStatus: http.StatusCreated,
			checkDraft: func(t *testing.T, draft domain.NewEvent) {
				assert.Equal(t, strings.Repeat("я", 110), draft.Title)
			},
		},
		{
			// 10 Cyrillic characters are 20 bytes but still too short.
			name: "multibyte annotation too short",
			body: `{"annotation":"` + strings.Repeat("я", 10) + `","category":2,"description":"` + description +
				`","eventDate":"2026-10-01 19:00:00","location":{"lat":1,"lon":1},"title":"Autumn gig"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing category",
			body:       `{"annotation":"` + annotation + `","description":"` + description + `","eventDate":"2026-10-01 19:00:00","location":{"lat":1,"lon":1},"title":"Autumn gig"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing location",
			body:       `{"annotation":"` + annotation + `","category":2,"description":"` + description + `","eventDate":"2026-10-01 19:00:00","title":"Autumn gig"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative limit",
			body:       `{"annotation":"` + annotation + `","category":2,"description":"` + description + `","eventDate":"2026-10-01 19:00:00","location":{"lat":1,"lon":1},"participantLimit":-1,"title":"Autumn gig"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{getEvent: testEvent()}
			ctrl := NewPrivateEventController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/users/5/events", bytes.NewBufferString(tt.body))
			req.SetPathValue("userId", "5")
			rr := httptest.NewRecorder()
			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.checkDraft != nil {
				tt.checkDraft(t, fake.lastDraft)
			}
		})
	}
}

func TestPrivateEventController_Update(t *testing.T) {
	t.Run("published event cannot be changed", func(t *testing.T) {
		fake := &fakeEventService{getErr: &domain.EditingError{Message: "Only pending or canceled events can be changed"}}
		ctrl := NewPrivateEventController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/events/7",
			bytes.NewBufferString(`{"stateAction":"CANCEL_REVIEW"}`))
		req.SetPathValue("userId", "5")
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.Update(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		var apiErr helpers.ApiError
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
		assert.Equal(t, helpers.ReasonEditing, apiErr.Reason)
	})

	t.Run("unknown state action", func(t *testing.T) {
		ctrl := NewPrivateEventController(testLogger(), &fakeEventService{})

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/events/7",
			bytes.NewBufferString(`{"stateAction":"PUBLISH_EVENT"}`))
		req.SetPathValue("userId", "5")
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("patch fields forwarded", func(t *testing.T) {
		fake := &fakeEventService{getEvent: testEvent()}
		ctrl := NewPrivateEventController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/events/7",
			bytes.NewBufferString(`{"title":"New title","eventDate":"2026-11-05 18:30:00"}`))
		req.SetPathValue("userId", "5")
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.Update(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastPatch.Title)
		assert.Equal(t, "New title", *fake.lastPatch.Title)
		require.NotNil(t, fake.lastPatch.EventDate)
		assert.Equal(t, time.Date(2026, 11, 5, 18, 30, 0, 0, time.UTC), *fake.lastPatch.EventDate)
		assert.Nil(t, fake.lastPatch.Annotation)
	})
}

func TestPrivateEventController_UpdateRequests(t *testing.T) {
	t.Run("confirmed and rejected lists returned", func(t *testing.T) {
		created := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		fake := &fakeEventService{updateResult: &domain.RequestStatusUpdateResult{
			Confirmed: []*domain.ParticipationRequest{
				{ID: 1, Created: created, EventID: 7, RequesterID: 5, Status: domain.RequestConfirmed},
			},
			Rejected: []*domain.ParticipationRequest{
				{ID: 2, Created: created, EventID: 7, RequesterID: 6, Status: domain.RequestRejected},
			},
		}}
		ctrl := NewPrivateEventController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/events/7/requests",
			bytes.NewBufferString(`{"requestIds":[1,2],"status":"CONFIRMED"}`))
		req.SetPathValue("userId", "5")
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.UpdateRequests(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result EventRequestStatusUpdateResult
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
		require.Len(t, result.ConfirmedRequests, 1)
		require.Len(t, result.RejectedRequests, 1)
		assert.Equal(t, "CONFIRMED", result.ConfirmedRequests[0].Status)
		assert.Equal(t, "REJECTED", result.RejectedRequests[0].Status)
		assert.Equal(t, domain.RequestConfirmed, fake.lastStatus)
	})

	t.Run("invalid target status", func(t *testing.T) {
		ctrl := NewPrivateEventController(testLogger(), &fakeEventService{})

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/events/7/requests",
			bytes.NewBufferString(`{"status":"CANCELED"}`))
		req.SetPathValue("userId", "5")
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.UpdateRequests(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("limit reached", func(t *testing.T) {
		fake := &fakeEventService{getErr: &domain.ConflictError{Message: "The participant limit has been reached"}}
		ctrl := NewPrivateEventController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/events/7/requests",
			bytes.NewBufferString(`{"status":"CONFIRMED"}`))
		req.SetPathValue("userId", "5")
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.UpdateRequests(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})
}
