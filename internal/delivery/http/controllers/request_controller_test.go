package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestService implements domain.RequestService for handler tests.
type fakeRequestService struct {
	request     *domain.ParticipationRequest
	list        []*domain.ParticipationRequest
	err         error
	lastUserID  int64
	lastEventID int64
}

func (f *fakeRequestService) List(ctx context.Context, userID int64) ([]*domain.ParticipationRequest, error) {
	f.lastUserID = userID
	return f.list, f.err
}

func (f *fakeRequestService) Create(ctx context.Context, userID, eventID int64) (*domain.ParticipationRequest, error) {
	f.lastUserID, f.lastEventID = userID, eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.request, nil
}

func (f *fakeRequestService) Cancel(ctx context.Context, userID, requestID int64) (*domain.ParticipationRequest, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.request, nil
}

func TestRequestController_Create(t *testing.T) {
	created := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		target     string
		request    *domain.ParticipationRequest
		serviceErr error
		wantStatus int
		wantReason string
	}{
		{
			name:       "created",
			target:     "/users/5/requests?eventId=7",
			request:    &domain.ParticipationRequest{ID: 1, Created: created, EventID: 7, RequesterID: 5, Status: domain.RequestPending},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing eventId",
			target:     "/users/5/requests",
			wantStatus: http.StatusBadRequest,
			wantReason: helpers.ReasonBadRequest,
		},
		{
			name:       "owner joins own event",
			target:     "/users/5/requests?eventId=7",
			serviceErr: &domain.ParticipationError{Message: "User with id=5 is the owner of the event with id=7."},
			wantStatus: http.StatusConflict,
			wantReason: helpers.ReasonParticipation,
		},
		{
			name:       "duplicate request",
			target:     "/users/5/requests?eventId=7",
			serviceErr: &domain.IntegrityError{Message: "Request from user with id=5 to participate in event with id=7 already exists."},
			wantStatus: http.StatusConflict,
			wantReason: helpers.ReasonIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequestService{request: tt.request, err: tt.serviceErr}
			ctrl := NewRequestController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPost, "http://test"+tt.target, nil)
			req.SetPathValue("userId", "5")
			rr := httptest.NewRecorder()
			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantReason != "" {
				var apiErr helpers.ApiError
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
				assert.Equal(t, tt.wantReason, apiErr.Reason)
				return
			}
			var dto ParticipationRequestDto
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
			assert.Equal(t, int64(1), dto.ID)
			assert.Equal(t, int64(7), dto.Event)
			assert.Equal(t, int64(5), dto.Requester)
			assert.Equal(t, "PENDING", dto.Status)
			assert.Equal(t, "2026-03-10 08:00:00", dto.Created)
			assert.Equal(t, int64(7), fake.lastEventID)
		})
	}
}

func TestRequestController_Cancel(t *testing.T) {
	t.Run("canceled", func(t *testing.T) {
		fake := &fakeRequestService{request: &domain.ParticipationRequest{ID: 3, EventID: 7, RequesterID: 5, Status: domain.RequestCanceled}}
		ctrl := NewRequestController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/requests/3/cancel", nil)
		req.SetPathValue("userId", "5")
		req.SetPathValue("requestId", "3")
		rr := httptest.NewRecorder()
		ctrl.Cancel(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var dto ParticipationRequestDto
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
		assert.Equal(t, "CANCELED", dto.Status)
	})

	t.Run("foreign request", func(t *testing.T) {
		fake := &fakeRequestService{err: domain.NotFoundf("Request with id=%d not found", 3)}
		ctrl := NewRequestController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/users/5/requests/3/cancel", nil)
		req.SetPathValue("userId", "5")
		req.SetPathValue("requestId", "3")
		rr := httptest.NewRecorder()
		ctrl.Cancel(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
