package services

import (
	"context"
	"testing"

	"eventlane/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequestService(
	requestRepo *mockRequestRepository,
	eventRepo *mockEventRepository,
	userRepo *mockUserRepository,
) *requestService {
	return &requestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		tm:          &mockTxManager{},
	}
}

func TestRequestService_Create(t *testing.T) {
	tests := []struct {
		name          string
		event         *domain.Event
		userID        int64
		wantStatus    domain.RequestStatus
		wantConfirmed int64
		wantErrAs     any
	}{
		{
			name:       "moderated event yields pending request",
			event:      &domain.Event{ID: 11, State: domain.StatePublished, ParticipantLimit: 10, RequestModeration: true, Initiator: domain.User{ID: 1}},
			userID:     3,
			wantStatus: domain.RequestPending,
		},
		{
			name:          "unmoderated event confirms immediately",
			event:         &domain.Event{ID: 11, State: domain.StatePublished, ParticipantLimit: 10, RequestModeration: false, Initiator: domain.User{ID: 1}},
			userID:        3,
			wantStatus:    domain.RequestConfirmed,
			wantConfirmed: 1,
		},
		{
			name:          "unlimited event confirms even with moderation",
			event:         &domain.Event{ID: 11, State: domain.StatePublished, ParticipantLimit: 0, RequestModeration: true, Initiator: domain.User{ID: 1}},
			userID:        3,
			wantStatus:    domain.RequestConfirmed,
			wantConfirmed: 1,
		},
		{
			name:      "owner cannot join own event",
			event:     &domain.Event{ID: 11, State: domain.StatePublished, ParticipantLimit: 10, RequestModeration: true, Initiator: domain.User{ID: 3}},
			userID:    3,
			wantErrAs: new(*domain.ParticipationError),
		},
		{
			name:      "unpublished event",
			event:     &domain.Event{ID: 11, State: domain.StatePending, ParticipantLimit: 10, RequestModeration: true, Initiator: domain.User{ID: 1}},
			userID:    3,
			wantErrAs: new(*domain.ParticipationError),
		},
		{
			name:      "limit exhausted",
			event:     &domain.Event{ID: 11, State: domain.StatePublished, ParticipantLimit: 2, ConfirmedRequests: 2, RequestModeration: true, Initiator: domain.User{ID: 1}},
			userID:    3,
			wantErrAs: new(*domain.ParticipationError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{events: map[int64]*domain.Event{11: tt.event}}
			svc := newTestRequestService(&mockRequestRepository{}, eventRepo,
				&mockUserRepository{users: map[int64]*domain.User{3: {ID: 3}}})

			req, err := svc.Create(context.Background(), tt.userID, 11)
			if tt.wantErrAs != nil {
				require.ErrorAs(t, err, tt.wantErrAs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, req.Status)
			assert.Equal(t, tt.wantConfirmed, tt.event.ConfirmedRequests)
		})
	}
}

func TestRequestService_Create_Duplicate(t *testing.T) {
	event := &domain.Event{ID: 11, State: domain.StatePublished, ParticipantLimit: 10, RequestModeration: true, Initiator: domain.User{ID: 1}}
	requestRepo := &mockRequestRepository{createErr: domain.ErrDuplicateRequest}
	svc := newTestRequestService(requestRepo,
		&mockEventRepository{events: map[int64]*domain.Event{11: event}},
		&mockUserRepository{users: map[int64]*domain.User{3: {ID: 3}}})

	_, err := svc.Create(context.Background(), 3, 11)
	var integrity *domain.IntegrityError
	require.ErrorAs(t, err, &integrity)
}

func TestRequestService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		requestID int64
		userID    int64
		wantErrAs any
	}{
		{name: "requester cancels own request", requestID: 21, userID: 3},
		{name: "foreign request looks missing", requestID: 21, userID: 4, wantErrAs: new(*domain.NotFoundError)},
		{name: "unknown request", requestID: 99, userID: 3, wantErrAs: new(*domain.NotFoundError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := &mockRequestRepository{
				requests: []*domain.ParticipationRequest{
					{ID: 21, EventID: 11, RequesterID: 3, Status: domain.RequestConfirmed},
				},
				nextID: 21,
			}
			event := &domain.Event{ID: 11, ConfirmedRequests: 1, Initiator: domain.User{ID: 1}}
			eventRepo := &mockEventRepository{events: map[int64]*domain.Event{11: event}}
			svc := newTestRequestService(requestRepo, eventRepo,
				&mockUserRepository{users: map[int64]*domain.User{3: {ID: 3}, 4: {ID: 4}}})

			req, err := svc.Cancel(context.Background(), tt.userID, tt.requestID)
			if tt.wantErrAs != nil {
				require.ErrorAs(t, err, tt.wantErrAs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RequestCanceled, req.Status)
			// Canceling a confirmed request does not free the seat.
			assert.Equal(t, int64(1), event.ConfirmedRequests)
		})
	}
}

func TestRequestService_List(t *testing.T) {
	requestRepo := &mockRequestRepository{
		requests: []*domain.ParticipationRequest{
			{ID: 21, EventID: 11, RequesterID: 3},
			{ID: 22, EventID: 12, RequesterID: 3},
			{ID: 23, EventID: 11, RequesterID: 4},
		},
		nextID: 23,
	}
	svc := newTestRequestService(requestRepo, &mockEventRepository{},
		&mockUserRepository{users: map[int64]*domain.User{3: {ID: 3}}})

	reqs, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	_, err = svc.List(context.Background(), 42)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
