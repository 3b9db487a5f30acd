package domain

import (
	"context"
	"time"
)

// RequestStatus is the state of a participation request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestConfirmed RequestStatus = "CONFIRMED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCanceled  RequestStatus = "CANCELED"
)

// ParticipationRequest is a user's ask to attend an event. A user holds at
// most one request per event (unique event+requester pair in the store).
type ParticipationRequest struct {
	ID          int64
	Created     time.Time
	EventID     int64
	RequesterID int64
	Status      RequestStatus
}

// RequestRepository defines storage operations for participation requests.
type RequestRepository interface {
	// Create persists the request. A second request for the same event and
	// requester fails with ErrDuplicateRequest.
	Create(ctx context.Context, req *ParticipationRequest) error
	GetByID(ctx context.Context, id int64) (*ParticipationRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*ParticipationRequest, error)
	ListByEventAndStatus(ctx context.Context, eventID int64, status RequestStatus) ([]*ParticipationRequest, error)
	CountByEventAndStatus(ctx context.Context, eventID int64, status RequestStatus) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status RequestStatus) error
}

// RequestService defines the participation workflow for requesters.
type RequestService interface {
	List(ctx context.Context, userID int64) ([]*ParticipationRequest, error)
	Create(ctx context.Context, userID, eventID int64) (*ParticipationRequest, error)
	Cancel(ctx context.Context, userID, requestID int64) (*ParticipationRequest, error)
}
