package domain

import (
	"context"
	"time"
)

// EventState is the moderation state of an event.
type EventState string

const (
	StatePending   EventState = "PENDING"
	StatePublished EventState = "PUBLISHED"
	StateCanceled  EventState = "CANCELED"
)

// EventSort selects the ordering of public search results.
type EventSort string

const (
	SortEventDate EventSort = "EVENT_DATE"
	SortViews     EventSort = "VIEWS"
)

// AdminStateAction is a moderation decision submitted by an administrator.
type AdminStateAction string

const (
	PublishEvent AdminStateAction = "PUBLISH_EVENT"
	RejectEvent  AdminStateAction = "REJECT_EVENT"
)

// UserStateAction is a lifecycle action submitted by the event initiator.
type UserStateAction string

const (
	SendToReview UserStateAction = "SEND_TO_REVIEW"
	CancelReview UserStateAction = "CANCEL_REVIEW"
)

// Location is a geographic point where an event takes place.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Event is a user-created, category-tagged happening with a capacity and
// moderation policy. Category and Initiator are loaded together with the event.
type Event struct {
	ID                int64
	Annotation        string
	Category          Category
	ConfirmedRequests int64
	CreatedOn         time.Time
	Description       string
	EventDate         time.Time
	Initiator         User
	Location          Location
	Paid              bool
	ParticipantLimit  int64
	PublishedOn       *time.Time
	RequestModeration bool
	State             EventState
	Title             string
	Views             int64
}

// Available reports whether the event can still accept confirmed participants.
func (e *Event) Available() bool {
	return e.ParticipantLimit == 0 || e.ConfirmedRequests < e.ParticipantLimit
}

// NewEvent is the payload for creating an event. The event starts PENDING with
// zero views and zero confirmed requests.
type NewEvent struct {
	Annotation        string
	Category          int64
	Description       string
	EventDate         time.Time
	Location          Location
	Paid              bool
	ParticipantLimit  int64
	RequestModeration bool
	Title             string
}

// EventPatch is a partial event update shared by the admin and initiator
// edit paths. Nil fields are left untouched.
type EventPatch struct {
	Annotation        *string
	Category          *int64
	Description       *string
	EventDate         *time.Time
	Location          *Location
	Paid              *bool
	ParticipantLimit  *int64
	RequestModeration *bool
	Title             *string
}

// EventFilter is a conjunctive filter for event searches. Users and States are
// honored only on the admin path; OnlyAvailable only on the public path.
type EventFilter struct {
	Text          string
	Categories    []int64
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Users         []int64
	States        []EventState
	Sort          EventSort
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// GetByIDForUpdate fetches the event holding a row lock for the duration
	// of the surrounding transaction. Must be called inside TxManager.Do.
	GetByIDForUpdate(ctx context.Context, id int64) (*Event, error)
	GetByIDAndInitiator(ctx context.Context, eventID, initiatorID int64) (*Event, error)
	ListByInitiator(ctx context.Context, initiatorID int64, page Page) ([]*Event, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*Event, error)
	Search(ctx context.Context, filter EventFilter, page Page) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	UpdateViews(ctx context.Context, id, views int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// RequestStatusUpdateResult reports the full confirmed and rejected request
// lists of an event after a bulk status update.
type RequestStatusUpdateResult struct {
	Confirmed []*ParticipationRequest
	Rejected  []*ParticipationRequest
}

// EventService defines event operations across the public, admin, and
// per-user surfaces. Caller identity is a plain user id; there is no
// authentication layer.
type EventService interface {
	// Search is the public listing. It records a hit for uri/ip and enriches
	// every returned event with its view count.
	Search(ctx context.Context, filter EventFilter, page Page, uri, ip string) ([]*Event, error)
	// GetPublishedByID returns a published event by id, recording a hit and
	// counting the current read into the returned view count. Unpublished
	// events are reported as not found.
	GetPublishedByID(ctx context.Context, eventID int64, uri, ip string) (*Event, error)

	SearchFull(ctx context.Context, filter EventFilter, page Page) ([]*Event, error)
	UpdateByAdmin(ctx context.Context, eventID int64, patch EventPatch, action *AdminStateAction) (*Event, error)

	Create(ctx context.Context, userID int64, draft NewEvent) (*Event, error)
	ListByInitiator(ctx context.Context, userID int64, page Page) ([]*Event, error)
	GetByIDForInitiator(ctx context.Context, userID, eventID int64) (*Event, error)
	UpdateByInitiator(ctx context.Context, userID, eventID int64, patch EventPatch, action *UserStateAction) (*Event, error)
	ListEventRequests(ctx context.Context, userID, eventID int64) ([]*ParticipationRequest, error)
	// UpdateRequestStatuses confirms or rejects the event's pending requests,
	// never letting confirmed requests exceed the participant limit.
	UpdateRequestStatuses(ctx context.Context, userID, eventID int64, status RequestStatus) (*RequestStatusUpdateResult, error)
}
