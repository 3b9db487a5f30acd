package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventlane/internal/domain"
)

// minEventLead is the minimum gap between now and an event's scheduled date.
const minEventLead = 2 * time.Hour

type eventService struct {
	eventRepo    domain.EventRepository
	userRepo     domain.UserRepository
	categoryRepo domain.CategoryRepository
	requestRepo  domain.RequestRepository
	views        domain.ViewCounter
	mailer       domain.Mailer
	tm           domain.TxManager
	logger       *slog.Logger
	writeThrough bool
}

// NewEventService creates an EventService with the given collaborators.
// writeThrough controls whether view counts computed on reads are persisted
// back to the event rows.
func NewEventService(
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	categoryRepo domain.CategoryRepository,
	requestRepo domain.RequestRepository,
	views domain.ViewCounter,
	mailer domain.Mailer,
	tm domain.TxManager,
	logger *slog.Logger,
	writeThrough bool,
) domain.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		requestRepo:  requestRepo,
		views:        views,
		mailer:       mailer,
		tm:           tm,
		logger:       logger,
		writeThrough: writeThrough,
	}
}

func validateRange(filter domain.EventFilter) error {
	if filter.RangeStart != nil && filter.RangeEnd != nil && filter.RangeStart.After(*filter.RangeEnd) {
		return &domain.BadRequestError{Message: "rangeEnd cannot be before rangeStart"}
	}
	return nil
}

func (s *eventService) Search(ctx context.Context, filter domain.EventFilter, page domain.Page, uri, ip string) ([]*domain.Event, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	filter.States = []domain.EventState{domain.StatePublished}
	if filter.RangeStart == nil && filter.RangeEnd == nil {
		now := time.Now()
		filter.RangeStart = &now
	}

	events, err := s.eventRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	s.views.Hit(ctx, uri, ip)

	// Every event on the page is counted against the listing URI.
	for _, event := range events {
		event.Views = s.views.UniqueViews(ctx, event, uri) + 1
		if s.writeThrough {
			if err := s.eventRepo.UpdateViews(ctx, event.ID, event.Views); err != nil {
				return nil, fmt.Errorf("update views: %w", err)
			}
		}
	}
	return events, nil
}

func (s *eventService) GetPublishedByID(ctx context.Context, eventID int64, uri, ip string) (*domain.Event, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.State != domain.StatePublished {
		return nil, domain.NotFoundf("Event with id=%d not found", eventID)
	}

	event.Views = s.views.UniqueViews(ctx, event, uri) + 1
	if s.writeThrough {
		if err := s.eventRepo.UpdateViews(ctx, event.ID, event.Views); err != nil {
			return nil, fmt.Errorf("update views: %w", err)
		}
	}

	s.views.Hit(ctx, uri, ip)
	return event, nil
}

func (s *eventService) SearchFull(ctx context.Context, filter domain.EventFilter, page domain.Page) ([]*domain.Event, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateByAdmin(ctx context.Context, eventID int64, patch domain.EventPatch, action *domain.AdminStateAction) (*domain.Event, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.applyPatch(ctx, event, patch); err != nil {
		return nil, err
	}
	if action != nil {
		if err := applyAdminAction(event, *action); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if action != nil {
		s.notifyInitiator(ctx, event, *action)
	}
	return event, nil
}

func applyAdminAction(event *domain.Event, action domain.AdminStateAction) error {
	switch action {
	case domain.PublishEvent:
		if event.State != domain.StatePending {
			return &domain.StateError{Message: "Event can only be published if it is in a pending state."}
		}
		now := time.Now()
		event.State = domain.StatePublished
		event.PublishedOn = &now
	case domain.RejectEvent:
		if event.State != domain.StatePending {
			return &domain.StateError{Message: "Event can only be rejected if it has not yet been published."}
		}
		event.State = domain.StateCanceled
	}
	return nil
}

// notifyInitiator emails the moderation outcome to the event's initiator.
// Failures are logged and swallowed.
func (s *eventService) notifyInitiator(ctx context.Context, event *domain.Event, action domain.AdminStateAction) {
	var subject, body string
	switch action {
	case domain.PublishEvent:
		subject = fmt.Sprintf("Your event %q has been published", event.Title)
		body = fmt.Sprintf("Hi %s,\n\nYour event %q is now visible to everyone. It is scheduled for %s.\n",
			event.Initiator.Name, event.Title, domain.FormatDateTime(event.EventDate))
	case domain.RejectEvent:
		subject = fmt.Sprintf("Your event %q has been rejected", event.Title)
		body = fmt.Sprintf("Hi %s,\n\nYour event %q did not pass moderation. You can edit it and send it for review again.\n",
			event.Initiator.Name, event.Title)
	default:
		return
	}
	if err := s.mailer.Send(event.Initiator.Email, subject, body); err != nil {
		s.logger.WarnContext(ctx, "failed to send moderation email", "event_id", event.ID, "err", err)
	}
}

func (s *eventService) Create(ctx context.Context, userID int64, draft domain.NewEvent) (*domain.Event, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	category, err := s.getCategory(ctx, draft.Category)
	if err != nil {
		return nil, err
	}

	minDate := time.Now().Add(minEventLead)
	if draft.EventDate.Before(minDate) {
		return nil, domain.BadRequestf("Field: eventDate. Error: Date cant be earlier than %s. Value: %s",
			domain.FormatDateTime(minDate), domain.FormatDateTime(draft.EventDate))
	}

	event := &domain.Event{
		Annotation:        draft.Annotation,
		Category:          *category,
		CreatedOn:         time.Now(),
		Description:       draft.Description,
		EventDate:         draft.EventDate,
		Initiator:         *user,
		Location:          draft.Location,
		Paid:              draft.Paid,
		ParticipantLimit:  draft.ParticipantLimit,
		RequestModeration: draft.RequestModeration,
		State:             domain.StatePending,
		Title:             draft.Title,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListByInitiator(ctx context.Context, userID int64, page domain.Page) ([]*domain.Event, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByInitiator(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetByIDForInitiator(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.getEventForInitiator(ctx, eventID, userID)
}

func (s *eventService) UpdateByInitiator(ctx context.Context, userID, eventID int64, patch domain.EventPatch, action *domain.UserStateAction) (*domain.Event, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}
	event, err := s.getEventForInitiator(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if event.State == domain.StatePublished {
		return nil, &domain.EditingError{Message: "Only pending or canceled events can be changed"}
	}

	if err := s.applyPatch(ctx, event, patch); err != nil {
		return nil, err
	}
	if action != nil {
		switch *action {
		case domain.SendToReview:
			event.State = domain.StatePending
		case domain.CancelReview:
			if event.State == domain.StatePending {
				event.State = domain.StateCanceled
			}
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEventRequests(ctx context.Context, userID, eventID int64) ([]*domain.ParticipationRequest, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.getEventForInitiator(ctx, eventID, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

func (s *eventService) UpdateRequestStatuses(ctx context.Context, userID, eventID int64, status domain.RequestStatus) (*domain.RequestStatusUpdateResult, error) {
	result := &domain.RequestStatusUpdateResult{}
	err := s.tm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.getUser(ctx, userID); err != nil {
			return err
		}
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if err == domain.ErrNotFound {
				return domain.NotFoundf("Event with id=%d not found", eventID)
			}
			return fmt.Errorf("get event: %w", err)
		}

		// No capacity limit or no moderation: nothing is pending, report
		// every request of the event as confirmed.
		if event.ParticipantLimit == 0 || !event.RequestModeration {
			all, err := s.requestRepo.ListByEvent(ctx, eventID)
			if err != nil {
				return fmt.Errorf("list requests: %w", err)
			}
			result.Confirmed = all
			result.Rejected = []*domain.ParticipationRequest{}
			return nil
		}

		pending, err := s.requestRepo.ListByEventAndStatus(ctx, eventID, domain.RequestPending)
		if err != nil {
			return fmt.Errorf("list pending requests: %w", err)
		}
		if len(pending) == 0 {
			return &domain.EditingError{Message: "Request must have status PENDING"}
		}

		confirmed, err := s.requestRepo.CountByEventAndStatus(ctx, eventID, domain.RequestConfirmed)
		if err != nil {
			return fmt.Errorf("count confirmed requests: %w", err)
		}
		if status == domain.RequestConfirmed && confirmed >= event.ParticipantLimit {
			return &domain.ConflictError{Message: "The participant limit has been reached"}
		}

		for _, req := range pending {
			next := status
			if confirmed >= event.ParticipantLimit {
				next = domain.RequestRejected
			}
			if err := s.requestRepo.UpdateStatus(ctx, req.ID, next); err != nil {
				return fmt.Errorf("update request status: %w", err)
			}
			if next == domain.RequestConfirmed {
				confirmed++
			}
		}

		event.ConfirmedRequests = confirmed
		if err := s.eventRepo.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}

		if result.Confirmed, err = s.requestRepo.ListByEventAndStatus(ctx, eventID, domain.RequestConfirmed); err != nil {
			return fmt.Errorf("list confirmed requests: %w", err)
		}
		if result.Rejected, err = s.requestRepo.ListByEventAndStatus(ctx, eventID, domain.RequestRejected); err != nil {
			return fmt.Errorf("list rejected requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *eventService) applyPatch(ctx context.Context, event *domain.Event, patch domain.EventPatch) error {
	if patch.Annotation != nil {
		event.Annotation = *patch.Annotation
	}
	if patch.Category != nil {
		category, err := s.getCategory(ctx, *patch.Category)
		if err != nil {
			return err
		}
		event.Category = *category
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Paid != nil {
		event.Paid = *patch.Paid
	}
	if patch.ParticipantLimit != nil {
		event.ParticipantLimit = *patch.ParticipantLimit
	}
	if patch.RequestModeration != nil {
		event.RequestModeration = *patch.RequestModeration
	}
	if patch.EventDate != nil {
		if patch.EventDate.Before(time.Now().Add(minEventLead)) {
			return &domain.BadRequestError{Message: "The date and time for which the event is scheduled cannot be earlier" +
				" than two hours from the current moment."}
		}
		event.EventDate = *patch.EventDate
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	return nil
}

func (s *eventService) getEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Event with id=%d not found", eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) getEventForInitiator(ctx context.Context, eventID, userID int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByIDAndInitiator(ctx, eventID, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Event with id=%d not found", eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("User with id=%d not found", userID)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *eventService) getCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Category with id=%d not found", categoryID)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}
