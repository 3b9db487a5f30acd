package services

import (
	"context"
	"fmt"
	"time"

	"eventlane/internal/domain"
)

type requestService struct {
	requestRepo domain.RequestRepository
	eventRepo   domain.EventRepository
	userRepo    domain.UserRepository
	tm          domain.TxManager
}

// NewRequestService creates a RequestService with the given repositories.
func NewRequestService(
	requestRepo domain.RequestRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	tm domain.TxManager,
) domain.RequestService {
	return &requestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		tm:          tm,
	}
}

func (s *requestService) List(ctx context.Context, userID int64) ([]*domain.ParticipationRequest, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

func (s *requestService) Create(ctx context.Context, userID, eventID int64) (*domain.ParticipationRequest, error) {
	var req *domain.ParticipationRequest
	err := s.tm.Do(ctx, func(ctx context.Context) error {
		if err := s.checkUser(ctx, userID); err != nil {
			return err
		}
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if err == domain.ErrNotFound {
				return domain.NotFoundf("Event with id=%d not found", eventID)
			}
			return fmt.Errorf("get event: %w", err)
		}

		if event.Initiator.ID == userID {
			return &domain.ParticipationError{Message: fmt.Sprintf(
				"User with id=%d is the owner of the event with id=%d.", userID, eventID)}
		}
		if event.State != domain.StatePublished {
			return &domain.ParticipationError{Message: fmt.Sprintf(
				"Event not published. A user with id=%d cannot make a request to participate in an event with id=%d.",
				userID, eventID)}
		}
		if event.ParticipantLimit > 0 && event.ConfirmedRequests == event.ParticipantLimit {
			return &domain.ParticipationError{Message: fmt.Sprintf(
				"The event with id=%d has reached the limit(%d) of requests for participation.",
				eventID, event.ParticipantLimit)}
		}

		status := domain.RequestPending
		if !event.RequestModeration || event.ParticipantLimit == 0 {
			status = domain.RequestConfirmed
		}

		req = &domain.ParticipationRequest{
			Created:     time.Now(),
			EventID:     eventID,
			RequesterID: userID,
			Status:      status,
		}
		if err := s.requestRepo.Create(ctx, req); err != nil {
			if err == domain.ErrDuplicateRequest {
				return &domain.IntegrityError{Message: fmt.Sprintf(
					"Request from user with id=%d to participate in event with id=%d already exists.",
					userID, eventID)}
			}
			return fmt.Errorf("create request: %w", err)
		}

		if status == domain.RequestConfirmed {
			event.ConfirmedRequests++
			if err := s.eventRepo.Update(ctx, event); err != nil {
				return fmt.Errorf("update event: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Cancel marks the request CANCELED. A previously confirmed seat is not
// released: the event's confirmed count stays as is.
func (s *requestService) Cancel(ctx context.Context, userID, requestID int64) (*domain.ParticipationRequest, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Request with id=%d not found", requestID)
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.RequesterID != userID {
		return nil, domain.NotFoundf("Request with id=%d not found", requestID)
	}

	req.Status = domain.RequestCanceled
	if err := s.requestRepo.UpdateStatus(ctx, req.ID, domain.RequestCanceled); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}
	return req, nil
}

func (s *requestService) checkUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return domain.NotFoundf("User with id=%d not found", userID)
		}
		return fmt.Errorf("get user: %w", err)
	}
	return nil
}
