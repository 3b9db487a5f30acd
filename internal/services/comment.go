package services

import (
	"context"
	"fmt"
	"time"

	"eventlane/internal/domain"
)

type commentService struct {
	commentRepo domain.CommentRepository
	eventRepo   domain.EventRepository
	userRepo    domain.UserRepository
}

// NewCommentService creates a CommentService with the given repositories.
func NewCommentService(
	commentRepo domain.CommentRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
) domain.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) Add(ctx context.Context, userID, eventID int64, text string) (*domain.Comment, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, &domain.BadRequestError{Message: "The text field is missing or empty."}
	}
	if event.State != domain.StatePublished {
		return nil, &domain.BadRequestError{Message: "Comments can only be added to published events."}
	}

	comment := &domain.Comment{
		Text:       text,
		EventID:    eventID,
		AuthorID:   userID,
		AuthorName: user.Name,
		Created:    time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) DeleteByAuthor(ctx context.Context, userID, eventID, commentID int64) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return err
	}
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return &domain.EditingError{Message: "Only the author can delete their comment."}
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) DeleteByAdmin(ctx context.Context, commentID int64) error {
	if _, err := s.getComment(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) ListByEvent(ctx context.Context, eventID int64, page domain.Page) ([]*domain.Comment, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByEvent(ctx, eventID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) ListByAuthor(ctx context.Context, authorID int64, page domain.Page) ([]*domain.Comment, error) {
	if err := s.checkUser(ctx, authorID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByAuthor(ctx, authorID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) checkUser(ctx context.Context, userID int64) error {
	_, err := s.getUser(ctx, userID)
	return err
}

func (s *commentService) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("User with id: %d not found.", userID)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *commentService) getEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Event with id: %d not found.", eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *commentService) getComment(ctx context.Context, commentID int64) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Comment with id: %d not found.", commentID)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}
