package services

import (
	"context"
	"fmt"

	"eventlane/internal/domain"
)

type compilationService struct {
	compilationRepo domain.CompilationRepository
	eventRepo       domain.EventRepository
	tm              domain.TxManager
}

// NewCompilationService creates a CompilationService with the given repositories.
func NewCompilationService(
	compilationRepo domain.CompilationRepository,
	eventRepo domain.EventRepository,
	tm domain.TxManager,
) domain.CompilationService {
	return &compilationService{
		compilationRepo: compilationRepo,
		eventRepo:       eventRepo,
		tm:              tm,
	}
}

func (s *compilationService) Create(ctx context.Context, title string, pinned bool, eventIDs []int64) (*domain.Compilation, error) {
	comp := &domain.Compilation{Title: title, Pinned: pinned}
	err := s.tm.Do(ctx, func(ctx context.Context) error {
		if err := s.compilationRepo.Create(ctx, comp, eventIDs); err != nil {
			return fmt.Errorf("create compilation: %w", err)
		}
		events, err := s.eventRepo.ListByIDs(ctx, eventIDs)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		comp.Events = events
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *compilationService) Update(ctx context.Context, id int64, patch domain.CompilationPatch) (*domain.Compilation, error) {
	var comp *domain.Compilation
	err := s.tm.Do(ctx, func(ctx context.Context) error {
		var err error
		comp, err = s.get(ctx, id)
		if err != nil {
			return err
		}
		if patch.Title != nil {
			comp.Title = *patch.Title
		}
		if patch.Pinned != nil {
			comp.Pinned = *patch.Pinned
		}
		if err := s.compilationRepo.Update(ctx, comp); err != nil {
			return fmt.Errorf("update compilation: %w", err)
		}
		if patch.Events != nil {
			if err := s.compilationRepo.SetEvents(ctx, id, patch.Events); err != nil {
				return fmt.Errorf("set compilation events: %w", err)
			}
			if comp.Events, err = s.eventRepo.ListByIDs(ctx, patch.Events); err != nil {
				return fmt.Errorf("list events: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *compilationService) Delete(ctx context.Context, id int64) error {
	err := s.compilationRepo.Delete(ctx, id)
	if err == domain.ErrNotFound {
		return domain.NotFoundf("Compilation with id=%d not found", id)
	}
	if err != nil {
		return fmt.Errorf("delete compilation: %w", err)
	}
	return nil
}

func (s *compilationService) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	compilations, err := s.compilationRepo.List(ctx, pinned, page)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	return compilations, nil
}

func (s *compilationService) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	return s.get(ctx, id)
}

func (s *compilationService) get(ctx context.Context, id int64) (*domain.Compilation, error) {
	comp, err := s.compilationRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Compilation with id=%d not found", id)
		}
		return nil, fmt.Errorf("get compilation: %w", err)
	}
	return comp, nil
}
