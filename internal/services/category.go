package services

import (
	"context"
	"fmt"

	"eventlane/internal/domain"
)

type categoryService struct {
	categoryRepo domain.CategoryRepository
	eventRepo    domain.EventRepository
}

// NewCategoryService creates a CategoryService with the given repositories.
func NewCategoryService(categoryRepo domain.CategoryRepository, eventRepo domain.EventRepository) domain.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		eventRepo:    eventRepo,
	}
}

func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	count, err := s.eventRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if count > 0 {
		return &domain.ConflictError{Message: fmt.Sprintf("The category with id=%d is not empty", id)}
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *categoryService) List(ctx context.Context, page domain.Page) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.get(ctx, id)
}

func (s *categoryService) get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NotFoundf("Category with id=%d was not found.", id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}
