package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryService implements domain.CategoryService for handler tests.
type fakeCategoryService struct {
	category *domain.Category
	list     []*domain.Category
	err      error
	lastName string
}

func (f *fakeCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return f.category, nil
}

func (f *fakeCategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return f.category, nil
}

func (f *fakeCategoryService) Delete(ctx context.Context, id int64) error {
	return f.err
}

func (f *fakeCategoryService) List(ctx context.Context, page domain.Page) ([]*domain.Category, error) {
	return f.list, f.err
}

func (f *fakeCategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.category, nil
}

func TestCategoryController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantName   string
	}{
		{
			name:       "created",
			body:       `{"name":"concerts"}`,
			wantStatus: http.StatusCreated,
			wantName:   "concerts",
		},
		{
			name:       "empty name",
			body:       `{"name":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "name too long",
			body:       `{"name":"` + strings.Repeat("x", 51) + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			// 50 Cyrillic characters are 100 bytes; bounds count characters.
			name:       "multibyte name at the limit",
			body:       `{"name":"` + strings.Repeat("к", 50) + `"}`,
			wantStatus: http.StatusCreated,
			wantName:   strings.Repeat("к", 50),
		},
		{
			name:       "unknown field",
			body:       `{"name":"concerts","slug":"concerts"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate name",
			body:       `{"name":"concerts"}`,
			serviceErr: &domain.IntegrityError{Message: "could not execute statement"},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCategoryService{category: &domain.Category{ID: 1, Name: "concerts"}, err: tt.serviceErr}
			ctrl := NewCategoryController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/admin/categories", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				var category domain.Category
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&category))
				assert.Equal(t, "concerts", category.Name)
				assert.Equal(t, tt.wantName, fake.lastName)
			}
		})
	}
}

func TestCategoryController_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ctrl := NewCategoryController(testLogger(), &fakeCategoryService{})

		req := httptest.NewRequest(http.MethodDelete, "http://test/admin/categories/1", nil)
		req.SetPathValue("categoryId", "1")
		rr := httptest.NewRecorder()
		ctrl.Delete(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("category still has events", func(t *testing.T) {
		fake := &fakeCategoryService{err: &domain.ConflictError{Message: "The category with id=1 is not empty"}}
		ctrl := NewCategoryController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodDelete, "http://test/admin/categories/1", nil)
		req.SetPathValue("categoryId", "1")
		rr := httptest.NewRecorder()
		ctrl.Delete(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		var apiErr helpers.ApiError
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
		assert.Equal(t, helpers.ReasonConflict, apiErr.Reason)
		assert.Equal(t, "The category with id=1 is not empty", apiErr.Message)
	})
}
