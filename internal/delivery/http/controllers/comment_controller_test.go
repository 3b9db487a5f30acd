package controllers

import (
	"bytes"
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

// fakeCommentService implements domain.CommentService for handler tests.
type fakeCommentService struct {
	comment  *domain.Comment
	comments []*domain.Comment
	err      error
	lastText string
	lastPage domain.Page
}

func (f *fakeCommentService) Add(ctx context.Context, userID, eventID int64, text string) (*domain.Comment, error) {
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.comment, nil
}

func (f *fakeCommentService) DeleteByAuthor(ctx context.Context, userID, eventID, commentID int64) error {
	return f.err
}

func (f *fakeCommentService) DeleteByAdmin(ctx context.Context, commentID int64) error {
	return f.err
}

func (f *fakeCommentService) ListByEvent(ctx context.Context, eventID int64, page domain.Page) ([]*domain.Comment, error) {
	f.lastPage = page
	return f.comments, f.err
}

func (f *fakeCommentService) ListByAuthor(ctx context.Context, authorID int64, page domain.Page) ([]*domain.Comment, error) {
	f.lastPage = page
	return f.comments, f.err
}

func TestCommentController_Add(t *testing.T) {
	created := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"text":"Looking forward to this one"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty text rejected by service",
			body:       `{"text":""}`,
			serviceErr: &domain.BadRequestError{Message: "The text field is missing or empty."},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unpublished event",
			body:       `{"text":"Looking forward to this one"}`,
			serviceErr: &domain.BadRequestError{Message: "Comments can only be added to published events."},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing event",
			body:       `{"text":"Looking forward to this one"}`,
			serviceErr: &domain.NotFoundError{Message: "Event with id: 7 not found."},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCommentService{
				comment: &domain.Comment{ID: 3, Text: "Looking forward to this one", AuthorName: "Alice", Created: created},
				err:     tt.serviceErr,
			}
			ctrl := NewCommentController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/events/7/comments/5", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventId", "7")
			req.SetPathValue("userId", "5")
			rr := httptest.NewRecorder()
			ctrl.Add(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				var dto CommentDto
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
				assert.Equal(t, int64(3), dto.ID)
				assert.Equal(t, "Alice", dto.AuthorName)
				assert.Equal(t, "2026-03-05 14:30:00", dto.Created)
			}
		})
	}
}

func TestCommentController_ListByEvent(t *testing.T) {
	t.Run("from selects a page", func(t *testing.T) {
		fake := &fakeCommentService{comments: []*domain.Comment{}}
		ctrl := NewCommentController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodGet, "http://test/events/comments/7?from=2&size=5", nil)
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.ListByEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 10, fake.lastPage.From)
		assert.Equal(t, 5, fake.lastPage.Size)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		ctrl := NewCommentController(testLogger(), &fakeCommentService{comments: []*domain.Comment{}})

		req := httptest.NewRequest(http.MethodGet, "http://test/events/comments/7", nil)
		req.SetPathValue("eventId", "7")
		rr := httptest.NewRecorder()
		ctrl.ListByEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", string(bytes.TrimSpace(rr.Body.Bytes())))
	})
}

func TestCommentController_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ctrl := NewCommentController(testLogger(), &fakeCommentService{})

		req := httptest.NewRequest(http.MethodDelete, "http://test/events/comments/7/3/5", nil)
		req.SetPathValue("eventId", "7")
		req.SetPathValue("commentId", "3")
		req.SetPathValue("userId", "5")
		rr := httptest.NewRecorder()
		ctrl.Delete(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not the author", func(t *testing.T) {
		fake := &fakeCommentService{err: &domain.EditingError{Message: "Only the author can delete their comment."}}
		ctrl := NewCommentController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodDelete, "http://test/events/comments/7/3/5", nil)
		req.SetPathValue("eventId", "7")
		req.SetPathValue("commentId", "3")
		req.SetPathValue("userId", "5")
		rr := httptest.NewRecorder()
		ctrl.Delete(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		var apiErr helpers.ApiError
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
		assert.Equal(t, helpers.ReasonEditing, apiErr.Reason)
	})
}

func TestCommentController_ListByAuthor(t *testing.T) {
	fake := &fakeCommentService{comments: []*domain.Comment{
		{ID: 3, Text: "Great lineup", AuthorName: "Alice", Created: time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)},
	}}
	ctrl := NewCommentController(testLogger(), fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/admin/comments/5?from=1&size=3", nil)
	req.SetPathValue("userId", "5")
	rr := httptest.NewRecorder()
	ctrl.ListByAuthor(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 3, fake.lastPage.From)
	var dtos []CommentDto
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "Alice", dtos[0].AuthorName)
}
