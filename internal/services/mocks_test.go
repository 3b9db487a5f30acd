package services

import (
	"context"
	"time"

	"eventlane/internal/domain"
)

type mockEventRepository struct {
	events          map[int64]*domain.Event
	searchResult    []*domain.Event
	updated         []*domain.Event
	viewsWritten    map[int64]int64
	countByCategory int64
	err             error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = int64(len(m.events) + 1)
	if m.events == nil {
		m.events = map[int64]*domain.Event{}
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	event, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (m *mockEventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return m.GetByID(ctx, id)
}

func (m *mockEventRepository) GetByIDAndInitiator(ctx context.Context, eventID, initiatorID int64) (*domain.Event, error) {
	event, err := m.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Initiator.ID != initiatorID {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (m *mockEventRepository) ListByInitiator(ctx context.Context, initiatorID int64, page domain.Page) ([]*domain.Event, error) {
	events := []*domain.Event{}
	for _, event := range m.events {
		if event.Initiator.ID == initiatorID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (m *mockEventRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	events := []*domain.Event{}
	for _, id := range ids {
		if event, ok := m.events[id]; ok {
			events = append(events, event)
		}
	}
	return events, nil
}

func (m *mockEventRepository) Search(ctx context.Context, filter domain.EventFilter, page domain.Page) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.searchResult, nil
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, event)
	return nil
}

func (m *mockEventRepository) UpdateViews(ctx context.Context, id, views int64) error {
	if m.viewsWritten == nil {
		m.viewsWritten = map[int64]int64{}
	}
	m.viewsWritten[id] = views
	return nil
}

func (m *mockEventRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return m.countByCategory, nil
}

type mockUserRepository struct {
	users map[int64]*domain.User
	err   error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = int64(len(m.users) + 1)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) List(ctx context.Context, ids []int64, page domain.Page) ([]*domain.User, error) {
	users := []*domain.User{}
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mockCategoryRepository struct {
	categories map[int64]*domain.Category
	deleted    []int64
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	category.ID = int64(len(m.categories) + 1)
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context, page domain.Page) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

type mockRequestRepository struct {
	requests  []*domain.ParticipationRequest
	createErr error
	nextID    int64
}

func (m *mockRequestRepository) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	req.ID = m.nextID
	m.requests = append(m.requests, req)
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	for _, req := range m.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	reqs := []*domain.ParticipationRequest{}
	for _, req := range m.requests {
		if req.RequesterID == requesterID {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (m *mockRequestRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	reqs := []*domain.ParticipationRequest{}
	for _, req := range m.requests {
		if req.EventID == eventID {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (m *mockRequestRepository) ListByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) ([]*domain.ParticipationRequest, error) {
	reqs := []*domain.ParticipationRequest{}
	for _, req := range m.requests {
		if req.EventID == eventID && req.Status == status {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (m *mockRequestRepository) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int64, error) {
	var count int64
	for _, req := range m.requests {
		if req.EventID == eventID && req.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	for _, req := range m.requests {
		if req.ID == id {
			req.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type mockCommentRepository struct {
	comments []*domain.Comment
	deleted  []int64
	nextID   int64
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	m.nextID++
	comment.ID = m.nextID
	m.comments = append(m.comments, comment)
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	for _, comment := range m.comments {
		if comment.ID == id {
			return comment, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCommentRepository) ListByEvent(ctx context.Context, eventID int64, page domain.Page) ([]*domain.Comment, error) {
	comments := []*domain.Comment{}
	for _, comment := range m.comments {
		if comment.EventID == eventID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *mockCommentRepository) ListByAuthor(ctx context.Context, authorID int64, page domain.Page) ([]*domain.Comment, error) {
	comments := []*domain.Comment{}
	for _, comment := range m.comments {
		if comment.AuthorID == authorID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCompilationRepository struct {
	compilations map[int64]*domain.Compilation
	setEvents    map[int64][]int64
	deleted      []int64
	nextID       int64
	err          error
}

func (m *mockCompilationRepository) Create(ctx context.Context, compilation *domain.Compilation, eventIDs []int64) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	compilation.ID = m.nextID
	if m.compilations == nil {
		m.compilations = map[int64]*domain.Compilation{}
	}
	m.compilations[compilation.ID] = compilation
	if m.setEvents == nil {
		m.setEvents = map[int64][]int64{}
	}
	m.setEvents[compilation.ID] = eventIDs
	return nil
}

func (m *mockCompilationRepository) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	compilation, ok := m.compilations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return compilation, nil
}

func (m *mockCompilationRepository) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	compilations := []*domain.Compilation{}
	for _, compilation := range m.compilations {
		if pinned == nil || compilation.Pinned == *pinned {
			compilations = append(compilations, compilation)
		}
	}
	return compilations, nil
}

func (m *mockCompilationRepository) Update(ctx context.Context, compilation *domain.Compilation) error {
	if _, ok := m.compilations[compilation.ID]; !ok {
		return domain.ErrNotFound
	}
	m.compilations[compilation.ID] = compilation
	return nil
}

func (m *mockCompilationRepository) SetEvents(ctx context.Context, id int64, eventIDs []int64) error {
	if m.setEvents == nil {
		m.setEvents = map[int64][]int64{}
	}
	m.setEvents[id] = eventIDs
	return nil
}

func (m *mockCompilationRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.compilations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.compilations, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockViewCounter struct {
	hits  []string
	views map[string]int64
}

func (m *mockViewCounter) Hit(ctx context.Context, uri, ip string) {
	m.hits = append(m.hits, uri)
}

func (m *mockViewCounter) UniqueViews(ctx context.Context, event *domain.Event, uri string) int64 {
	return m.views[uri]
}

type mockMailer struct {
	sent []string
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockStatsClient struct {
	hits  []domain.EndpointHit
	stats []domain.ViewStats
	err   error
}

func (m *mockStatsClient) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	if m.err != nil {
		return m.err
	}
	m.hits = append(m.hits, hit)
	return nil
}

func (m *mockStatsClient) GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

type mockHitRepository struct {
	hits   []*domain.EndpointHit
	result []domain.ViewStats
}

func (m *mockHitRepository) Create(ctx context.Context, hit *domain.EndpointHit) error {
	m.hits = append(m.hits, hit)
	return nil
}

func (m *mockHitRepository) Aggregate(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	return m.result, nil
}
