package controllers

import (
	"eventlane/internal/domain"
)

// UserShortDto is the embedded initiator view.
type UserShortDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EventFullDto is the complete event view returned by the admin and private
// surfaces and by the public single-event read.
type EventFullDto struct {
	ID                int64           `json:"id"`
	Annotation        string          `json:"annotation"`
	Category          domain.Category `json:"category"`
	ConfirmedRequests int64           `json:"confirmedRequests"`
	CreatedOn         string          `json:"createdOn"`
	Description       string          `json:"description"`
	EventDate         string          `json:"eventDate"`
	Initiator         UserShortDto    `json:"initiator"`
	Location          domain.Location `json:"location"`
	Paid              bool            `json:"paid"`
	ParticipantLimit  int64           `json:"participantLimit"`
	PublishedOn       *string         `json:"publishedOn"`
	RequestModeration bool            `json:"requestModeration"`
	State             string          `json:"state"`
	Title             string          `json:"title"`
	Views             int64           `json:"views"`
}

// EventShortDto is the condensed event view used in listings and compilations.
type EventShortDto struct {
	ID                int64           `json:"id"`
	Annotation        string          `json:"annotation"`
	Category          domain.Category `json:"category"`
	ConfirmedRequests int64           `json:"confirmedRequests"`
	EventDate         string          `json:"eventDate"`
	Initiator         UserShortDto    `json:"initiator"`
	Paid              bool            `json:"paid"`
	Title             string          `json:"title"`
	Views             int64           `json:"views"`
}

// ParticipationRequestDto is the wire view of a participation request.
type ParticipationRequestDto struct {
	Created   string `json:"created"`
	Event     int64  `json:"event"`
	ID        int64  `json:"id"`
	Requester int64  `json:"requester"`
	Status    string `json:"status"`
}

// CompilationDto is the wire view of a compilation. Events is never null.
type CompilationDto struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Events []EventShortDto `json:"events"`
	Pinned bool            `json:"pinned"`
}

// CommentDto is the wire view of a comment.
type CommentDto struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

func toEventFullDto(e *domain.Event) EventFullDto {
	dto := EventFullDto{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          e.Category,
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedOn:         domain.FormatDateTime(e.CreatedOn),
		Description:       e.Description,
		EventDate:         domain.FormatDateTime(e.EventDate),
		Initiator:         UserShortDto{ID: e.Initiator.ID, Name: e.Initiator.Name},
		Location:          e.Location,
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		State:             string(e.State),
		Title:             e.Title,
		Views:             e.Views,
	}
	if e.PublishedOn != nil {
		published := domain.FormatDateTime(*e.PublishedOn)
		dto.PublishedOn = &published
	}
	return dto
}

func toEventShortDto(e *domain.Event) EventShortDto {
	return EventShortDto{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          e.Category,
		ConfirmedRequests: e.ConfirmedRequests,
		EventDate:         domain.FormatDateTime(e.EventDate),
		Initiator:         UserShortDto{ID: e.Initiator.ID, Name: e.Initiator.Name},
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             e.Views,
	}
}

func toEventFullDtos(events []*domain.Event) []EventFullDto {
	dtos := make([]EventFullDto, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toEventFullDto(e))
	}
	return dtos
}

func toEventShortDtos(events []*domain.Event) []EventShortDto {
	dtos := make([]EventShortDto, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toEventShortDto(e))
	}
	return dtos
}

func toRequestDto(req *domain.ParticipationRequest) ParticipationRequestDto {
	return ParticipationRequestDto{
		Created:   domain.FormatDateTime(req.Created),
		Event:     req.EventID,
		ID:        req.ID,
		Requester: req.RequesterID,
		Status:    string(req.Status),
	}
}

func toRequestDtos(reqs []*domain.ParticipationRequest) []ParticipationRequestDto {
	dtos := make([]ParticipationRequestDto, 0, len(reqs))
	for _, req := range reqs {
		dtos = append(dtos, toRequestDto(req))
	}
	return dtos
}

func toCompilationDto(c *domain.Compilation) CompilationDto {
	return CompilationDto{
		ID:     c.ID,
		Title:  c.Title,
		Events: toEventShortDtos(c.Events),
		Pinned: c.Pinned,
	}
}

func toCompilationDtos(comps []*domain.Compilation) []CompilationDto {
	dtos := make([]CompilationDto, 0, len(comps))
	for _, c := range comps {
		dtos = append(dtos, toCompilationDto(c))
	}
	return dtos
}

func toCommentDto(c *domain.Comment) CommentDto {
	return CommentDto{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    domain.FormatDateTime(c.Created),
	}
}

func toCommentDtos(comments []*domain.Comment) []CommentDto {
	dtos := make([]CommentDto, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDto(c))
	}
	return dtos
}
