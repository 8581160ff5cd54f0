package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidMeetingType возвращается при некорректном типе встречи
	ErrInvalidMeetingType = errors.New("invalid meeting type")
)

// Request модели

// CreateMeetingRequest запрос на создание встречи
type CreateMeetingRequest struct {
	UserID              int64     `json:"userId"`
	CalendarID          int64     `json:"calendarId"`
	Title               string    `json:"title"`
	Description         *string   `json:"description,omitempty"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	MeetingType         string    `json:"meetingType"`
	Location            *string   `json:"location,omitempty"`
	VideoURL            *string   `json:"videoUrl,omitempty"`
	Participants        []string  `json:"participants,omitempty"`
	BufferBeforeMinutes int       `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes  int       `json:"bufferAfterMinutes,omitempty"`
	TravelBufferMinutes int       `json:"travelBufferMinutes,omitempty"`
}

// ListMeetingsRequest запрос на получение встреч пользователя за период
type ListMeetingsRequest struct {
	UserID int64      `json:"userId"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

// CancelMeetingRequest запрос на отмену встречи
type CancelMeetingRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// MeetingResponse ответ с данными встречи
type MeetingResponse struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"userId"`
	CalendarID          int64     `json:"calendarId"`
	Title               string    `json:"title"`
	Description         *string   `json:"description,omitempty"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	MeetingType         string    `json:"meetingType"`
	Location            *string   `json:"location,omitempty"`
	VideoURL            *string   `json:"videoUrl,omitempty"`
	Participants        []string  `json:"participants"`
	BufferBeforeMinutes int       `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int       `json:"bufferAfterMinutes"`
	TravelBufferMinutes int       `json:"travelBufferMinutes"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// MeetingListResponse ответ со списком встреч
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

// FromDomainMeeting конвертирует domain модель в response
func FromDomainMeeting(m *domain.Meeting) *MeetingResponse {
	participants := m.Participants
	if participants == nil {
		participants = []string{}
	}

	return &MeetingResponse{
		ID:                  m.ID,
		UserID:              m.UserID,
		CalendarID:          m.CalendarID,
		Title:               m.Title,
		Description:         m.Description,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		MeetingType:         string(m.MeetingType),
		Location:            m.Location,
		VideoURL:            m.VideoURL,
		Participants:        participants,
		BufferBeforeMinutes: m.BufferBeforeMinutes,
		BufferAfterMinutes:  m.BufferAfterMinutes,
		TravelBufferMinutes: m.TravelBufferMinutes,
		Status:              string(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomainMeetingList конвертирует список domain моделей в response
func FromDomainMeetingList(meetings []*domain.Meeting) *MeetingListResponse {
	result := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		result = append(result, *FromDomainMeeting(m))
	}
	return &MeetingListResponse{Meetings: result}
}

// ToDomainMeetingType конвертирует строку в domain тип встречи
func ToDomainMeetingType(meetingType string) (domain.MeetingType, error) {
	switch domain.MeetingType(meetingType) {
	case domain.MeetingVirtual:
		return domain.MeetingVirtual, nil
	case domain.MeetingInPerson:
		return domain.MeetingInPerson, nil
	default:
		return "", ErrInvalidMeetingType
	}
}
