package create_meeting

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/meetings/models"
)

// CreateMeetingRequest тело запроса на создание встречи
// UserID берется из заголовка аутентификации
type CreateMeetingRequest struct {
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

// ToServiceRequest конвертирует запрос API в запрос сервисного слоя
func (r *CreateMeetingRequest) ToServiceRequest(userID int64) *models.CreateMeetingRequest {
	return &models.CreateMeetingRequest{
		UserID:              userID,
		CalendarID:          r.CalendarID,
		Title:               r.Title,
		Description:         r.Description,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		MeetingType:         r.MeetingType,
		Location:            r.Location,
		VideoURL:            r.VideoURL,
		Participants:        r.Participants,
		BufferBeforeMinutes: r.BufferBeforeMinutes,
		BufferAfterMinutes:  r.BufferAfterMinutes,
		TravelBufferMinutes: r.TravelBufferMinutes,
	}
}
