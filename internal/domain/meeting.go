package domain

import "time"

// MeetingType represents the kind of meeting
type MeetingType string

const (
	MeetingVirtual  MeetingType = "virtual"
	MeetingInPerson MeetingType = "in_person"
)

// MeetingStatus represents the status of an internally created meeting
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

// Meeting represents an internally created calendar entry that occupies time
type Meeting struct {
	ID                  int64
	UserID              int64
	CalendarID          int64
	Title               string
	Description         *string
	StartTime           time.Time
	EndTime             time.Time
	MeetingType         MeetingType
	Location            *string
	VideoURL            *string
	Participants        []string
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	TravelBufferMinutes int
	Status              MeetingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesTime returns true if the meeting blocks calendar availability
func (m *Meeting) OccupiesTime() bool {
	return m.Status == MeetingScheduled
}

// CanBeCancelled returns true if the meeting can still be cancelled
func (m *Meeting) CanBeCancelled() bool {
	return m.Status == MeetingScheduled
}

// EffectiveBuffers returns the busy-expansion paddings in minutes.
// Travel buffer applies symmetrically before and after in-person meetings.
func (m *Meeting) EffectiveBuffers() (before, after int) {
	before = m.BufferBeforeMinutes
	after = m.BufferAfterMinutes
	if m.MeetingType == MeetingInPerson {
		before += m.TravelBufferMinutes
		after += m.TravelBufferMinutes
	}
	return before, after
}
