package domain

// Default booking page configuration
const (
	DefaultDurationMinutes       = 30
	DefaultBufferMinutes         = 0
	DefaultMaxBookingsPerVisitor = 5
)

// Business validation constants
const (
	MinDurationMinutes        = 1
	MaxDurationMinutes        = 480 // 8 hours
	MinBufferMinutes          = 0
	MaxBufferMinutes          = 240
	MinBookingsPerVisitor     = 1
	MaxBookingsPerVisitor     = 100
	MaxNotesLength            = 500
	MaxVisitorNameLength      = 200
	MaxAliasLength            = 100
	MaxMeetingTitleLength     = 200
	MaxTeamNameLength         = 200
	MaxTravelBufferMinutes    = 480
	MaxParticipantsPerMeeting = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimezone используется, когда у пользователя не сохранена таймзона
const DefaultTimezone = "UTC"
