package models

// StatsResponse сводка по данным пользователя для дашборда
type StatsResponse struct {
	TodayMeetings     int `json:"todayMeetings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	Teams             int `json:"teams"`
	Calendars         int `json:"calendars"`
}
