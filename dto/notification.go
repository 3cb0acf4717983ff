package dto

import "intranet-backend/internal/models"

type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

type UpdateNotificationSettingsRequest struct {
	Email   *bool                     `json:"email,omitempty"`
	Push    *bool                     `json:"push,omitempty"`
	Desktop *bool                     `json:"desktop,omitempty"`
	Types   *models.NotificationTypes `json:"types,omitempty"`
}

// DashboardData aggregates the admin landing-page counters.
type DashboardData struct {
	UserCount          int64                `json:"userCount"`
	ActiveUserCount    int64                `json:"activeUserCount"`
	PostCount          int64                `json:"postCount"`
	RecentPostCount    int64                `json:"recentPostCount"`
	GroupCount         int64                `json:"groupCount"`
	EventCount         int64                `json:"eventCount"`
	UpcomingEventCount int64                `json:"upcomingEventCount"`
	NewsCount          int64                `json:"newsCount"`
	RecentActivity     []models.ActivityLog `json:"recentActivity"`
}

// SystemSettings is the static admin settings document.
type SystemSettings struct {
	SiteName          string   `json:"siteName"`
	Logo              string   `json:"logo"`
	Theme             string   `json:"theme"`
	AllowRegistration bool     `json:"allowRegistration"`
	RequireApproval   bool     `json:"requireApproval"`
	MaxFileSizeMB     int      `json:"maxFileSize"`
	AllowedFileTypes  []string `json:"allowedFileTypes"`
	MaintenanceMode   bool     `json:"maintenanceMode"`
}
