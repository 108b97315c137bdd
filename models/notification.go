package models

// NotificationType is the severity of a transient UI notification.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationDanger  NotificationType = "danger"
)

// Notification is a transient message shown to the user. When AutoHide is
// set it is removed automatically after a fixed delay.
type Notification struct {
	ID       string           `json:"id"`
	Message  string           `json:"message"`
	Type     NotificationType `json:"type"`
	AutoHide bool             `json:"autoHide,omitempty"`
}
