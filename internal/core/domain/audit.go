package domain

import "time"

// Login event kinds recorded in the audit trail.
const (
	EventOTPRequested      = "otp_requested"
	EventOTPDispatchFailed = "otp_dispatch_failed"
	EventOTPRejected       = "otp_rejected"
	EventLoginSucceeded    = "login_succeeded"
	EventLoginFailed       = "login_failed"
	EventLogout            = "logout"
)

// LoginEvent is one audit-trail entry for an authentication attempt.
type LoginEvent struct {
	Username string    `json:"username" bson:"username"`
	Kind     string    `json:"kind" bson:"kind"`
	RemoteIP string    `json:"remote_ip,omitempty" bson:"remote_ip,omitempty"`
	At       time.Time `json:"at" bson:"at"`
}
