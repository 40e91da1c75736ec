package ports

import "context"

// LoginResult is the outcome of a successful authentication step.
// After RequestOTP, OTPRequired tells the caller whether a second step is
// pending; Token is only set once a session has actually been granted
// (admin bypass, or a successful VerifyOTP).
type LoginResult struct {
	Username    string
	Role        string
	OTPRequired bool
	Token       string
}

// AuthService drives the two-step login protocol.
//
// RequestOTP validates primary credentials. Admins are granted a session
// immediately; for employees a challenge is registered and the code is
// dispatched to the administrator's out-of-band channel.
//
// VerifyOTP checks a submitted code against the active challenge for the
// username and grants a session on an exact match. Challenges are
// single-use and expire lazily.
type AuthService interface {
	RequestOTP(ctx context.Context, username, password string) (*LoginResult, error)
	VerifyOTP(ctx context.Context, username, code string) (*LoginResult, error)
}
