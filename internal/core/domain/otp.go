package domain

import (
	"crypto/subtle"
	"errors"
	"time"
)

// CodeLength is the number of digits in a login code.
const CodeLength = 6

var ErrNoActiveChallenge = errors.New("no active login challenge")
var ErrOTPExpired = errors.New("login code expired")
var ErrOTPMismatch = errors.New("login code mismatch")
var ErrInvalidOTPSubject = errors.New("user not eligible for otp verification")
var ErrOTPDispatchFailed = errors.New("failed to deliver login code")

// Challenge is one outstanding OTP verification attempt for a single
// username. At most one live challenge exists per username; issuing a new
// one replaces any prior one. A challenge is single-use: successful
// verification removes it immediately.
type Challenge struct {
	Username  string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the challenge is stale at the given instant.
// Expiry is checked lazily, at verification time.
func (c *Challenge) ExpiredAt(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Matches compares a submitted code against the stored one in constant time.
func (c *Challenge) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(c.Code), []byte(code)) == 1
}
