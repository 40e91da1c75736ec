package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

const (
	defaultSessionTTL = 24 * time.Hour
	defaultOTPTTL     = 60 * time.Second
)

// AuthService implements the two-step OTP login protocol.
//
// Per-username challenge lifecycle: NoChallenge → ChallengeIssued →
// {Verified, Expired, Superseded}. A code mismatch keeps the challenge
// alive until expiry.
type AuthService struct {
	users      ports.UserRepository
	challenges ports.ChallengeStore
	notifier   ports.Notifier
	jwtSecret  string
	sessionTTL time.Duration
	otpTTL     time.Duration

	// overridable in tests
	generate func() (string, error)
	now      func() time.Time

	log zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	challenges ports.ChallengeStore,
	notifier ports.Notifier,
	jwtSecret string,
	sessionTTL, otpTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	if otpTTL <= 0 {
		otpTTL = defaultOTPTTL
	}
	return &AuthService{
		users:      users,
		challenges: challenges,
		notifier:   notifier,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		otpTTL:     otpTTL,
		generate:   GenerateCode,
		now:        time.Now,
		log:        log,
	}
}

// RequestOTP validates primary credentials and either grants a session
// (admin) or registers a challenge and dispatches the code to the
// administrator's WhatsApp (employee).
func (s *AuthService) RequestOTP(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Absent user and wrong password are indistinguishable to the
		// caller, so usernames cannot be enumerated.
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Admins are the OTP-receiving party; a second factor via themselves
	// is meaningless, so they get a session directly.
	if user.IsAdmin() {
		token, err := s.issueToken(user)
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("username", username).Msg("admin login granted")
		return &ports.LoginResult{Username: user.Username, Role: user.Role, Token: token}, nil
	}

	code, err := s.generate()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	ch := &domain.Challenge{
		Username:  user.Username,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.otpTTL),
	}
	// Registered before dispatch; a failed dispatch leaves the challenge
	// in place and a fresh RequestOTP overwrites it.
	if err := s.challenges.Put(ctx, ch); err != nil {
		return nil, fmt.Errorf("register challenge: %w", err)
	}

	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("admin contact lookup failed")
		return nil, domain.ErrOTPDispatchFailed
	}

	message := fmt.Sprintf("VKS Portal login code for %s: %s (valid %d seconds)",
		user.Username, code, int(s.otpTTL.Seconds()))
	if err := s.notifier.Send(ctx, admin.Mobile, message); err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("otp dispatch failed")
		return nil, domain.ErrOTPDispatchFailed
	}

	s.log.Info().Str("username", username).Time("expires_at", ch.ExpiresAt).Msg("otp challenge issued")
	return &ports.LoginResult{Username: user.Username, Role: user.Role, OTPRequired: true}, nil
}

// VerifyOTP checks a submitted code against the active challenge and grants
// a session on an exact match. Challenges are single-use; expiry is checked
// here, lazily.
func (s *AuthService) VerifyOTP(ctx context.Context, username, code string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidOTPSubject
	}
	if user.IsAdmin() {
		return nil, domain.ErrInvalidOTPSubject
	}

	ch, err := s.challenges.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup challenge: %w", err)
	}
	if ch == nil {
		return nil, domain.ErrNoActiveChallenge
	}

	if ch.ExpiredAt(s.now().UTC()) {
		if err := s.challenges.Remove(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to drop expired challenge")
		}
		return nil, domain.ErrOTPExpired
	}

	if !ch.Matches(code) {
		// Challenge survives; the employee may retry until expiry.
		return nil, domain.ErrOTPMismatch
	}

	if err := s.challenges.Remove(ctx, username); err != nil {
		return nil, fmt.Errorf("consume challenge: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Msg("otp verified, login granted")
	return &ports.LoginResult{Username: user.Username, Role: user.Role, Token: token}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      s.now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
