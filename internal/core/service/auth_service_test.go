package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/infrastructure/otp"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(username, password, role, mobile string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	r.users[username] = &domain.User{
		ID:           username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Mobile:       mobile,
	}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindAdmin(_ context.Context) (*domain.User, error) {
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, exists := r.users[u.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *u
	if clone.ID == "" {
		clone.ID = u.Username
	}
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.ID == u.ID {
			existing.Username = u.Username
			existing.Email = u.Email
			existing.Role = u.Role
			existing.Mobile = u.Mobile
			if u.PasswordHash != "" {
				existing.PasswordHash = u.PasswordHash
			}
			clone := *existing
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

type stubNotifier struct {
	destinations []string
	messages     []string
	err          error
}

func (n *stubNotifier) Send(_ context.Context, destination, message string) error {
	if n.err != nil {
		return n.err
	}
	n.destinations = append(n.destinations, destination)
	n.messages = append(n.messages, message)
	return nil
}

// newTestAuth wires an AuthService over an in-memory challenge store with a
// controllable clock. The repo holds admin "boss" and employee "alice".
func newTestAuth(notifier *stubNotifier) (*AuthService, *stubUserRepo, *otp.MemoryStore, *time.Time) {
	repo := newStubUserRepo()
	repo.add("boss", "bosspass", domain.RoleAdmin, "+91 98765-43210")
	repo.add("alice", "alicepass", domain.RoleEmployee, "")

	store := otp.NewMemoryStore()
	svc := NewAuthService(repo, store, notifier, "test-secret", time.Hour, time.Minute, zerolog.Nop())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo, store, &now
}

var codePattern = regexp.MustCompile(`\b(\d{6})\b`)

func sentCode(t *testing.T, notifier *stubNotifier) string {
	t.Helper()
	if len(notifier.messages) == 0 {
		t.Fatalf("no message dispatched")
	}
	m := codePattern.FindStringSubmatch(notifier.messages[len(notifier.messages)-1])
	if m == nil {
		t.Fatalf("no 6-digit code in message %q", notifier.messages[len(notifier.messages)-1])
	}
	return m[1]
}

func TestAuthService_RequestOTP_AdminBypass(t *testing.T) {
	notifier := &stubNotifier{}
	svc, _, store, now := newTestAuth(notifier)

	result, err := svc.RequestOTP(context.Background(), "boss", "bosspass")
	if err != nil {
		t.Fatalf("RequestOTP returned error: %v", err)
	}
	if result.OTPRequired {
		t.Fatalf("admin must not require a second step")
	}
	if result.Token == "" {
		t.Fatalf("expected session token")
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", result.Role)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return *now }))
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "boss" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if len(notifier.messages) != 0 {
		t.Fatalf("admin login must not dispatch a code")
	}
	if ch, _ := store.Get(context.Background(), "boss"); ch != nil {
		t.Fatalf("admin login must not register a challenge")
	}
}

func TestAuthService_RequestOTP_WrongPassword(t *testing.T) {
	notifier := &stubNotifier{}
	svc, _, store, _ := newTestAuth(notifier)

	if _, err := svc.RequestOTP(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if ch, _ := store.Get(context.Background(), "alice"); ch != nil {
		t.Fatalf("failed credential check must not register a challenge")
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("failed credential check must not dispatch")
	}
}

func TestAuthService_RequestOTP_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestAuth(&stubNotifier{})

	if _, err := svc.RequestOTP(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_RequestOTP_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestAuth(&stubNotifier{})

	if _, err := svc.RequestOTP(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.RequestOTP(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_EmployeeLogin_EndToEnd(t *testing.T) {
	notifier := &stubNotifier{}
	svc, _, store, _ := newTestAuth(notifier)

	result, err := svc.RequestOTP(context.Background(), "alice", "alicepass")
	if err != nil {
		t.Fatalf("RequestOTP returned error: %v", err)
	}
	if !result.OTPRequired || result.Token != "" {
		t.Fatalf("employee login must require a second step, got %+v", result)
	}

	// The code goes to the admin's number, never to the response.
	if len(notifier.destinations) != 1 || notifier.destinations[0] != "+91 98765-43210" {
		t.Fatalf("unexpected destinations: %v", notifier.destinations)
	}
	if !strings.Contains(notifier.messages[0], "alice") {
		t.Fatalf("message must name the requesting user: %q", notifier.messages[0])
	}
	code := sentCode(t, notifier)

	granted, err := svc.VerifyOTP(context.Background(), "alice", code)
	if err != nil {
		t.Fatalf("VerifyOTP returned error: %v", err)
	}
	if granted.Token == "" || granted.Role != domain.RoleEmployee {
		t.Fatalf("unexpected grant: %+v", granted)
	}

	// Single use: the challenge is consumed on success.
	if ch, _ := store.Get(context.Background(), "alice"); ch != nil {
		t.Fatalf("challenge must be removed after verification")
	}
	if _, err := svc.VerifyOTP(context.Background(), "alice", code); !errors.Is(err, domain.ErrNoActiveChallenge) {
		t.Fatalf("replay must see ErrNoActiveChallenge, got %v", err)
	}
}

func TestAuthService_RequestOTP_SupersedesPrior(t *testing.T) {
	notifier := &stubNotifier{}
	svc, _, _, _ := newTestAuth(notifier)

	codes := []string{"111111", "222222"}
	svc.generate = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	if _, err := svc.RequestOTP(context.Background(), "alice", "alicepass"); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if _, err := svc.RequestOTP(context.Background(), "alice", "alicepass"); err != nil {
		t.Fatalf("second request failed: %v", err)
	}

	// The first code is dead once replaced.
	if _, err := svc.VerifyOTP(context.Background(), "alice", "111111"); !errors.Is(err, domain.ErrOTPMismatch) {
		t.Fatalf("expected ErrOTPMismatch for superseded code, got %v", err)
	}
	if _, err := svc.VerifyOTP(context.Background(), "alice", "222222"); err != nil {
		t.Fatalf("current code must verify: %v", err)
	}
}

func TestAuthService_RequestOTP_DispatchFailureLeavesChallenge(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("bot unreachable")}
	svc, _, store, _ := newTestAuth(notifier)

	if _, err := svc.RequestOTP(context.Background(), "alice", "alicepass"); !errors.Is(err, domain.ErrOTPDispatchFailed) {
		t.Fatalf("expected ErrOTPDispatchFailed, got %v", err)
	}

	// The challenge stays registered; the retry path is a fresh request,
	// which replaces it.
	if ch, _ := store.Get(context.Background(), "alice"); ch == nil {
		t.Fatalf("challenge must remain after a failed dispatch")
	}
}

func TestAuthService_VerifyOTP_Expired(t *testing.T) {
	notifier := &stubNotifier{}
	svc, _, store, now := newTestAuth(notifier)

	if _, err := svc.RequestOTP(context.Background(), "alice", "alicepass"); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}
	code := sentCode(t, notifier)

	*now = now.Add(61 * time.Second)

	if _, err := svc.VerifyOTP(context.Background(), "alice", code); !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}

	// Lazy removal: the expired challenge is dropped on first touch, so a
	// repeat attempt reports no challenge at all.
	if ch, _ := store.Get(context.Background(), "alice"); ch != nil {
		t.Fatalf("expired challenge must be removed")
	}
	if _, err := svc.VerifyOTP(context.Background(), "alice", code); !errors.Is(err, domain.ErrNoActiveChallenge) {
		t.Fatalf("expected ErrNoActiveChallenge after expiry, got %v", err)
	}
}

func TestAuthService_VerifyOTP_MismatchRetainsChallenge(t *testing.T) {
	notifier := &stubNotifier{}
	svc, _, _, _ := newTestAuth(notifier)

	if _, err := svc.RequestOTP(context.Background(), "alice", "alicepass"); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}
	code := sentCode(t, notifier)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if _, err := svc.VerifyOTP(context.Background(), "alice", wrong); !errors.Is(err, domain.ErrOTPMismatch) {
		t.Fatalf("expected ErrOTPMismatch, got %v", err)
	}

	// The challenge survives a mismatch; the right code still works.
	if _, err := svc.VerifyOTP(context.Background(), "alice", code); err != nil {
		t.Fatalf("correct code must verify after a mismatch: %v", err)
	}
}

func TestAuthService_VerifyOTP_AdminSubject(t *testing.T) {
	svc, _, _, _ := newTestAuth(&stubNotifier{})

	if _, err := svc.VerifyOTP(context.Background(), "boss", "123456"); !errors.Is(err, domain.ErrInvalidOTPSubject) {
		t.Fatalf("expected ErrInvalidOTPSubject for admin, got %v", err)
	}
}

func TestAuthService_VerifyOTP_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestAuth(&stubNotifier{})

	if _, err := svc.VerifyOTP(context.Background(), "ghost", "123456"); !errors.Is(err, domain.ErrInvalidOTPSubject) {
		t.Fatalf("expected ErrInvalidOTPSubject for unknown user, got %v", err)
	}
}

func TestAuthService_VerifyOTP_NoChallenge(t *testing.T) {
	svc, _, _, _ := newTestAuth(&stubNotifier{})

	if _, err := svc.VerifyOTP(context.Background(), "alice", "123456"); !errors.Is(err, domain.ErrNoActiveChallenge) {
		t.Fatalf("expected ErrNoActiveChallenge, got %v", err)
	}
}
