package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/littlesona/vks-portal/internal/api/metrics"
	"github.com/littlesona/vks-portal/internal/api/middleware"
	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

// AuditDispatcher is the interface the handler uses to enqueue login events.
type AuditDispatcher interface {
	Enqueue(event ports.LoginEventInput)
}

type AuthHandler struct {
	authService ports.AuthService
	audit       AuditDispatcher
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, audit AuditDispatcher, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit, sessionTTL: sessionTTL}
}

type requestOTPRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	Username string `json:"username"`
	OTP      string `json:"otp"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	OTPRequired bool   `json:"otp_required"`
	Role        string `json:"role,omitempty"`
}

// RequestOTP validates primary credentials and starts the second login step.
//
// @Summary      Request a login code
// @Description  Validates username and password. Admins receive a session directly; employees get a one-time code sent to the administrator's WhatsApp.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      requestOTPRequest  true  "Primary credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login/request_otp [post]
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req requestOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	result, err := h.authService.RequestOTP(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPDispatchFailed):
			metrics.LoginAttemptsTotal.WithLabelValues("dispatch_failed").Inc()
			metrics.OTPDispatchFailuresTotal.Inc()
			h.recordEvent(c, req.Username, domain.EventOTPDispatchFailed)
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			h.recordEvent(c, req.Username, domain.EventLoginFailed)
		}
		return err
	}

	if result.Token != "" {
		h.setSessionCookie(c, result.Token)
		metrics.LoginAttemptsTotal.WithLabelValues("granted").Inc()
		h.recordEvent(c, result.Username, domain.EventLoginSucceeded)
		return c.JSON(http.StatusOK, loginResponse{Success: true, Role: result.Role})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("challenge_issued").Inc()
	h.recordEvent(c, result.Username, domain.EventOTPRequested)
	return c.JSON(http.StatusOK, loginResponse{Success: true, OTPRequired: true})
}

// VerifyOTP completes the second login step.
//
// @Summary      Verify a login code
// @Description  Checks the submitted one-time code against the active challenge and grants a session cookie on a match.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Username and one-time code"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login/verify_otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.OTP == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and otp are required")
	}

	result, err := h.authService.VerifyOTP(c.Request().Context(), req.Username, req.OTP)
	if err != nil {
		metrics.OTPVerifyTotal.WithLabelValues(verifyResultLabel(err)).Inc()
		h.recordEvent(c, req.Username, domain.EventOTPRejected)
		return err
	}

	h.setSessionCookie(c, result.Token)
	metrics.OTPVerifyTotal.WithLabelValues("granted").Inc()
	h.recordEvent(c, result.Username, domain.EventLoginSucceeded)
	return c.JSON(http.StatusOK, loginResponse{Success: true, Role: result.Role})
}

// Logout clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.recordEvent(c, username, domain.EventLogout)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// CurrentUser returns the identity bound to the session.
//
// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"username": username,
		"role":     role,
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) recordEvent(c echo.Context, username, kind string) {
	metrics.AuditEventsTotal.WithLabelValues(kind).Inc()
	h.audit.Enqueue(ports.LoginEventInput{
		Username: username,
		Kind:     kind,
		RemoteIP: c.RealIP(),
		At:       time.Now().UTC(),
	})
}

func verifyResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrOTPMismatch):
		return "mismatch"
	case errors.Is(err, domain.ErrOTPExpired):
		return "expired"
	case errors.Is(err, domain.ErrNoActiveChallenge):
		return "no_challenge"
	case errors.Is(err, domain.ErrInvalidOTPSubject):
		return "invalid_subject"
	default:
		return "error"
	}
}
