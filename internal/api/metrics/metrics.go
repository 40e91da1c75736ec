// Package metrics defines all custom Prometheus metrics for the VKS portal
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vksportal"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts primary-credential login attempts.
// Label:
//   - result: "granted" (admin bypass), "challenge_issued", "invalid_credentials",
//     or "dispatch_failed"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of primary-credential login attempts, by result.",
	},
	[]string{"result"},
)

// OTPVerifyTotal counts OTP verification attempts.
// Label:
//   - result: "granted", "mismatch", "expired", "no_challenge", or "invalid_subject"
var OTPVerifyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verify_total",
		Help:      "Total number of OTP verification attempts, by result.",
	},
	[]string{"result"},
)

// OTPDispatchFailuresTotal counts login codes that could not be delivered to
// the administrator's channel.
var OTPDispatchFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_dispatch_failures_total",
		Help:      "Total number of login codes that failed out-of-band delivery.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events enqueued for persistence.
// Label:
//   - kind: the login event kind (e.g. "otp_requested", "login_failed")
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of login audit events enqueued, by kind.",
	},
	[]string{"kind"},
)
