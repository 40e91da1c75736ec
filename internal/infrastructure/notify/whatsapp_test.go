package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWhatsAppNotifier_Send(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL, time.Second, zerolog.Nop())
	if err := n.Send(context.Background(), "+91 98765-43210", "hello"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if gotPath != "/send-message" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotBody["phone"] != "919876543210" {
		t.Fatalf("destination must be digits only, got %q", gotBody["phone"])
	}
	if gotBody["message"] != "hello" {
		t.Fatalf("unexpected message: %q", gotBody["message"])
	}
}

func TestWhatsAppNotifier_TrailingSlashBase(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL+"/", time.Second, zerolog.Nop())
	if err := n.Send(context.Background(), "12345", "hi"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotPath != "/send-message" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}

func TestWhatsAppNotifier_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(srv.URL, time.Second, zerolog.Nop())
	if err := n.Send(context.Background(), "12345", "hi"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestWhatsAppNotifier_NoDigitsDestination(t *testing.T) {
	n := NewWhatsAppNotifier("http://localhost:0", time.Second, zerolog.Nop())
	if err := n.Send(context.Background(), "not-a-number", "hi"); err == nil {
		t.Fatalf("expected error for destination without digits")
	}
}

func TestWhatsAppNotifier_DefaultTimeout(t *testing.T) {
	n := NewWhatsAppNotifier("http://localhost:0", 0, zerolog.Nop())
	if n.client.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultTimeout, n.client.Timeout)
	}
}
