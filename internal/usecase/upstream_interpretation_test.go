package usecase

import (
	"testing"

	"gateway_reservas/internal/domain/entities"
)

func TestInterpret_StatusLookup(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		want     entities.SaleStatus
		upstream string
		has      bool
	}{
		{name: "frappe envelope", body: map[string]any{"message": map[string]any{"status_vendas": "Disponível"}}, want: entities.SaleStatusAvailable, upstream: "Disponível", has: true},
		{name: "top level status", body: map[string]any{"status": "SOLD"}, want: entities.SaleStatusSold, upstream: "SOLD", has: true},
		{name: "status_vendas wins", body: map[string]any{"status_vendas": "Reservada", "status": "Active"}, want: entities.SaleStatusReserved, upstream: "Reservada", has: true},
		{name: "unknown value kept", body: map[string]any{"status_vendas": "Em análise"}, want: entities.SaleStatusUnknown, upstream: "Em análise", has: true},
		{name: "text body", body: map[string]any{"message": "Internal error page"}},
		{name: "blank status", body: map[string]any{"status_vendas": "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := interpret(tt.body)
			if in.hasStatus != tt.has || in.status != tt.want || in.upstreamStatus != tt.upstream {
				t.Fatalf("got has=%t status=%q upstream=%q", in.hasStatus, in.status, in.upstreamStatus)
			}
		})
	}
}

func TestInterpret_FailureIndicators(t *testing.T) {
	for _, body := range []map[string]any{
		{"exc": "Traceback"},
		{"exception": "frappe.PermissionError"},
		{"exc_type": "ValidationError"},
		{"message": map[string]any{"ok": false}},
	} {
		if !interpret(body).failed {
			t.Fatalf("expected failure for %v", body)
		}
	}
	if interpret(map[string]any{"message": map[string]any{"ok": true, "status_vendas": "Livre"}}).failed {
		t.Fatal("ok=true must not be a failure")
	}
	informational := interpret(map[string]any{
		"message":          map[string]any{"ok": true, "status_vendas": "Reservado"},
		"_server_messages": `["{\"message\": \"Reserva registrada\"}"]`,
	})
	if informational.failed || informational.status != entities.SaleStatusReserved || informational.message != "Reserva registrada" {
		t.Fatalf("server messages on success must stay informational, got %+v", informational)
	}
}

func TestExtractMessage_Priority(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{name: "message first", body: map[string]any{"message": "direct", "exception": "exc", "_server_messages": `["x"]`}, want: "direct"},
		{name: "nested message", body: map[string]any{"message": map[string]any{"message": "nested"}}, want: "nested"},
		{name: "nested error", body: map[string]any{"message": map[string]any{"error": "boom"}}, want: "boom"},
		{name: "exception next", body: map[string]any{"exception": "frappe.ValidationError: x", "exc": "Traceback"}, want: "frappe.ValidationError: x"},
		{name: "exc", body: map[string]any{"exc": "Traceback"}, want: "Traceback"},
		{name: "server messages decoded", body: map[string]any{"_server_messages": `["{\"message\": \"A\"}", "{\"message\": \"B\"}"]`}, want: "A; B"},
		{name: "server messages raw", body: map[string]any{"_server_messages": "not json"}, want: "not json"},
		{name: "none", body: map[string]any{"message": map[string]any{"ok": true}}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMessage(tt.body); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
