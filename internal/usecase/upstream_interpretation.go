package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"gateway_reservas/internal/domain/entities"
)

// statusKeys are checked in order; the ERP uses status_vendas, older endpoints status.
var statusKeys = []string{"status_vendas", "status"}

// failureKeys mark a Frappe exception envelope even when the HTTP status is 2xx.
// _server_messages is not one of them: msgprint fills it on successful calls too.
var failureKeys = []string{"exc", "exception", "exc_type"}

// interpretation is what the gateway reads out of an ERP body.
type interpretation struct {
	payload        map[string]any
	upstreamStatus string
	status         entities.SaleStatus
	hasStatus      bool
	failed         bool
	explicitNotOK  bool
	message        string
}

func interpret(body map[string]any) interpretation {
	in := interpretation{payload: body}
	if inner, ok := body["message"].(map[string]any); ok {
		in.payload = inner
	}

	for _, key := range statusKeys {
		if s, ok := stringField(in.payload, key); ok {
			in.upstreamStatus = s
			in.status = entities.ParseSaleStatus(s)
			in.hasStatus = true
			break
		}
	}

	for _, key := range failureKeys {
		if _, ok := body[key]; ok {
			in.failed = true
			break
		}
	}
	if okFlag, ok := in.payload["ok"].(bool); ok && !okFlag {
		in.failed = true
		in.explicitNotOK = true
	}

	in.message = extractMessage(body)
	return in
}

// extractMessage picks the human-readable ERP text: message, then exception,
// then _server_messages. The first non-empty one wins.
func extractMessage(body map[string]any) string {
	switch m := body["message"].(type) {
	case string:
		if s := strings.TrimSpace(m); s != "" {
			return s
		}
	case map[string]any:
		for _, key := range []string{"message", "error"} {
			if s, ok := stringField(m, key); ok {
				return s
			}
		}
	}

	for _, key := range []string{"exception", "exc"} {
		if s, ok := stringField(body, key); ok {
			return s
		}
	}

	if s, ok := stringField(body, "_server_messages"); ok {
		return decodeServerMessages(s)
	}
	return ""
}

// decodeServerMessages unwraps Frappe's double-encoded list of JSON objects.
// Anything it cannot decode is returned as is.
func decodeServerMessages(raw string) string {
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return raw
	}

	msgs := make([]string, 0, len(entries))
	for _, entry := range entries {
		var obj map[string]any
		if err := json.Unmarshal([]byte(entry), &obj); err == nil {
			if s, ok := stringField(obj, "message"); ok {
				msgs = append(msgs, s)
				continue
			}
		}
		if s := strings.TrimSpace(entry); s != "" {
			msgs = append(msgs, s)
		}
	}
	if len(msgs) == 0 {
		return raw
	}
	return strings.Join(msgs, "; ")
}

func stringField(m map[string]any, key string) (string, bool) {
	var s string
	switch t := m[key].(type) {
	case string:
		s = t
	case float64, bool:
		s = fmt.Sprintf("%v", t)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func holderFromPayload(p map[string]any) entities.HolderMetadata {
	get := func(key string) string {
		s, _ := stringField(p, key)
		return s
	}
	return entities.HolderMetadata{
		AgentName:      get("reservado_por"),
		ClientName:     get("cliente_nome"),
		ClientContact:  get("cliente_contato"),
		ClientDocument: get("cliente_documento"),
		Notes:          get("observacao"),
	}
}

func copyFields(p map[string]any) map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
