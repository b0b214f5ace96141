package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gateway_reservas/internal/config"
	"gateway_reservas/internal/domain/entities"
	"gateway_reservas/internal/infrastructure/metrics"

	"golang.org/x/time/rate"
)

const (
	getUnitPath        = "/api/method/custom.get_unidade_by_rowname"
	setReservationPath = "/api/method/custom.set_reserva_db"
	setSoldPath        = "/api/method/custom.set_vendido"

	maxResponseBytes = 1 << 20
)

var (
	ErrMissingBaseURL = errors.New("missing ERP_BASE_URL")
	ErrUnsafeToken    = errors.New("ERP token contains forbidden characters")
)

// Client talks to the ERP's custom unit methods. It keeps no state about units;
// every call is a single request whose HTTP status is returned verbatim.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Collector
}

// NewClient returns a configuration error when the base URL is empty or the
// composed token still carries characters that cannot go into a header.
func NewClient(cfg config.ERPConfig, m *metrics.Collector) (*Client, error) {
	if cfg.BaseURL == "" {
		log.Printf("[erp][client] missing ERP_BASE_URL")
		return nil, &entities.GatewayError{Kind: entities.ErrConfiguration, Message: ErrMissingBaseURL.Error(), Cause: ErrMissingBaseURL}
	}
	if config.HasForbiddenChars(cfg.Credentials.AuthHeader()) {
		log.Printf("[erp][client] unsafe ERP token rejected")
		return nil, &entities.GatewayError{Kind: entities.ErrConfiguration, Message: ErrUnsafeToken.Error(), Cause: ErrUnsafeToken}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.MaxRPS > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxRPS), burst)
	}

	log.Printf("[erp][client] initialized base_url=%s auth=%s timeout=%s max_rps=%.2f", cfg.BaseURL, cfg.Credentials.Mode(), timeout, cfg.MaxRPS)
	return &Client{
		baseURL:    cfg.BaseURL,
		authHeader: cfg.Credentials.AuthHeader(),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		metrics:    m,
	}, nil
}

func (c *Client) GetUnit(ctx context.Context, unitID string) (entities.UpstreamResponse, error) {
	return c.get(ctx, entities.OperationLookup, unitID)
}

// GetStatus performs the same remote call as GetUnit.
func (c *Client) GetStatus(ctx context.Context, unitID string) (entities.UpstreamResponse, error) {
	return c.get(ctx, entities.OperationStatus, unitID)
}

// SetReservation sets or clears the reservation flag. Holder fields are only
// sent when reserving.
func (c *Client) SetReservation(ctx context.Context, unitID string, reserved bool, holder *entities.HolderMetadata) (entities.UpstreamResponse, error) {
	op := entities.OperationRelease
	payload := map[string]any{"rowname": unitID, "reservado": 0}
	if reserved {
		op = entities.OperationReserve
		payload["reservado"] = 1
		if holder != nil {
			putNonEmpty(payload, "reservado_por", holder.AgentName)
			putNonEmpty(payload, "cliente_nome", holder.ClientName)
			putNonEmpty(payload, "cliente_contato", holder.ClientContact)
			putNonEmpty(payload, "cliente_documento", holder.ClientDocument)
			putNonEmpty(payload, "observacao", holder.Notes)
		}
	}
	return c.post(ctx, op, setReservationPath, unitID, payload)
}

func (c *Client) SetSold(ctx context.Context, unitID string) (entities.UpstreamResponse, error) {
	return c.post(ctx, entities.OperationMarkSold, setSoldPath, unitID, map[string]any{"rowname": unitID})
}

func (c *Client) get(ctx context.Context, op entities.Operation, unitID string) (entities.UpstreamResponse, error) {
	endpoint := c.baseURL + getUnitPath + "?rowname=" + url.QueryEscape(unitID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.UpstreamResponse{}, entities.NewTransportError(op, unitID, err)
	}
	return c.do(req, op, "get_unit", unitID)
}

func (c *Client) post(ctx context.Context, op entities.Operation, path, unitID string, payload map[string]any) (entities.UpstreamResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.UpstreamResponse{}, entities.NewTransportError(op, unitID, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return entities.UpstreamResponse{}, entities.NewTransportError(op, unitID, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, op, strings.TrimPrefix(path, "/api/method/custom."), unitID)
}

func (c *Client) do(req *http.Request, op entities.Operation, endpoint, unitID string) (entities.UpstreamResponse, error) {
	req.Header.Set("Accept", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			log.Printf("[erp][client] rate limiter wait aborted endpoint=%s unit_id=%s err=%v", endpoint, unitID, err)
			c.metrics.ObserveLimiterAbort(endpoint)
			return entities.UpstreamResponse{}, entities.NewTransportError(op, unitID, err)
		}
	}

	start := time.Now()
	log.Printf("[erp][client] %s start endpoint=%s unit_id=%s", req.Method, endpoint, unitID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, 0, time.Since(start))
		log.Printf("[erp][client] %s failed endpoint=%s unit_id=%s elapsed=%s err=%v", req.Method, endpoint, unitID, time.Since(start), err)
		return entities.UpstreamResponse{}, entities.NewTransportError(op, unitID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	elapsed := time.Since(start)
	c.metrics.ObserveUpstream(endpoint, resp.StatusCode, elapsed)
	if err != nil {
		log.Printf("[erp][client] body read failed endpoint=%s unit_id=%s status_code=%d err=%v", endpoint, unitID, resp.StatusCode, err)
		return entities.UpstreamResponse{}, entities.NewTransportError(op, unitID, fmt.Errorf("read response body: %w", err))
	}
	if len(raw) > maxResponseBytes {
		log.Printf("[erp][client] response too large endpoint=%s unit_id=%s status_code=%d limit=%d", endpoint, unitID, resp.StatusCode, maxResponseBytes)
		return entities.UpstreamResponse{}, &entities.GatewayError{
			Kind:       entities.ErrUpstream,
			Operation:  op,
			UnitID:     unitID,
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("ERP response too large (over %d bytes)", maxResponseBytes),
		}
	}

	out := NormalizeBody(raw)
	out.StatusCode = resp.StatusCode
	log.Printf("[erp][client] %s done endpoint=%s unit_id=%s status_code=%d parsed=%t elapsed=%s", req.Method, endpoint, unitID, resp.StatusCode, out.Parsed, elapsed)
	return out, nil
}

// NormalizeBody turns any ERP body into a JSON object. Objects are kept as is;
// anything else is wrapped as {"message": ...}.
func NormalizeBody(raw []byte) entities.UpstreamResponse {
	out := entities.UpstreamResponse{Raw: raw}

	trimmed := bytes.TrimSpace(raw)
	var decoded any
	if len(trimmed) > 0 && json.Unmarshal(trimmed, &decoded) == nil {
		if obj, ok := decoded.(map[string]any); ok {
			out.Body = obj
			out.Parsed = true
			return out
		}
		out.Body = map[string]any{"message": decoded}
		return out
	}

	out.Body = map[string]any{"message": string(trimmed)}
	return out
}

func putNonEmpty(m map[string]any, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		m[key] = v
	}
}
