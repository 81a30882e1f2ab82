package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/jwt"
	"station-reassignment-service/internal/my_errors"
)

const maxErrorBody = 64 << 10

// HTTPGatewayConfig configures the REST gateway. When Token is empty and
// TokenSecret is set, a service token is signed for every call.
type HTTPGatewayConfig struct {
	BaseURL      string
	Token        string
	TokenSecret  string
	TokenSubject string
	Timeout      time.Duration
}

// HTTPGateway submits reassignments to the remote reassignment API.
type HTTPGateway struct {
	cfg    HTTPGatewayConfig
	client *http.Client
	now    func() time.Time
}

func NewHTTPGateway(cfg HTTPGatewayConfig, client *http.Client) *HTTPGateway {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &HTTPGateway{cfg: cfg, client: client, now: time.Now}
}

type reassignmentPayload struct {
	SubjectID       string  `json:"subjectId"`
	TargetStationID string  `json:"targetStationId"`
	PriorStationID  *string `json:"priorStationId,omitempty"`
	EffectiveDate   string  `json:"effectiveDate"`
	Remarks         string  `json:"remarks"`
	Status          string  `json:"status"`
}

type remoteError struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Submit performs one POST and never retries.
func (g *HTTPGateway) Submit(ctx context.Context, req domain.ReassignmentRequest) error {
	body, err := json.Marshal(reassignmentPayload{
		SubjectID:       req.SubjectID,
		TargetStationID: req.TargetStationID,
		PriorStationID:  req.PriorStationID,
		EffectiveDate:   req.EffectiveDate.UTC().Format(time.RFC3339),
		Remarks:         req.Remarks,
		Status:          domain.StatusPendingApproval,
	})
	if err != nil {
		return &domain.SubmitError{Reason: "failed to encode reassignment", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/reassignments", bytes.NewReader(body))
	if err != nil {
		return &domain.SubmitError{Reason: "failed to build reassignment request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	token, err := g.bearerToken()
	if err != nil {
		return &domain.SubmitError{Reason: "failed to authorize reassignment request", Err: err}
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return &domain.SubmitError{Reason: my_errors.ErrGatewayUnavailable.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			slog.Debug("failed to drain response body", "error", err)
		}
		return nil
	}

	return &domain.SubmitError{
		Reason:     remoteReason(resp),
		StatusCode: resp.StatusCode,
	}
}

func (g *HTTPGateway) bearerToken() (string, error) {
	if g.cfg.Token != "" {
		return g.cfg.Token, nil
	}
	if g.cfg.TokenSecret == "" {
		return "", nil
	}
	return jwt.GenerateServiceToken(g.cfg.TokenSubject, g.cfg.TokenSecret, g.now())
}

// remoteReason prefers the message from the remote payload.
func remoteReason(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(raw) > 0 {
		var payload remoteError
		if json.Unmarshal(raw, &payload) == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != nil && payload.Error.Message != "" {
				return payload.Error.Message
			}
		}
	}
	return fmt.Sprintf("reassignment rejected with status %d", resp.StatusCode)
}
