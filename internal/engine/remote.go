// Package engine provides the outbound adapter to the external analysis
// daemon. The daemon owns rule evaluation end to end; lintwire only ships
// document text over and violations back.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lintwire-labs/lintwire/internal/config"
	"github.com/lintwire-labs/lintwire/pkg/analysis"
)

// Remote implements analysis.Engine against an analysis daemon speaking
// JSON over HTTP. One Run call is one synchronous POST; concurrency across
// rule sets comes from the caller, and http.Client is safe for that.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote creates a client for the configured daemon.
func NewRemote(cfg config.EngineConfig) *Remote {
	return &Remote{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type analyzeRequest struct {
	Text    string `json:"text"`
	Dialect string `json:"dialect"`
	Version string `json:"version"`
	RuleSet string `json:"ruleset"`
}

type analyzeResponse struct {
	Violations []analysis.Violation `json:"violations"`
}

// Run submits one rule-set analysis and decodes the violations.
func (r *Remote) Run(ctx context.Context, text, dialectID, versionTag, ruleSetID string) ([]analysis.Violation, error) {
	body, err := json.Marshal(analyzeRequest{
		Text:    text,
		Dialect: dialectID,
		Version: versionTag,
		RuleSet: ruleSetID,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis daemon unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analysis daemon returned %s: %s",
			resp.Status, strings.TrimSpace(string(snippet)))
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding analyze response: %w", err)
	}

	return decoded.Violations, nil
}
