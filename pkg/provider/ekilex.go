package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const ekilexBaseURL = "https://ekilex.ee"

// Ekilex queries the EKI Ekilex etymology API. It is the primary reference
// service and requires a bearer API key; without one every lookup is
// skipped unconditionally.
type Ekilex struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewEkilex creates the primary provider. An empty apiKey disables it.
func NewEkilex(apiKey string, timeout time.Duration) *Ekilex {
	return &Ekilex{
		BaseURL: ekilexBaseURL,
		APIKey:  apiKey,
		Client:  newClient(timeout),
	}
}

// Name implements Provider.
func (e *Ekilex) Name() string { return "EKI" }

// Confidence implements Provider. The primary service is authoritative.
func (e *Ekilex) Confidence() float64 { return 0.9 }

// Lookup fetches the etymology description for lemma. A missing API key,
// non-200 status, or a reply without etymology text all yield ("", nil).
func (e *Ekilex) Lookup(ctx context.Context, lemma string) (string, error) {
	if e.APIKey == "" {
		return "", nil
	}

	reqURL := fmt.Sprintf("%s/api/etymology?word=%s", e.BaseURL, url.QueryEscape(lemma))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+e.APIKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var reply struct {
		Etymology []struct {
			Value   string `json:"value"`
			Comment string `json:"comment"`
		} `json:"etymology"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("ekilex: decode reply: %w", err)
	}

	var parts []string
	for _, ety := range reply.Etymology {
		if ety.Value != "" {
			parts = append(parts, ety.Value)
		}
		if ety.Comment != "" {
			parts = append(parts, ety.Comment)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}
