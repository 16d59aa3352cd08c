package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const wiktionaryBaseURL = "https://et.wiktionary.org"

// reEtymologySection extracts the Etümoloogia section from a plaintext
// Wiktionary extract. The section ends at the next heading line or at the
// end of the page.
var reEtymologySection = regexp.MustCompile(`(?sm)^Etümoloogia\s*(.+?)(?:^\w|\z)`)

// Wiktionary queries the Estonian Wiktionary extracts API. It is the
// secondary reference service and needs no credential.
type Wiktionary struct {
	BaseURL string
	Client  *http.Client
}

// NewWiktionary creates the secondary provider.
func NewWiktionary(timeout time.Duration) *Wiktionary {
	return &Wiktionary{
		BaseURL: wiktionaryBaseURL,
		Client:  newClient(timeout),
	}
}

// Name implements Provider.
func (w *Wiktionary) Name() string { return "Wiktionary" }

// Confidence implements Provider. Community data ranks below EKI.
func (w *Wiktionary) Confidence() float64 { return 0.6 }

// Lookup fetches the page extract for lemma and pulls out its Etümoloogia
// section. Pages without one yield ("", nil).
func (w *Wiktionary) Lookup(ctx context.Context, lemma string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("titles", lemma)
	params.Set("format", "json")

	reqURL := w.BaseURL + "/w/api.php?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var reply struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("wiktionary: decode reply: %w", err)
	}

	for _, page := range reply.Query.Pages {
		m := reEtymologySection.FindStringSubmatch(page.Extract)
		if m == nil {
			continue
		}
		return strings.TrimSpace(m[1]), nil
	}
	return "", nil
}
