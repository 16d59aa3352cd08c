// Package fetch retrieves a web page and extracts its readable text.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxBodySize caps downloaded HTML to prevent OOM from untrusted URLs.
const maxBodySize = 10 * 1024 * 1024

var (
	// reRefSup matches reference superscripts (footnote markers) so they
	// do not leak into the extracted text as stray tokens.
	reRefSup = regexp.MustCompile(`(?si)<sup\b[^>]*class="[^"]*reference[^"]*"[^>]*>.*?</sup>`)
	// reBracketRef catches plaintext footnote markers like [1] left over
	// after extraction.
	reBracketRef = regexp.MustCompile(`\[\d+\]`)
)

// StripReferences removes reference superscripts from HTML content. Wiki
// exports mark footnotes this way and readability keeps them otherwise.
func StripReferences(content []byte) []byte {
	return reRefSup.ReplaceAll(content, []byte{})
}

// Article fetches rawurl and returns the page title and readable text.
func Article(ctx context.Context, rawurl string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	// Mimic a real browser to avoid being blocked.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "et-EE,et;q=0.9,en;q=0.8")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", rawurl, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: status %d", rawurl, resp.StatusCode)
	}
	if resp.ContentLength > int64(maxBodySize) {
		return "", "", fmt.Errorf("content length %d exceeds limit of %d bytes", resp.ContentLength, maxBodySize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) >= int64(maxBodySize) {
		return "", "", fmt.Errorf("response body exceeded maximum size limit of %d bytes", maxBodySize)
	}

	body = StripReferences(body)

	parsedURL, _ := url.Parse(rawurl)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return "", "", fmt.Errorf("extract article: %w", err)
	}

	text := reBracketRef.ReplaceAllString(article.TextContent, "")
	return article.Title, text, nil
}
