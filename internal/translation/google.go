package translation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	googleProviderName = "google"

	defaultHTTPTimeout = 30 * time.Second
)

// ErrMissingAPIKey reports that no credential was configured. Operations
// return it before any network activity happens.
var ErrMissingAPIKey = errors.New("translation API key is not configured")

// GoogleProvider binds the hosted translation v2 endpoints. The credential
// is fixed at construction; the provider holds no other state and is safe
// for concurrent use.
type GoogleProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// GoogleOptions configures a GoogleProvider. Zero values fall back to the
// hosted endpoint with a 30s timeout.
type GoogleOptions struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// Client overrides the HTTP client; Timeout is ignored when set.
	Client *http.Client
}

func NewGoogleProvider(opts GoogleOptions, logger zerolog.Logger) *GoogleProvider {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &GoogleProvider{
		apiKey:  strings.TrimSpace(opts.APIKey),
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

func (p *GoogleProvider) Name() string {
	return googleProviderName
}

// Languages lists the supported languages with names localized in the
// target locale ("en" when blank).
func (p *GoogleProvider) Languages(ctx context.Context, target string) (*LanguageList, error) {
	if err := p.checkCredential(); err != nil {
		return nil, err
	}

	body, err := p.fetch(ctx, languagesEndpoint(p.baseURL, p.apiKey, languagesParams{
		Target: target,
	}))
	if err != nil {
		return nil, err
	}
	return decodeLanguages(body, p.logger), nil
}

// Detect identifies the language of the text. Absent or unreadable
// detections yield an empty code, not an error.
func (p *GoogleProvider) Detect(ctx context.Context, text string) (string, error) {
	if err := p.checkCredential(); err != nil {
		return "", err
	}

	body, err := p.fetch(ctx, detectEndpoint(p.baseURL, p.apiKey, detectParams{
		Text: text,
	}))
	if err != nil {
		return "", err
	}
	return decodeDetection(body, p.logger), nil
}

// Translate converts text into the target locale's language. Locale-like
// identifiers reduce to their primary language subtag before being sent.
func (p *GoogleProvider) Translate(ctx context.Context, text, targetLocale, sourceLocale string) (string, error) {
	if err := p.checkCredential(); err != nil {
		return "", err
	}

	body, err := p.fetch(ctx, translateEndpoint(p.baseURL, p.apiKey, translateParams{
		Text:         text,
		TargetLocale: targetLocale,
		SourceLocale: sourceLocale,
	}))
	if err != nil {
		return "", err
	}
	return decodeTranslation(body, p.logger), nil
}

func (p *GoogleProvider) checkCredential() error {
	if p == nil || p.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (p *GoogleProvider) fetch(ctx context.Context, ep endpoint) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, ep.method, ep.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build translation request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send translation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("translation endpoint status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
