package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"horse.fit/translate/internal/translation"
)

type fakeProvider struct {
	name           string
	languages      *translation.LanguageList
	detected       string
	translated     string
	err            error
	translateCalls int
	detectCalls    int
	languagesCalls int
	lastTarget     string
	lastSource     string
	lastText       string
}

func (p *fakeProvider) Languages(_ context.Context, target string) (*translation.LanguageList, error) {
	p.languagesCalls++
	p.lastTarget = target
	if p.err != nil {
		return nil, p.err
	}
	return p.languages, nil
}

func (p *fakeProvider) Detect(_ context.Context, text string) (string, error) {
	p.detectCalls++
	p.lastText = text
	if p.err != nil {
		return "", p.err
	}
	return p.detected, nil
}

func (p *fakeProvider) Translate(_ context.Context, text, targetLocale, sourceLocale string) (string, error) {
	p.translateCalls++
	p.lastText = text
	p.lastTarget = targetLocale
	p.lastSource = sourceLocale
	if p.err != nil {
		return "", p.err
	}
	return p.translated, nil
}

func (p *fakeProvider) Name() string {
	return p.name
}

func newTestServer(t *testing.T, provider translation.Provider) *Server {
	t.Helper()

	registry := translation.NewRegistry("google")
	if err := registry.Register(provider); err != nil {
		t.Fatalf("register provider: %v", err)
	}
	return NewServer(registry, zerolog.Nop(), Options{})
}

func newRequestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeJSend(t *testing.T, rec *httptest.ResponseRecorder) jsendResponse {
	t.Helper()

	var resp jsendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode jsend response: %v", err)
	}
	return resp
}

func TestHandleTranslate(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{name: "google", translated: "Bonjour"}
	server := newTestServer(t, provider)

	c, rec := newRequestContext(http.MethodPost, "/api/v1/translate",
		`{"text":"Hello","target_lang":"fr","source_lang":"en"}`)
	if err := server.handleTranslate(c); err != nil {
		t.Fatalf("handleTranslate: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	resp := decodeJSend(t, rec)
	if resp.Status != "success" {
		t.Fatalf("unexpected jsend status: %q", resp.Status)
	}
	if provider.translateCalls != 1 {
		t.Fatalf("expected one translate call, got %d", provider.translateCalls)
	}
	if provider.lastText != "Hello" || provider.lastTarget != "fr" || provider.lastSource != "en" {
		t.Fatalf("unexpected provider arguments: text=%q target=%q source=%q",
			provider.lastText, provider.lastTarget, provider.lastSource)
	}
	if !strings.Contains(rec.Body.String(), `"translated_text":"Bonjour"`) {
		t.Fatalf("expected translated text in body: %s", rec.Body.String())
	}
}

func TestHandleTranslateValidation(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{name: "google"}
	server := newTestServer(t, provider)

	cases := map[string]string{
		"missing target": `{"text":"Hello","source_lang":"en"}`,
		"blank text":     `{"text":"  ","target_lang":"fr","source_lang":"en"}`,
		"unknown field":  `{"text":"Hello","target_lang":"fr","source_lang":"en","extra":true}`,
		"truncated JSON": `[1,2,3`,
	}
	for name, body := range cases {
		c, rec := newRequestContext(http.MethodPost, "/api/v1/translate", body)
		if err := server.handleTranslate(c); err != nil {
			t.Fatalf("%s: handleTranslate: %v", name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", name, rec.Code, rec.Body.String())
		}
	}
	if provider.translateCalls != 0 {
		t.Fatalf("expected no translate calls, got %d", provider.translateCalls)
	}
}

func TestHandleTranslateMissingCredential(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{name: "google", err: translation.ErrMissingAPIKey}
	server := newTestServer(t, provider)

	c, rec := newRequestContext(http.MethodPost, "/api/v1/translate",
		`{"text":"Hello","target_lang":"fr","source_lang":"en"}`)
	if err := server.handleTranslate(c); err != nil {
		t.Fatalf("handleTranslate: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestHandleDetect(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{name: "google", detected: "fr"}
	server := newTestServer(t, provider)

	c, rec := newRequestContext(http.MethodPost, "/api/v1/detect", `{"text":"Bonjour"}`)
	if err := server.handleDetect(c); err != nil {
		t.Fatalf("handleDetect: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	if provider.lastText != "Bonjour" {
		t.Fatalf("unexpected detect text: %q", provider.lastText)
	}
	if !strings.Contains(rec.Body.String(), `"language":"fr"`) {
		t.Fatalf("expected detected language in body: %s", rec.Body.String())
	}
}

func TestHandleLanguages(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		name: "google",
		languages: &translation.LanguageList{
			Languages: []translation.Language{
				{Code: "en", Name: "English"},
				{Code: "fr", Name: "French"},
			},
			Names:   map[string]string{"en": "English", "fr": "French"},
			Locales: []string{"en", "fr"},
		},
	}
	server := newTestServer(t, provider)

	c, rec := newRequestContext(http.MethodGet, "/api/v1/languages?target=fr", "")
	if err := server.handleLanguages(c); err != nil {
		t.Fatalf("handleLanguages: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	if provider.lastTarget != "fr" {
		t.Fatalf("unexpected target: %q", provider.lastTarget)
	}
	if !strings.Contains(rec.Body.String(), `"name":"French"`) {
		t.Fatalf("expected language names in body: %s", rec.Body.String())
	}
}

func TestHandleLanguagesUnknownProvider(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{name: "google"}
	server := newTestServer(t, provider)

	c, rec := newRequestContext(http.MethodGet, "/api/v1/languages?provider=deepl", "")
	if err := server.handleLanguages(c); err != nil {
		t.Fatalf("handleLanguages: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
