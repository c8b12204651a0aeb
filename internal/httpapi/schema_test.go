package httpapi

import (
	"strings"
	"testing"
)

func TestValidateTranslateRequest(t *testing.T) {
	t.Parallel()

	request, err := ValidateTranslateRequest([]byte(`{"text":"Hello","target_lang":"fr","source_lang":"en"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Text != "Hello" || request.TargetLang != "fr" || request.SourceLang != "en" {
		t.Fatalf("unexpected request: %+v", request)
	}
	if request.Provider != "" {
		t.Fatalf("expected empty provider, got %q", request.Provider)
	}
}

func TestValidateTranslateRequestRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty body":       ``,
		"trailing content": `{"text":"a","target_lang":"fr","source_lang":"en"}{}`,
		"missing source":   `{"text":"a","target_lang":"fr"}`,
		"empty text":       `{"text":"","target_lang":"fr","source_lang":"en"}`,
		"blank text":       `{"text":"   ","target_lang":"fr","source_lang":"en"}`,
		"unknown field":    `{"text":"a","target_lang":"fr","source_lang":"en","format":"html"}`,
		"wrong type":       `{"text":1,"target_lang":"fr","source_lang":"en"}`,
	}
	for name, body := range cases {
		if _, err := ValidateTranslateRequest([]byte(body)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidateTranslateRequestAllowsProvider(t *testing.T) {
	t.Parallel()

	request, err := ValidateTranslateRequest([]byte(`{"text":"Hello","target_lang":"fr","source_lang":"en","provider":"google"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Provider != "google" {
		t.Fatalf("unexpected provider: %q", request.Provider)
	}

	if _, err := ValidateTranslateRequest([]byte(strings.Repeat(" ", 4))); err == nil {
		t.Fatalf("expected error for blank body")
	}
}
