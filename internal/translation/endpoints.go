package translation

import (
	"net/http"
	"net/url"
	"strings"

	"horse.fit/translate/internal/language"
)

const (
	// DefaultBaseURL points at the hosted translation service.
	DefaultBaseURL = "https://translation.googleapis.com"

	languagesPath = "/language/translate/v2/languages"
	detectPath    = "/language/translate/v2/detect"
	translatePath = "/language/translate/v2"

	// defaultNamesTarget localizes language names when the caller gives
	// no locale of their own.
	defaultNamesTarget = "en"
)

// endpoint is a fully resolved request descriptor. Resolving one performs
// no I/O and cannot fail.
type endpoint struct {
	method string
	url    string
}

type languagesParams struct {
	// Target is the locale the returned language names are localized in.
	Target string
}

type detectParams struct {
	// Text may be empty; the remote service decides whether to accept it.
	Text string
}

type translateParams struct {
	Text         string
	TargetLocale string
	SourceLocale string
}

func languagesEndpoint(baseURL, apiKey string, p languagesParams) endpoint {
	target := strings.TrimSpace(p.Target)
	if target == "" {
		target = defaultNamesTarget
	}

	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("model", "base")
	query.Set("target", target)
	return endpoint{
		method: http.MethodGet,
		url:    resolveURL(baseURL, languagesPath, query),
	}
}

func detectEndpoint(baseURL, apiKey string, p detectParams) endpoint {
	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("q", p.Text)
	return endpoint{
		method: http.MethodGet,
		url:    resolveURL(baseURL, detectPath, query),
	}
}

func translateEndpoint(baseURL, apiKey string, p translateParams) endpoint {
	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("q", p.Text)
	query.Set("target", language.APICode(p.TargetLocale))
	query.Set("source", language.APICode(p.SourceLocale))
	query.Set("format", "text")
	return endpoint{
		method: http.MethodPost,
		url:    resolveURL(baseURL, translatePath, query),
	}
}

func resolveURL(baseURL, path string, query url.Values) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + path + "?" + query.Encode()
}
