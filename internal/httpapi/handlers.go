package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"horse.fit/translate/internal/translation"
)

type detectRequest struct {
	// Text may be blank; the remote service decides whether to accept it.
	Text     string `json:"text"`
	Provider string `json:"provider,omitempty"`
}

type detectResponse struct {
	Language string `json:"language"`
	Provider string `json:"provider"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	TargetLang     string `json:"target_lang"`
	SourceLang     string `json:"source_lang"`
	Provider       string `json:"provider"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service":   "translate",
		"providers": s.registry.ProviderNames(),
		"time":      time.Now().UTC(),
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	provider, err := s.registry.Provider(c.QueryParam("provider"))
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	}

	list, err := provider.Languages(c.Request().Context(), c.QueryParam("target"))
	if err != nil {
		return s.providerError(c, "languages", err)
	}
	return success(c, list)
}

func (s *Server) handleDetect(c echo.Context) error {
	var request detectRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&request); err != nil {
		return failValidation(c, map[string]string{"body": "request body must be a JSON object"})
	}

	provider, err := s.registry.Provider(request.Provider)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	}

	detected, err := provider.Detect(c.Request().Context(), request.Text)
	if err != nil {
		return s.providerError(c, "detect", err)
	}
	return success(c, detectResponse{
		Language: detected,
		Provider: provider.Name(),
	})
}

func (s *Server) handleTranslate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return failValidation(c, map[string]string{"body": "failed to read request body"})
	}

	request, err := ValidateTranslateRequest(body)
	if err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}

	provider, err := s.registry.Provider(request.Provider)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	}

	translated, err := provider.Translate(c.Request().Context(), request.Text, request.TargetLang, request.SourceLang)
	if err != nil {
		return s.providerError(c, "translate", err)
	}
	return success(c, translateResponse{
		TranslatedText: translated,
		TargetLang:     request.TargetLang,
		SourceLang:     request.SourceLang,
		Provider:       provider.Name(),
	})
}

// providerError maps binding failures onto the API surface: a missing
// credential is a 503, everything else from the provider is a 502.
func (s *Server) providerError(c echo.Context, operation string, err error) error {
	if errors.Is(err, translation.ErrMissingAPIKey) {
		return fail(c, http.StatusServiceUnavailable, "Translation credential is not configured", nil)
	}

	s.logger.Error().Err(err).Str("operation", operation).Msg("translation operation failed")
	return fail(c, http.StatusBadGateway, "Translation service request failed", nil)
}
