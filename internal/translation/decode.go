package translation

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"horse.fit/translate/internal/language"
)

// Response envelopes for the v2 wire format. Every payload sits under a
// top-level "data" object; the remote field name for a language code is
// "language".

type languagesResponse struct {
	Data struct {
		Languages []struct {
			Language string `json:"language"`
			Name     string `json:"name"`
		} `json:"languages"`
	} `json:"data"`
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language string `json:"language"`
		} `json:"detections"`
	} `json:"data"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// decodeLanguages converts a list-languages body into a LanguageList.
// A body that does not match the expected shape degrades to an empty
// list; the failure is visible only on the diagnostic log channel.
func decodeLanguages(body []byte, logger zerolog.Logger) *LanguageList {
	var parsed languagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.Warn().Err(err).Msg("decode languages response failed")
		return emptyLanguageList()
	}

	records := parsed.Data.Languages
	list := &LanguageList{
		Languages: make([]Language, 0, len(records)),
		Names:     make(map[string]string, len(records)),
		Locales:   make([]string, 0, len(records)),
	}
	for _, record := range records {
		list.Languages = append(list.Languages, Language{
			Code: record.Language,
			Name: record.Name,
		})
		// Duplicate codes are not expected but not rejected either; the
		// last one wins.
		list.Names[record.Language] = record.Name
		list.Locales = append(list.Locales, localeIdentifier(record.Language))
	}
	return list
}

// decodeDetection returns the first candidate of the first detection
// group, or an empty string when that path is absent or the body is
// unparseable.
func decodeDetection(body []byte, logger zerolog.Logger) string {
	var parsed detectResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.Warn().Err(err).Msg("decode detect response failed")
		return ""
	}

	groups := parsed.Data.Detections
	if len(groups) == 0 || len(groups[0]) == 0 {
		return ""
	}
	return groups[0][0].Language
}

// decodeTranslation returns the first translation record's text, or an
// empty string when the record is absent or the body is unparseable.
func decodeTranslation(body []byte, logger zerolog.Logger) string {
	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.Warn().Err(err).Msg("decode translate response failed")
		return ""
	}

	records := parsed.Data.Translations
	if len(records) == 0 {
		return ""
	}
	return records[0].TranslatedText
}

func emptyLanguageList() *LanguageList {
	return &LanguageList{
		Languages: []Language{},
		Names:     map[string]string{},
		Locales:   []string{},
	}
}

func localeIdentifier(code string) string {
	if tag := language.NormalizeTag(code); tag != "" {
		return tag
	}
	return code
}
