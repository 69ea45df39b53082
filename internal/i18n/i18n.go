// Package i18n localizes API response messages based on the Accept-Language header.
package i18n

import (
	"encoding/json"
	"fmt"
	"strings"

	"locman/internal/i18n/locales"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle *i18n.Bundle
)

// Init initializes i18n.
func Init() error {
	bundle = i18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// Load supported language files
	languages := []string{"en-US", "ja-JP", "zh-CN"}
	for _, lang := range languages {
		if err := loadMessageFile(lang); err != nil {
			return fmt.Errorf("failed to load language file %s: %w", lang, err)
		}
	}

	return nil
}

// loadMessageFile loads a language file.
func loadMessageFile(lang string) error {
	messages := getMessages(lang)
	for id, msg := range messages {
		bundle.AddMessages(language.MustParse(lang), &i18n.Message{
			ID:    id,
			Other: msg,
		})
	}

	return nil
}

// GetLocalizer gets a localizer for the given Accept-Language header value.
func GetLocalizer(acceptLang string) *i18n.Localizer {
	langs := parseAcceptLanguage(acceptLang)

	if len(langs) == 0 {
		langs = []string{"en-US"}
	}

	return i18n.NewLocalizer(bundle, langs...)
}

// parseAcceptLanguage parses the Accept-Language header.
func parseAcceptLanguage(acceptLang string) []string {
	if acceptLang == "" {
		return nil
	}

	// Simple parsing, only take the first language
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(parts[0])
		// Remove quality factor (q=...)
		if idx := strings.Index(lang, ";"); idx > 0 {
			lang = lang[:idx]
		}

		lang = normalizeLanguageCode(lang)
		return []string{lang}
	}

	return nil
}

// normalizeLanguageCode normalizes language codes.
func normalizeLanguageCode(lang string) string {
	lang = strings.TrimSpace(lang)

	switch strings.ToLower(lang) {
	case "en", "en-us":
		return "en-US"
	case "ja", "ja-jp":
		return "ja-JP"
	case "zh", "zh-cn", "zh-hans":
		return "zh-CN"
	default:
		// Try to match prefix
		if strings.HasPrefix(strings.ToLower(lang), "en") {
			return "en-US"
		}
		if strings.HasPrefix(strings.ToLower(lang), "ja") {
			return "ja-JP"
		}
		if strings.HasPrefix(strings.ToLower(lang), "zh") {
			return "zh-CN"
		}
		return "en-US"
	}
}

// T translates a message.
func T(localizer *i18n.Localizer, msgID string, data ...map[string]any) string {
	config := &i18n.LocalizeConfig{
		MessageID: msgID,
	}

	if len(data) > 0 {
		config.TemplateData = data[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		// If translation fails, return message ID
		return msgID
	}

	return msg
}

// getMessages gets language messages.
func getMessages(lang string) map[string]string {
	switch lang {
	case "ja-JP":
		return locales.MessagesJaJP
	case "zh-CN":
		return locales.MessagesZhCN
	default:
		return locales.MessagesEnUS
	}
}
