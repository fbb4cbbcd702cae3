package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// TemplateID records the newsletter template under the key "template_id".
func TemplateID(id string) slog.Attr {
	return slog.String("template_id", id)
}

// ThemeID records the theme under the key "theme_id".
func ThemeID(id string) slog.Attr {
	return slog.String("theme_id", id)
}

// CampaignID records the campaign under the key "campaign_id".
func CampaignID(id string) slog.Attr {
	return slog.String("campaign_id", id)
}

// Recipient records a recipient address under the key "recipient".
func Recipient(email string) slog.Attr {
	return slog.String("recipient", email)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
