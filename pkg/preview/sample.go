package preview

import (
	"github.com/dmitrymomot/fundkit/pkg/campaign"
	"github.com/dmitrymomot/fundkit/pkg/newsletter"
)

// SampleData returns placeholder values that exercise every token used by the
// built-in templates.
func SampleData() newsletter.Data {
	f := campaign.NewFormatter(campaign.Config{CurrencySymbol: "$", Locale: "en"})
	return newsletter.Data{
		"STORY_TITLE":          "Clean Water for Kisumu",
		"STORY_SUMMARY":        "A new well will give 400 families safe drinking water within walking distance.",
		"STORY_IMAGE":          "https://images.example.org/stories/kisumu-well.jpg",
		"STORY_URL":            "https://example.org/stories/kisumu-well",
		"CUSTOM_MESSAGE":       "Drilling starts next month. Thank you for standing with the community.",
		"DONATION_URL":         "https://example.org/donate/kisumu-well",
		"ORGANIZATION_NAME":    "Water For All",
		"ORGANIZATION_WEBSITE": "https://example.org",
		"SUBSCRIBER_NAME":      "Sam",
		"SUBSCRIBER_EMAIL":     "sam@example.com",
		"UNSUBSCRIBE_URL":      "https://example.org/unsubscribe/preview",
		"MONTH":                "October",
	}.Merge(f.Progress(7200, 10000))
}
