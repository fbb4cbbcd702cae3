package campaign

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/fundkit/pkg/newsletter"
	"github.com/dmitrymomot/fundkit/pkg/sanitizer"
)

// Formatter turns raw fundraising figures into the display tokens newsletter
// templates expect.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a Formatter for the configured locale and currency symbol.
// An unparseable locale falls back to English.
func NewFormatter(cfg Config) Formatter {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{
		symbol:  cfg.CurrencySymbol,
		printer: message.NewPrinter(tag),
	}
}

// Amount formats a whole-unit amount with locale grouping, e.g. "$7,200".
func (f Formatter) Amount(n int64) string {
	return f.symbol + f.printer.Sprintf("%d", n)
}

// Progress returns RAISED_AMOUNT, GOAL_AMOUNT, REMAINING_AMOUNT and
// PROGRESS_PERCENTAGE for a story. Remaining never goes below zero and the
// percentage is kept within [0, 100].
func (f Formatter) Progress(raised, goal int64) newsletter.Data {
	raised = sanitizer.ClampMin(raised, 0)
	goal = sanitizer.ClampMin(goal, 0)

	return newsletter.Data{
		"RAISED_AMOUNT":       f.Amount(raised),
		"GOAL_AMOUNT":         f.Amount(goal),
		"REMAINING_AMOUNT":    f.Amount(sanitizer.ClampMin(goal-raised, 0)),
		"PROGRESS_PERCENTAGE": strconv.Itoa(sanitizer.Percentage(raised, goal)),
	}
}
