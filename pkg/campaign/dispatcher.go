package campaign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/fundkit/pkg/email"
	"github.com/dmitrymomot/fundkit/pkg/logger"
	"github.com/dmitrymomot/fundkit/pkg/newsletter"
	"github.com/dmitrymomot/fundkit/pkg/slug"
)

// RunIDKey is the context key under which Send stores the id of the current run.
// Register it with logger.WithContextValue to tag every record of a run.
type RunIDKey struct{}

// Campaign is one newsletter mailing: a template plus the data shared by all recipients.
type Campaign struct {
	// ID defaults to a slug of the template id with a random suffix.
	ID       string
	Template newsletter.Template
	// Subject overrides Template.Subject when set. It may contain tokens.
	Subject string
	Data    newsletter.Data
}

// Recipient is one subscriber of a campaign.
// Data holds per-recipient tokens resolved after the campaign-level pass.
type Recipient struct {
	Email          string
	Name           string
	UnsubscribeURL string
	Data           newsletter.Data
}

func (r Recipient) tokens() newsletter.Data {
	base := newsletter.Data{
		"SUBSCRIBER_EMAIL": r.Email,
	}
	if r.Name != "" {
		base["SUBSCRIBER_NAME"] = r.Name
	}
	if r.UnsubscribeURL != "" {
		base["UNSUBSCRIBE_URL"] = r.UnsubscribeURL
	}
	return base.Merge(r.Data)
}

// Failure records a recipient whose message could not be delivered.
type Failure struct {
	Email string
	Err   error
}

// Report summarizes one Send call.
type Report struct {
	RunID    string
	Sent     int
	Failures []Failure
}

// Dispatcher renders campaigns and hands one message per recipient to an EmailSender.
type Dispatcher struct {
	sender      email.EmailSender
	logger      *slog.Logger
	concurrency int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithConcurrency limits how many messages are rendered and sent at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// NewDispatcher creates a Dispatcher sending through sender.
func NewDispatcher(sender email.EmailSender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender:      sender,
		logger:      logger.Discard(),
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With(logger.Component("campaign"))
	return d
}

// Send compiles the campaign template once with the campaign data, then
// personalizes and sends it to every recipient.
//
// Template errors abort the run before anything is sent. Delivery errors are
// collected per recipient; if any occur the returned error wraps
// ErrPartialFailure and the report lists the failed addresses.
func (d *Dispatcher) Send(ctx context.Context, c Campaign, recipients []Recipient) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	if len(recipients) == 0 {
		return report, ErrNoRecipients
	}

	html, err := newsletter.Generate(c.Template, c.Data)
	if err != nil {
		return report, errors.Join(ErrInvalidCampaign, err)
	}
	subject := c.Subject
	if subject == "" {
		subject = c.Template.Subject
	}
	subject = newsletter.SubstituteString(subject, c.Data)
	if strings.TrimSpace(subject) == "" {
		return report, fmt.Errorf("%w: subject is empty", ErrInvalidCampaign)
	}

	if c.ID == "" {
		c.ID = slug.Make(c.Template.ID, slug.MaxLength(48), slug.WithSuffix(6))
	}

	ctx = context.WithValue(ctx, RunIDKey{}, report.RunID)
	log := d.logger.With(logger.CampaignID(c.ID), logger.TemplateID(c.Template.ID))
	log.InfoContext(ctx, "campaign run started", logger.Count("recipients", len(recipients)))
	started := time.Now()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for _, r := range recipients {
		g.Go(func() error {
			err := d.deliver(gctx, c, html, subject, r, report.RunID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, Failure{Email: r.Email, Err: err})
				log.WarnContext(gctx, "delivery failed", logger.Recipient(r.Email), logger.Error(err))
				return nil
			}
			report.Sent++
			return nil
		})
	}
	_ = g.Wait()

	log.InfoContext(ctx, "campaign run finished",
		logger.Count("sent", report.Sent),
		logger.Count("failed", len(report.Failures)),
		logger.Duration(time.Since(started)),
	)

	if len(report.Failures) > 0 {
		return report, fmt.Errorf("%w: %d of %d messages failed", ErrPartialFailure, len(report.Failures), len(recipients))
	}
	return report, nil
}

func (d *Dispatcher) deliver(ctx context.Context, c Campaign, html, subject string, r Recipient, runID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := r.tokens()
	params := email.SendEmailParams{
		SendTo:   r.Email,
		Subject:  newsletter.SubstituteString(subject, data),
		BodyHTML: newsletter.Personalize(html, data),
		Tag:      c.Template.ID,
		Metadata: map[string]string{
			"campaign_id": c.ID,
			"run_id":      runID,
		},
	}
	if r.UnsubscribeURL != "" {
		params.Headers = map[string]string{
			"List-Unsubscribe":      "<" + r.UnsubscribeURL + ">",
			"List-Unsubscribe-Post": "List-Unsubscribe=One-Click",
		}
	}
	return d.sender.SendEmail(ctx, params)
}
