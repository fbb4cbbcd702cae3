// Package campaign delivers newsletter templates to a list of subscribers.
//
// A Dispatcher compiles the campaign template once with the shared campaign
// data, then fills the per-recipient tokens (SUBSCRIBER_NAME, SUBSCRIBER_EMAIL,
// UNSUBSCRIBE_URL and any Recipient.Data entries) into a copy for every
// subscriber and hands it to an email.EmailSender. Sends run concurrently up to
// the configured limit.
//
//	d := campaign.NewDispatcher(sender, campaign.WithLogger(log), campaign.WithConcurrency(cfg.Concurrency))
//	report, err := d.Send(ctx, campaign.Campaign{
//	    ID:       "spring-update",
//	    Template: tpl,
//	    Data:     data,
//	}, recipients)
//	if errors.Is(err, campaign.ErrPartialFailure) {
//	    for _, f := range report.Failures { ... }
//	}
//
// Formatter produces the progress tokens (RAISED_AMOUNT, GOAL_AMOUNT,
// REMAINING_AMOUNT, PROGRESS_PERCENTAGE) from raw figures using locale-aware
// digit grouping.
package campaign
