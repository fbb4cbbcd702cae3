// Package logger builds slog loggers for the newsletter binaries and provides
// attribute helpers that keep key names consistent.
//
// New creates a *slog.Logger from functional options:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "newsletter"),
//	    logger.WithContextValue("run_id", campaign.RunIDKey{}),
//	)
//	log.InfoContext(ctx, "campaign sent",
//	    logger.CampaignID("spring-appeal"),
//	    logger.Count("sent", 120),
//	)
//
// Context extractors run on every log call, so values stored in the context by
// the caller (such as a campaign run id) appear in each record without passing
// them explicitly.
package logger
