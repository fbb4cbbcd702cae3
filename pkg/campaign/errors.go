package campaign

import "errors"

var (
	ErrNoRecipients    = errors.New("campaign.errors.no_recipients")
	ErrInvalidCampaign = errors.New("campaign.errors.invalid_campaign")
	ErrPartialFailure  = errors.New("campaign.errors.partial_failure")
)
