package email

// Config holds email service configuration.
// Postmark tokens are optional so development setups can fall back to DevSender.
// SenderEmail and SupportEmail establish the sender identity and reply-to address
// of every newsletter.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SenderName           string `env:"SENDER_NAME"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}

// HasPostmark reports whether both Postmark tokens are configured.
func (c Config) HasPostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}

// From formats the sender address with the optional display name.
func (c Config) From() string {
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return c.SenderName + " <" + c.SenderEmail + ">"
}
