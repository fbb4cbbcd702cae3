package campaign

// Config holds campaign dispatch settings.
type Config struct {
	Concurrency    int    `env:"CAMPAIGN_CONCURRENCY" envDefault:"8"`
	CurrencySymbol string `env:"CAMPAIGN_CURRENCY_SYMBOL" envDefault:"$"`
	Locale         string `env:"CAMPAIGN_LOCALE" envDefault:"en"`
}
