package httpserver

import "time"

// Config holds listener settings for the preview server.
type Config struct {
	Addr            string        `env:"PREVIEW_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"PREVIEW_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"PREVIEW_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"PREVIEW_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"PREVIEW_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero values keep the defaults;
// opts are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
