package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/fundkit/pkg/campaign"
	"github.com/dmitrymomot/fundkit/pkg/config"
	"github.com/dmitrymomot/fundkit/pkg/email"
	"github.com/dmitrymomot/fundkit/pkg/httpserver"
	"github.com/dmitrymomot/fundkit/pkg/logger"
	"github.com/dmitrymomot/fundkit/pkg/newsletter"
	"github.com/dmitrymomot/fundkit/pkg/preview"
)

const serviceName = "newsletter"

// appConfig is the process-wide configuration read from the environment.
type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	DevMailDir string `env:"DEV_MAIL_DIR" envDefault:"./tmp/mail"`
	Campaign   campaign.Config
}

var CLI struct {
	EnvFile []string `short:"e" help:"Additional .env files to load"`
	Verbose bool     `short:"v" help:"Enable debug logging"`

	List struct{} `cmd:"" help:"List available themes and templates"`

	Render struct {
		Template string `arg:"" optional:"" help:"Template id (defaults to the default template)"`
		Theme    string `short:"t" help:"Render with another theme"`
		Data     string `short:"d" help:"YAML file with placeholder values" type:"existingfile"`
		Raised   int64  `help:"Raised amount, fills the progress tokens"`
		Goal     int64  `help:"Goal amount, fills the progress tokens"`
		Output   string `short:"o" help:"Write HTML to this file instead of stdout"`
		BodyOnly bool   `help:"Render blocks without the document shell"`
	} `cmd:"" help:"Render a template to HTML"`

	Send struct {
		Template   string `arg:"" help:"Template id"`
		Recipients string `short:"r" required:"" help:"YAML file with the recipient list" type:"existingfile"`
		Theme      string `short:"t" help:"Send with another theme"`
		Data       string `short:"d" help:"YAML file with placeholder values" type:"existingfile"`
		Raised     int64  `help:"Raised amount, fills the progress tokens"`
		Goal       int64  `help:"Goal amount, fills the progress tokens"`
		Subject    string `short:"s" help:"Override the template subject"`
		CampaignID string `name:"campaign" help:"Campaign id recorded in message metadata"`
	} `cmd:"" help:"Send a template to a list of recipients"`

	Serve struct {
		Data string `short:"d" help:"YAML file overriding the preview sample data" type:"existingfile"`
	} `cmd:"" help:"Serve the catalogue and template previews over HTTP"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(serviceName),
		kong.Description("Compose and send themed newsletter emails."),
		kong.UsageOnError(),
	)

	var cfg appConfig
	if err := config.Load(&cfg, CLI.EnvFile...); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := newLogger(cfg, CLI.Verbose)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch kctx.Command() {
	case "list":
		err = runList(os.Stdout)
	case "render", "render <template>":
		err = runRender(cfg)
	case "send <template>":
		err = runSend(ctx, cfg, log)
	case "serve":
		err = runServe(ctx, log)
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		log.Error("command failed", slog.String("command", kctx.Command()), logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func newLogger(cfg appConfig, verbose bool) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("run_id", campaign.RunIDKey{}),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	if verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(opts...)
}

func runList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "THEME\tNAME\tCATEGORY\tWIDTH")
	for _, t := range newsletter.Themes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Category, t.ContainerWidth())
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TEMPLATE\tNAME\tTHEME\tBLOCKS\tDEFAULT")
	for _, t := range newsletter.Templates() {
		def := ""
		if t.IsDefault {
			def = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Name, t.Theme.ID, len(t.Blocks), def)
	}
	return tw.Flush()
}

func runRender(cfg appConfig) error {
	opts := CLI.Render
	tpl, err := selectTemplate(opts.Template, opts.Theme)
	if err != nil {
		return err
	}
	data, err := buildData(cfg, opts.Data, opts.Raised, opts.Goal)
	if err != nil {
		return err
	}

	render := newsletter.Generate
	if opts.BodyOnly {
		render = newsletter.Body
	}
	html, err := render(tpl, data)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = io.WriteString(os.Stdout, html)
		return err
	}
	return os.WriteFile(opts.Output, []byte(html), 0o644)
}

func runSend(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	opts := CLI.Send
	tpl, err := selectTemplate(opts.Template, opts.Theme)
	if err != nil {
		return err
	}
	data, err := buildData(cfg, opts.Data, opts.Raised, opts.Goal)
	if err != nil {
		return err
	}
	recipients, err := loadRecipients(opts.Recipients)
	if err != nil {
		return err
	}

	sender, err := newSender(cfg, log)
	if err != nil {
		return err
	}

	d := campaign.NewDispatcher(sender,
		campaign.WithLogger(log),
		campaign.WithConcurrency(cfg.Campaign.Concurrency),
	)
	report, err := d.Send(ctx, campaign.Campaign{
		ID:       opts.CampaignID,
		Template: tpl,
		Subject:  opts.Subject,
		Data:     data,
	}, recipients)

	for _, f := range report.Failures {
		log.Warn("not delivered", logger.Recipient(f.Email), logger.Error(f.Err))
	}
	if err != nil {
		return err
	}
	log.Info("campaign sent", slog.String("run_id", report.RunID), logger.Count("sent", report.Sent))
	return nil
}

// newSender uses Postmark when its tokens are configured and falls back to
// writing messages into DEV_MAIL_DIR.
func newSender(cfg appConfig, log *slog.Logger) (email.EmailSender, error) {
	var mailCfg email.Config
	if err := config.Load(&mailCfg); err != nil {
		return nil, err
	}
	if mailCfg.HasPostmark() {
		return email.NewPostmarkClient(mailCfg)
	}
	log.Info("postmark is not configured, writing messages to disk", slog.String("dir", cfg.DevMailDir))
	return email.NewDevSender(cfg.DevMailDir), nil
}

func runServe(ctx context.Context, log *slog.Logger) error {
	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	opts := []preview.Option{preview.WithLogger(log)}
	if CLI.Serve.Data != "" {
		data, err := loadData(CLI.Serve.Data)
		if err != nil {
			return err
		}
		opts = append(opts, preview.WithData(data))
	}

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, preview.NewHandler(opts...).Router())
}

// selectTemplate resolves a template id, falling back to the default template,
// and applies an optional theme override.
func selectTemplate(id, themeID string) (newsletter.Template, error) {
	var (
		tpl newsletter.Template
		err error
	)
	if id == "" {
		tpl, err = defaultTemplate()
	} else {
		tpl, err = newsletter.TemplateByID(id)
	}
	if err != nil {
		return newsletter.Template{}, err
	}

	if themeID != "" {
		theme, err := newsletter.ThemeByID(themeID)
		if err != nil {
			return newsletter.Template{}, err
		}
		tpl = tpl.WithTheme(theme)
	}
	return tpl, nil
}

func defaultTemplate() (newsletter.Template, error) {
	for _, t := range newsletter.Templates() {
		if t.IsDefault {
			return t, nil
		}
	}
	return newsletter.Template{}, errors.Join(newsletter.ErrTemplateNotFound, errors.New("no default template"))
}

// buildData merges the YAML data file with progress tokens computed from
// raised and goal. Values from the file win.
func buildData(cfg appConfig, path string, raised, goal int64) (newsletter.Data, error) {
	data := newsletter.Data{}
	if raised > 0 || goal > 0 {
		data = campaign.NewFormatter(cfg.Campaign).Progress(raised, goal)
	}
	if path == "" {
		return data, nil
	}
	fileData, err := loadData(path)
	if err != nil {
		return nil, err
	}
	return data.Merge(fileData), nil
}
