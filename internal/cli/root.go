// Package cli holds the cobra commands of the tokensale binary.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tokensale/internal/config"
	"github.com/goliatone/go-tokensale/internal/logger"
	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/tui"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

// ErrInvalidValues is returned after the field errors of a rejected
// submission have been printed.
var ErrInvalidValues = errors.New("cli: invalid values")

var Version = "dev"

type Option func(*App)

// WithLogger replaces the logger built from configuration.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithPromptDriver replaces the survey prompts used by `prompt` and the tui
// renderer.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(a *App) {
		a.driver = driver
	}
}

// App carries the state shared by every command once the root pre-run has
// loaded configuration.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	ownsLogger bool
	driver     tui.PromptDriver

	configFile string
	logLevel   string
}

func NewRootCmd(options ...Option) *cobra.Command {
	a := &App{}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "tokensale",
		Short: "Token sale contract configuration builder",
		Long: `Collect and validate the configuration of an ERC20 token sale contract.

  serve     serve the configuration form over HTTP
  prompt    fill in the form interactively in the terminal
  validate  check a YAML or JSON file of field values
  render    write the static HTML form`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file merged over the defaults (or $TOKENSALE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newPromptCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))

	return rootCmd
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	opts := config.Options{File: a.configFile}
	if cmd.Flags().Changed("log-level") {
		opts.Overrides = map[string]any{"logging.level": a.logLevel}
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		l, err := logger.New(cfg.Logging.Logger())
		if err != nil {
			return fmt.Errorf("cli: build logger: %w", err)
		}
		a.logger = l
		a.ownsLogger = true
	}
	return nil
}

func (a *App) teardown(*cobra.Command, []string) error {
	if a.ownsLogger && a.logger != nil {
		// stderr returns EINVAL on sync for some terminals
		_ = a.logger.Sync()
	}
	return nil
}

func (a *App) validator() *validation.Validator {
	if a.cfg.Validation.EnforceCapOrder {
		return validation.New(validation.WithCapOrder(model.FieldSoftCap, model.FieldHardCap))
	}
	return validation.New()
}

func (a *App) toast() controller.Toast {
	n := a.cfg.Notification
	return controller.Toast{
		Title:       n.Title,
		Description: n.Description,
		Duration:    n.Duration,
	}
}

func (a *App) page() render.PageOptions {
	p := a.cfg.Page
	return render.PageOptions{
		Title:       p.Title,
		Heading:     p.Heading,
		Description: p.Description,
	}
}

func (a *App) newController(form model.FormModel, notifier controller.Notifier) *controller.Controller {
	return controller.New(form,
		controller.WithNotifier(notifier),
		controller.WithSink(controller.NewLogSink(a.logger)),
		controller.WithValidator(a.validator()),
		controller.WithToast(a.toast()),
		controller.WithLogger(a.logger),
	)
}
