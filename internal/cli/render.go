package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tokensale/pkg/orchestrator"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/tui"
	"github.com/goliatone/go-tokensale/pkg/renderers/vanilla"
)

func newRenderCmd(a *App) *cobra.Command {
	var (
		rendererName string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configuration form",
		Long: `Render the configuration form with one of the registered renderers.

The vanilla renderer writes the HTML page. The tui renderer prompts in the
terminal and writes the collected values as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := a.registry(cmd)
			if err != nil {
				return err
			}

			gen := orchestrator.New(
				orchestrator.WithRegistry(registry),
				orchestrator.WithDefaultRenderer("vanilla"),
			)
			payload, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Renderer:      rendererName,
				RenderOptions: render.RenderOptions{Page: a.page()},
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(payload)
				return err
			}
			if err := os.WriteFile(output, payload, 0o644); err != nil {
				return fmt.Errorf("cli: write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&rendererName, "renderer", "vanilla", "renderer to use (vanilla, tui)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func (a *App) registry(cmd *cobra.Command) (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	term, err := tui.New(
		tui.WithPromptDriver(a.driver),
		tui.WithOutput(cmd.ErrOrStderr()),
	)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(term); err != nil {
		return nil, err
	}
	return registry, nil
}
