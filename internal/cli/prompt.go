package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/tui"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

func newPromptCmd(a *App) *cobra.Command {
	var (
		output    string
		noConfirm bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the configuration form in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, ok := tui.ParseOutputFormat(output)
			if !ok {
				return fmt.Errorf("cli: unsupported output format %q", output)
			}

			stderr := cmd.ErrOrStderr()
			renderer, err := tui.New(
				tui.WithPromptDriver(a.driver),
				tui.WithOutputFormat(format),
				tui.WithOutput(stderr),
				tui.WithConfirm(!noConfirm),
			)
			if err != nil {
				return err
			}

			form := model.SaleForm()
			values, err := renderer.Collect(cmd.Context(), form, render.RenderOptions{})
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(stderr, "Aborted.")
				return nil
			}
			if err != nil {
				return err
			}

			ctrl := a.newController(form, tui.NewToastNotifier(stderr, tui.DefaultTheme()))
			ctrl.Load(values)
			if _, err := ctrl.Submit(cmd.Context()); err != nil {
				return reportInvalid(stderr, err)
			}

			payload, err := renderer.Encode(form, ctrl.Values())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(tui.OutputFormatJSON), "output format: json, yaml or pretty")
	cmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip the final confirmation")
	return cmd
}

// reportInvalid prints validation errors one per line and maps them to
// ErrInvalidValues. Other errors are returned unchanged.
func reportInvalid(w io.Writer, err error) error {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	for _, fe := range errs {
		fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message)
	}
	return ErrInvalidValues
}
