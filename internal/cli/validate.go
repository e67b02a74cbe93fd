package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/renderers/tui"
	"github.com/goliatone/go-tokensale/pkg/sale"
)

func newValidateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a YAML or JSON file of field values",
		Long: `Validate a YAML or JSON file mapping field names to raw values.

Fields missing from the file keep their default value. Field errors are
printed one per line and the command exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.SaleForm()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cli: read values: %w", err)
			}
			values, unknown, err := decodeValues(form, data)
			if err != nil {
				return fmt.Errorf("cli: %s: %w", args[0], err)
			}

			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
			for _, key := range unknown {
				fmt.Fprintf(stderr, "ignoring unknown field %q\n", key)
			}

			ctrl := a.newController(form, tui.NewToastNotifier(stdout, tui.DefaultTheme()))
			ctrl.Load(values)
			cfg, err := ctrl.Submit(cmd.Context())
			if err != nil {
				return reportInvalid(stderr, err)
			}
			return printSummary(stdout, cfg)
		},
	}
}

// decodeValues reads a mapping of field names to scalars. Scalars keep their
// source text so large integers are not rounded through float64.
func decodeValues(form model.FormModel, data []byte) (map[string]string, []string, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode values: %w", err)
	}

	values := make(map[string]string, len(doc))
	var unknown []string
	for key, node := range doc {
		if _, ok := form.Field(key); !ok {
			unknown = append(unknown, key)
			continue
		}
		if node.Kind != yaml.ScalarNode {
			return nil, nil, fmt.Errorf("field %q: expected a scalar value", key)
		}
		if node.ShortTag() == "!!null" {
			values[key] = ""
			continue
		}
		values[key] = node.Value
	}
	sort.Strings(unknown)
	return values, unknown, nil
}

func printSummary(w io.Writer, cfg sale.Configuration) error {
	summary, err := sale.Summarize(cfg)
	supply := "exceeds uint256"
	switch {
	case err == nil:
		supply = summary.SupplyBaseUnits.String()
	case !errors.Is(err, sale.ErrSupplyOverflow):
		return err
	}

	_, err = fmt.Fprintf(w, `%s (%s)
  Decimals:            %d
  Total supply:        %s
  Supply (base units): %s
  Rate:                %s tokens per ETH
  Vesting period:      %d days
  Soft cap (wei):      %s
  Hard cap (wei):      %s
  Tokens at hard cap:  %s
`,
		cfg.Name, cfg.Symbol,
		cfg.Decimals,
		cfg.TotalSupply,
		supply,
		cfg.Rate,
		cfg.VestingPeriod,
		summary.SoftCapWei,
		summary.HardCapWei,
		summary.TokensAtHardCap,
	)
	return err
}
