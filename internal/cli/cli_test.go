package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/renderers/tui"
	"github.com/goliatone/go-tokensale/pkg/testsupport"
)

type scriptedDriver struct {
	inputs  []string
	confirm bool
	pos     int
	infos   []string
}

func (d *scriptedDriver) Input(_ context.Context, _ tui.InputConfig) (string, error) {
	if d.pos >= len(d.inputs) {
		return "", errors.New("no input scripted")
	}
	value := d.inputs[d.pos]
	d.pos++
	return value, nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

type result struct {
	stdout string
	stderr string
	logs   *observer.ObservedLogs
	err    error
}

func run(t *testing.T, driver tui.PromptDriver, args ...string) result {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	cmd := NewRootCmd(WithLogger(zap.New(core)), WithPromptDriver(driver))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(testsupport.Context())
	return result{stdout: stdout.String(), stderr: stderr.String(), logs: logs, err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validValuesYAML = `name: Example Token
symbol: EXT
decimals: 18
totalSupply: 1000000
rate: 1000
vestingPeriod: 30
softCap: 100
hardCap: 1000
`

func TestValidate_ValidFile(t *testing.T) {
	path := writeFile(t, "values.yaml", validValuesYAML)

	res := run(t, nil, "validate", path)
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, controller.DefaultToastTitle)
	assert.Contains(t, res.stdout, "Example Token (EXT)")
	assert.Contains(t, res.stdout, "Supply (base units): 1000000000000000000000000")
	assert.Contains(t, res.stdout, "Hard cap (wei):      1000000000000000000000")
	assert.Contains(t, res.stdout, "Tokens at hard cap:  1000000")

	entries := res.logs.FilterMessage("token sale configuration generated").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "sale")
}

func TestValidate_JSONFile(t *testing.T) {
	path := writeFile(t, "values.json", `{"name": "Example Token", "symbol": "EXT", "decimals": "6"}`)

	res := run(t, nil, "validate", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Decimals:            6")
	assert.Contains(t, res.stdout, "Total supply:        1000000")
}

func TestValidate_InvalidFile(t *testing.T) {
	path := writeFile(t, "values.yaml", `name: Example Token
symbol: ""
decimals: 19
rate: -5
`)

	res := run(t, nil, "validate", path)
	require.ErrorIs(t, res.err, ErrInvalidValues)

	assert.Equal(t, "symbol: Token symbol is required\n"+
		"decimals: Number must be less than or equal to 18\n"+
		"rate: Invalid\n", res.stderr)
	assert.Empty(t, res.stdout)
	assert.Zero(t, res.logs.Len())
}

func TestValidate_UnknownKeysAreReported(t *testing.T) {
	path := writeFile(t, "values.yaml", validValuesYAML+"owner: 0xabc\nchain: mainnet\n")

	res := run(t, nil, "validate", path)
	require.NoError(t, res.err)
	assert.Equal(t, "ignoring unknown field \"chain\"\nignoring unknown field \"owner\"\n", res.stderr)
}

func TestValidate_LargeIntegersKeepPrecision(t *testing.T) {
	maxUint256 := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	path := writeFile(t, "values.yaml", "name: Big\nsymbol: BIG\ntotalSupply: "+maxUint256+"\n")

	res := run(t, nil, "validate", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Total supply:        "+maxUint256)
	assert.Contains(t, res.stdout, "Supply (base units): exceeds uint256")
}

func TestValidate_NonScalarValue(t *testing.T) {
	path := writeFile(t, "values.yaml", "name:\n  - a\n  - b\n")

	res := run(t, nil, "validate", path)
	require.Error(t, res.err)
	assert.NotErrorIs(t, res.err, ErrInvalidValues)
	assert.Contains(t, res.err.Error(), `field "name": expected a scalar value`)
}

func TestValidate_CapOrderFromConfig(t *testing.T) {
	cfgPath := writeFile(t, "config.yml", "validation:\n  enforceCapOrder: true\n")
	path := writeFile(t, "values.yaml", `name: Example Token
symbol: EXT
softCap: 2000
hardCap: 1000
`)

	res := run(t, nil, "--config", cfgPath, "validate", path)
	require.ErrorIs(t, res.err, ErrInvalidValues)
	assert.Equal(t, "softCap: Soft cap must not exceed hard cap\n", res.stderr)
}

func TestValidate_MissingFile(t *testing.T) {
	res := run(t, nil, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, os.ErrNotExist))
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	path := writeFile(t, "values.yaml", validValuesYAML)

	res := run(t, nil, "--log-level", "loud", "validate", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "config:")
}

func TestPrompt_WritesValuesAndToast(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Example Token", "EXT", "18", "1000000", "1000", "30", "100", "1000"},
		confirm: true,
	}

	res := run(t, driver, "prompt")
	require.NoError(t, res.err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, testsupport.ValidSaleValues(), got)

	assert.Contains(t, res.stderr, controller.DefaultToastTitle)
	assert.Equal(t, 1, res.logs.FilterMessage("token sale configuration generated").Len())
}

func TestPrompt_RepromptsInvalidAnswer(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"", "Example Token", "EXT", "18", "1000000", "1000", "30", "100", "1000"},
		confirm: true,
	}

	res := run(t, driver, "prompt", "--output", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "name: Example Token")

	var sawError bool
	for _, msg := range driver.infos {
		if bytes.Contains([]byte(msg), []byte("Token name is required")) {
			sawError = true
		}
	}
	assert.True(t, sawError, "expected the required message before the re-prompt")
}

func TestPrompt_Aborted(t *testing.T) {
	driver := &scriptedDriver{
		inputs: []string{"Example Token", "EXT", "18", "1000000", "1000", "30", "100", "1000"},
	}

	res := run(t, driver, "prompt")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Aborted.")
	assert.Empty(t, res.stdout)
	assert.Zero(t, res.logs.Len())
}

func TestPrompt_UnknownOutputFormat(t *testing.T) {
	res := run(t, &scriptedDriver{}, "prompt", "--output", "xml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `unsupported output format "xml"`)
}

func TestRender_HTMLToStdout(t *testing.T) {
	res := run(t, nil, "render")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "<title>Token Sale Smart Contract Builder</title>")
	assert.Contains(t, res.stdout, "Generate Contract")
}

func TestRender_ToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "form.html")

	res := run(t, nil, "render", "--output", out)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Form written to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Advanced Settings")
}

func TestRender_TUIRenderer(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Example Token", "EXT", "18", "1000000", "1000", "30", "100", "1000"},
		confirm: true,
	}

	res := run(t, driver, "render", "--renderer", "tui")
	require.NoError(t, res.err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "EXT", got["symbol"])
}

func TestRender_UnknownRenderer(t *testing.T) {
	res := run(t, nil, "render", "--renderer", "react")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `renderer "react"`)
}
