package sale

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap/zapcore"
)

// Configuration is the validated token sale configuration. Amounts are kept
// as arbitrary precision integers bounded to uint256 by validation.
type Configuration struct {
	Name          string   `json:"name" yaml:"name" mapstructure:"name"`
	Symbol        string   `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	Decimals      uint8    `json:"decimals" yaml:"decimals" mapstructure:"decimals"`
	TotalSupply   *big.Int `json:"totalSupply" yaml:"totalSupply" mapstructure:"totalSupply"`
	Rate          *big.Int `json:"rate" yaml:"rate" mapstructure:"rate"`
	VestingPeriod uint64   `json:"vestingPeriod" yaml:"vestingPeriod" mapstructure:"vestingPeriod"`
	SoftCap       *big.Int `json:"softCap" yaml:"softCap" mapstructure:"softCap"`
	HardCap       *big.Int `json:"hardCap" yaml:"hardCap" mapstructure:"hardCap"`
}

// Decode converts the coerced values produced by validation into a
// Configuration. Integer values arrive as *big.Int and are narrowed to the
// fixed-width fields; narrowing fails instead of truncating.
func Decode(values map[string]any) (Configuration, error) {
	var cfg Configuration
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  bigIntHook,
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return Configuration{}, fmt.Errorf("sale: configure decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return Configuration{}, fmt.Errorf("sale: decode configuration: %w", err)
	}
	return cfg, nil
}

func bigIntHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	value, ok := data.(*big.Int)
	if !ok || value == nil {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Uint8:
		if !value.IsUint64() || value.Uint64() > 255 {
			return nil, fmt.Errorf("value %s overflows uint8", value)
		}
		return uint8(value.Uint64()), nil
	case reflect.Uint64:
		if !value.IsUint64() {
			return nil, fmt.Errorf("value %s overflows uint64", value)
		}
		return value.Uint64(), nil
	}
	return data, nil
}

// MarshalLogObject renders the configuration as structured log fields.
func (c Configuration) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", c.Name)
	enc.AddString("symbol", c.Symbol)
	enc.AddUint8("decimals", c.Decimals)
	enc.AddString("totalSupply", bigString(c.TotalSupply))
	enc.AddString("rate", bigString(c.Rate))
	enc.AddUint64("vestingPeriod", c.VestingPeriod)
	enc.AddString("softCap", bigString(c.SoftCap))
	enc.AddString("hardCap", bigString(c.HardCap))
	return nil
}

// Values returns the configuration as raw form values, the inverse of
// validation followed by Decode.
func (c Configuration) Values() map[string]string {
	return map[string]string{
		"name":          c.Name,
		"symbol":        c.Symbol,
		"decimals":      fmt.Sprint(c.Decimals),
		"totalSupply":   bigString(c.TotalSupply),
		"rate":          bigString(c.Rate),
		"vestingPeriod": fmt.Sprint(c.VestingPeriod),
		"softCap":       bigString(c.SoftCap),
		"hardCap":       bigString(c.HardCap),
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
