package sale

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/params"
)

// ErrSupplyOverflow is returned when the total supply expressed in base units
// does not fit in a uint256 token balance.
var ErrSupplyOverflow = errors.New("sale: total supply in base units exceeds uint256")

// Summary holds values derived from a Configuration for display. Caps are
// denominated in wei assuming the native currency has 18 decimals.
type Summary struct {
	SupplyBaseUnits *big.Int `json:"supplyBaseUnits" yaml:"supplyBaseUnits"`
	SoftCapWei      *big.Int `json:"softCapWei" yaml:"softCapWei"`
	HardCapWei      *big.Int `json:"hardCapWei" yaml:"hardCapWei"`
	TokensAtHardCap *big.Int `json:"tokensAtHardCap" yaml:"tokensAtHardCap"`
}

// Summarize derives the base-unit supply and wei-denominated caps. The caps
// are always filled in; ErrSupplyOverflow only reports on the supply.
func Summarize(cfg Configuration) (Summary, error) {
	ether := big.NewInt(params.Ether)

	summary := Summary{
		SoftCapWei:      new(big.Int).Mul(orZero(cfg.SoftCap), ether),
		HardCapWei:      new(big.Int).Mul(orZero(cfg.HardCap), ether),
		TokensAtHardCap: new(big.Int).Mul(orZero(cfg.HardCap), orZero(cfg.Rate)),
	}

	supply := new(big.Int).Mul(orZero(cfg.TotalSupply), math.BigPow(10, int64(cfg.Decimals)))
	if supply.Cmp(math.MaxBig256) > 0 {
		return summary, ErrSupplyOverflow
	}
	summary.SupplyBaseUnits = supply
	return summary, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
