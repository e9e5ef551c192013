// Package unit converts between on-chain base units and the decimal display
// strings shown to users.
package unit

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/domain"
)

// EtherDecimals is the exponent between wei and ether.
const EtherDecimals = 18

// ToDisplay formats a wei amount in ether, e.g. 1000000000000000 -> "0.001".
// nil formats as "0".
func ToDisplay(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals).String()
}

// FromDisplay parses an ether display string back into wei.
func FromDisplay(display string) (*big.Int, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return nil, xerrors.Errorf("%q: %w", display, domain.ErrInvalidNumberFormat)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("negative price %q: %w", display, domain.ErrInvalidNumberFormat)
	}
	wei := d.Shift(EtherDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, xerrors.Errorf("%q is finer than 1 wei: %w", display, domain.ErrInvalidNumberFormat)
	}
	return wei.BigInt(), nil
}
