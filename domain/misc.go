package domain

import (
	"math/big"
	"strings"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the decimal string form of an on-chain uint256 token id.
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// Big parses the id. ok is false for non-decimal input.
func (i TokenId) Big() (*big.Int, bool) {
	return new(big.Int).SetString(i.String(), 10)
}

// TokenIdFromBig returns the empty id for nil.
func TokenIdFromBig(b *big.Int) TokenId {
	if b == nil {
		return ""
	}
	return TokenId(b.String())
}

type TxHash string
