package event

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmarket/domain"
)

// Kind enumerates the marketplace events the service reacts to.
type Kind int

const (
	KindMarketItemCreated Kind = iota + 1
	KindTransfer
)

func (k Kind) String() string {
	switch k {
	case KindMarketItemCreated:
		return "MarketItemCreated"
	case KindTransfer:
		return "Transfer"
	}
	return "Unknown"
}

type MarketItemCreated struct {
	TokenId *big.Int
	Seller  domain.Address
	Owner   domain.Address
	Price   *big.Int
	Sold    bool
}

type Transfer struct {
	From    domain.Address
	To      domain.Address
	TokenId *big.Int
}

// Event is a decoded log. Exactly one of the typed records is set, matching
// Kind.
type Event struct {
	Kind     Kind
	LogIndex uint

	MarketItemCreated *MarketItemCreated
	Transfer          *Transfer
}

type Resolver interface {
	// Extract returns the first log of the receipt decoding to kind. Logs
	// that do not decode are skipped. A nil receipt yields false.
	Extract(receipt *types.Receipt, kind Kind) (*Event, bool)
}
