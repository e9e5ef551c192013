package marketplace

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

// MarketItem is one on-chain sale record. TokenId is nil or zero when the
// contract returned an empty slot.
type MarketItem struct {
	TokenId *big.Int
	Seller  domain.Address
	Owner   domain.Address
	Price   *big.Int
	Sold    bool
}

// HasTokenId reports whether the record names a real token.
func (m *MarketItem) HasTokenId() bool {
	return m.TokenId != nil && m.TokenId.Sign() > 0
}

// PendingTx is a submitted write. Wait blocks until it is mined.
type PendingTx interface {
	Hash() domain.TxHash
	// Wait returns the receipt, ErrTransactionFailed when the transaction
	// reverted, or the context error.
	Wait(c ctx.Ctx) (*types.Receipt, error)
}

type TokenURIReader interface {
	TokenURI(c ctx.Ctx, tokenId *big.Int) (string, error)
}

// Contract is a typed handle to the deployed marketplace.
type Contract interface {
	TokenURIReader

	FetchMarketItems(c ctx.Ctx) ([]MarketItem, error)
	// FetchMyNFTs calls from account, since the contract keys on msg.sender.
	FetchMyNFTs(c ctx.Ctx, account domain.Address) ([]MarketItem, error)
	FetchSingleNFT(c ctx.Ctx, tokenId *big.Int) (*MarketItem, error)
	GetListingPrice(c ctx.Ctx) (*big.Int, error)

	CreateToken(c ctx.Ctx, tokenURI string, price, fee *big.Int) (PendingTx, error)
	CreateMarketSale(c ctx.Ctx, tokenId, value *big.Int) (PendingTx, error)
	ResellToken(c ctx.Ctx, tokenId, price, fee *big.Int) (PendingTx, error)
}
