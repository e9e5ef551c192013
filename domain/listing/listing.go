package listing

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/marketplace"
)

// Listing joins one on-chain sale record with its off-chain metadata.
type Listing struct {
	TokenId     domain.TokenId `json:"tokenId"`
	Seller      domain.Address `json:"seller"`
	Owner       domain.Address `json:"owner"`
	Price       string         `json:"price"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	ImageUrl    string         `json:"imageUrl"`
}

type Assembler interface {
	// Assemble drops records without a token id and keeps the order of the
	// rest.
	Assemble(c ctx.Ctx, raws []marketplace.MarketItem, binding marketplace.TokenURIReader) ([]*Listing, error)
}
