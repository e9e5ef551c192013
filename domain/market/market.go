package market

import (
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/flow"
	"github.com/x-xyz/nftmarket/domain/listing"
)

// Relation is how the viewer stands to a listing. It decides which action
// the detail page offers.
type Relation string

const (
	RelationOwner  Relation = "owner"
	RelationSeller Relation = "seller"
	RelationBuyer  Relation = "buyer"
)

type Action string

const (
	ActionResell       Action = "resell"
	ActionSellerNotice Action = "seller-notice"
	ActionBuy          Action = "buy"
)

// RelationOf checks ownership before sellership, so an owner who also
// listed the item gets the resell form. A nil viewer is a buyer.
func RelationOf(viewer *domain.Address, l *listing.Listing) Relation {
	if viewer == nil {
		return RelationBuyer
	}
	if viewer.Equals(l.Owner) {
		return RelationOwner
	}
	if viewer.Equals(l.Seller) {
		return RelationSeller
	}
	return RelationBuyer
}

func (r Relation) Action() Action {
	switch r {
	case RelationOwner:
		return ActionResell
	case RelationSeller:
		return ActionSellerNotice
	}
	return ActionBuy
}

type Detail struct {
	Listing  *listing.Listing `json:"listing"`
	Relation Relation         `json:"relation"`
	Action   Action           `json:"action"`
}

type MintForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
	Price       string `form:"price" validate:"required,price"`
	Image       []byte `form:"-" validate:"required"`
	Filename    string `form:"-"`
}

type UseCase interface {
	Browse(c ctx.Ctx) ([]*listing.Listing, error)
	MyItems(c ctx.Ctx) ([]*listing.Listing, error)
	Detail(c ctx.Ctx, tokenId domain.TokenId) (*Detail, error)

	Buy(c ctx.Ctx, tokenId domain.TokenId) (*flow.Flow, error)
	Resell(c ctx.Ctx, tokenId domain.TokenId, price string) (*flow.Flow, error)
	Mint(c ctx.Ctx, form MintForm) (*flow.Flow, error)
}

// Redirects appended after a successful write. Informational only.
const (
	RedirectCreated = "/?created=successfully-"
	RedirectBought  = "/my-nfts?bought=successfully-"
	RedirectRelist  = "/?relist=successfully"
)

// Announcement describes a finished write worth telling a community channel
// about.
type Announcement struct {
	Kind     flow.Kind
	TokenId  domain.TokenId
	Name     string
	Price    string
	ImageUrl string
	Account  domain.Address
	TxHash   domain.TxHash
}

type Announcer interface {
	Announce(c ctx.Ctx, a Announcement) error
}
