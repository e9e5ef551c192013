package usecase

import (
	"bytes"
	"math/big"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/unit"
	bValidator "github.com/x-xyz/nftmarket/base/validator"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/appstate"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/domain/flow"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/market"
	"github.com/x-xyz/nftmarket/domain/marketplace"
)

type MarketUseCaseCfg struct {
	Contract  marketplace.Contract
	Assembler listing.Assembler
	Gateway   domain.MetadataGateway
	Resolver  event.Resolver
	Store     appstate.Store
	Flows     flow.Registry
	// Announcer is optional.
	Announcer market.Announcer
	Validate  *validator.Validate
}

type impl struct {
	contract  marketplace.Contract
	assembler listing.Assembler
	gateway   domain.MetadataGateway
	resolver  event.Resolver
	store     appstate.Store
	flows     flow.Registry
	announcer market.Announcer
	validate  *validator.Validate
}

func New(cfg *MarketUseCaseCfg) market.UseCase {
	v := cfg.Validate
	if v == nil {
		v = bValidator.New()
	}
	return &impl{
		contract:  cfg.Contract,
		assembler: cfg.Assembler,
		gateway:   cfg.Gateway,
		resolver:  cfg.Resolver,
		store:     cfg.Store,
		flows:     cfg.Flows,
		announcer: cfg.Announcer,
		validate:  v,
	}
}

func (im *impl) Browse(c ctx.Ctx) ([]*listing.Listing, error) {
	raws, err := im.contract.FetchMarketItems(c)
	if err != nil {
		c.WithField("err", err).Error("contract.FetchMarketItems failed")
		return nil, err
	}
	listings, err := im.assembler.Assemble(c, raws, im.contract)
	if err != nil {
		c.WithField("err", err).Error("assembler.Assemble failed")
		return nil, err
	}
	im.store.ReplaceListings(listings)
	return listings, nil
}

func (im *impl) MyItems(c ctx.Ctx) ([]*listing.Listing, error) {
	viewer, err := im.viewer()
	if err != nil {
		return nil, err
	}
	raws, err := im.contract.FetchMyNFTs(c, viewer)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "account": viewer}).Error("contract.FetchMyNFTs failed")
		return nil, err
	}
	listings, err := im.assembler.Assemble(c, raws, im.contract)
	if err != nil {
		c.WithField("err", err).Error("assembler.Assemble failed")
		return nil, err
	}
	im.store.ReplaceListings(listings)
	return listings, nil
}

func (im *impl) Detail(c ctx.Ctx, tokenId domain.TokenId) (*market.Detail, error) {
	raw, err := im.fetchOne(c, tokenId)
	if err != nil {
		return nil, err
	}
	listings, err := im.assembler.Assemble(c, []marketplace.MarketItem{*raw}, im.contract)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Error("assembler.Assemble failed")
		return nil, err
	}
	if len(listings) == 0 {
		return nil, xerrors.Errorf("token %s: %w", tokenId, domain.ErrNotFound)
	}

	l := listings[0]
	rel := market.RelationOf(im.store.Connection().CurrentAddress, l)
	return &market.Detail{
		Listing:  l,
		Relation: rel,
		Action:   rel.Action(),
	}, nil
}

func (im *impl) Buy(c ctx.Ctx, tokenId domain.TokenId) (*flow.Flow, error) {
	viewer, err := im.viewer()
	if err != nil {
		return nil, err
	}
	raw, err := im.fetchOne(c, tokenId)
	if err != nil {
		return nil, err
	}
	if rel := relationToRaw(viewer, raw); rel != market.RelationBuyer {
		return nil, xerrors.Errorf("%s of token %s cannot buy: %w", rel, tokenId, domain.ErrActionNotOffered)
	}

	return im.flows.Start(c, flow.KindBuy, itemKey(tokenId), func(fc ctx.Ctx, p flow.Progress) (*flow.Result, error) {
		tx, err := im.contract.CreateMarketSale(fc, raw.TokenId, raw.Price)
		if err != nil {
			return nil, err
		}
		p.Confirming(tx.Hash())
		if _, err := tx.Wait(fc); err != nil {
			return nil, err
		}

		im.store.RemoveListing(tokenId)
		im.announce(fc, market.Announcement{
			Kind:    flow.KindBuy,
			TokenId: tokenId,
			Price:   unit.ToDisplay(raw.Price),
			Account: viewer,
			TxHash:  tx.Hash(),
		})
		return &flow.Result{
			TokenId:  tokenId,
			Redirect: market.RedirectBought + tokenId.String(),
		}, nil
	})
}

func (im *impl) Resell(c ctx.Ctx, tokenId domain.TokenId, price string) (*flow.Flow, error) {
	viewer, err := im.viewer()
	if err != nil {
		return nil, err
	}
	wei, err := parsePrice(price)
	if err != nil {
		return nil, err
	}
	raw, err := im.fetchOne(c, tokenId)
	if err != nil {
		return nil, err
	}
	if rel := relationToRaw(viewer, raw); rel != market.RelationOwner {
		return nil, xerrors.Errorf("%s of token %s cannot resell: %w", rel, tokenId, domain.ErrActionNotOffered)
	}

	return im.flows.Start(c, flow.KindResell, itemKey(tokenId), func(fc ctx.Ctx, p flow.Progress) (*flow.Result, error) {
		fee, err := im.contract.GetListingPrice(fc)
		if err != nil {
			return nil, err
		}
		tx, err := im.contract.ResellToken(fc, raw.TokenId, wei, fee)
		if err != nil {
			return nil, err
		}
		p.Confirming(tx.Hash())
		if _, err := tx.Wait(fc); err != nil {
			return nil, err
		}

		im.announce(fc, market.Announcement{
			Kind:    flow.KindResell,
			TokenId: tokenId,
			Price:   unit.ToDisplay(wei),
			Account: viewer,
			TxHash:  tx.Hash(),
		})
		return &flow.Result{
			TokenId:  tokenId,
			Redirect: market.RedirectRelist,
		}, nil
	})
}

// Mint uploads the image, then the metadata document pointing at it, then
// lists the token. A failing step stops the ones after it; pinned content is
// not unpinned.
func (im *impl) Mint(c ctx.Ctx, form market.MintForm) (*flow.Flow, error) {
	viewer, err := im.viewer()
	if err != nil {
		return nil, err
	}
	if err := im.validate.Struct(form); err != nil {
		return nil, xerrors.Errorf("%s: %w", err.Error(), domain.ErrBadParamInput)
	}
	if mt := mimetype.Detect(form.Image); !strings.HasPrefix(mt.String(), "image/") {
		return nil, xerrors.Errorf("asset is %s, not an image: %w", mt.String(), domain.ErrBadParamInput)
	}
	wei, err := parsePrice(form.Price)
	if err != nil {
		return nil, err
	}

	return im.flows.Start(c, flow.KindMint, mintKey(viewer), func(fc ctx.Ctx, p flow.Progress) (*flow.Result, error) {
		assetCid, err := im.gateway.UploadAsset(fc, bytes.NewReader(form.Image), form.Filename)
		if err != nil {
			return nil, err
		}
		metaCid, err := im.gateway.UploadMetadata(fc, domain.MetadataDocument{
			Name:        form.Name,
			Description: form.Description,
			Price:       form.Price,
			Image:       assetCid,
		})
		if err != nil {
			return nil, err
		}
		fee, err := im.contract.GetListingPrice(fc)
		if err != nil {
			return nil, err
		}
		tx, err := im.contract.CreateToken(fc, metaCid, wei, fee)
		if err != nil {
			return nil, err
		}
		p.Confirming(tx.Hash())
		receipt, err := tx.Wait(fc)
		if err != nil {
			return nil, err
		}

		ev, ok := im.resolver.Extract(receipt, event.KindMarketItemCreated)
		if !ok || ev.MarketItemCreated == nil || ev.MarketItemCreated.TokenId == nil {
			fc.WithField("txHash", tx.Hash()).Error("MarketItemCreated missing from receipt")
			return nil, xerrors.Errorf("tx %s: %w", tx.Hash(), domain.ErrEventNotFound)
		}
		tokenId := domain.TokenIdFromBig(ev.MarketItemCreated.TokenId)

		im.announce(fc, market.Announcement{
			Kind:     flow.KindMint,
			TokenId:  tokenId,
			Name:     form.Name,
			Price:    unit.ToDisplay(wei),
			ImageUrl: im.gateway.ResolveURL(assetCid),
			Account:  viewer,
			TxHash:   tx.Hash(),
		})
		return &flow.Result{
			TokenId:  tokenId,
			Redirect: market.RedirectCreated + tokenId.String(),
		}, nil
	})
}

func (im *impl) viewer() (domain.Address, error) {
	conn := im.store.Connection()
	if !conn.IsConnected || conn.CurrentAddress == nil {
		return "", domain.ErrNotConnected
	}
	return *conn.CurrentAddress, nil
}

func (im *impl) fetchOne(c ctx.Ctx, tokenId domain.TokenId) (*marketplace.MarketItem, error) {
	id, ok := tokenId.Big()
	if !ok || id.Sign() <= 0 {
		return nil, xerrors.Errorf("token id %q: %w", tokenId, domain.ErrBadParamInput)
	}
	raw, err := im.contract.FetchSingleNFT(c, id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Error("contract.FetchSingleNFT failed")
		return nil, err
	}
	if raw == nil || !raw.HasTokenId() {
		return nil, xerrors.Errorf("token %s: %w", tokenId, domain.ErrNotFound)
	}
	return raw, nil
}

// announce never fails the flow; the write already happened.
func (im *impl) announce(c ctx.Ctx, a market.Announcement) {
	if im.announcer == nil {
		return
	}
	if err := im.announcer.Announce(c, a); err != nil {
		c.WithField("err", err).Warn("announcer.Announce failed")
	}
}

func relationToRaw(viewer domain.Address, raw *marketplace.MarketItem) market.Relation {
	return market.RelationOf(&viewer, &listing.Listing{Owner: raw.Owner, Seller: raw.Seller})
}

func parsePrice(price string) (*big.Int, error) {
	if !bValidator.IsValidPrice(price) {
		return nil, xerrors.Errorf("price %q: %w", price, domain.ErrInvalidNumberFormat)
	}
	return unit.FromDisplay(price)
}

func itemKey(tokenId domain.TokenId) string {
	return "item:" + tokenId.String()
}

func mintKey(account domain.Address) string {
	return "mint:" + account.ToLowerStr()
}
