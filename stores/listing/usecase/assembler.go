package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/base/unit"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/marketplace"
)

const defaultConcurrency = 8

type AssemblerCfg struct {
	Metadata domain.MetadataUseCase
	Gateway  domain.MetadataGateway
	// Concurrency caps the metadata reads in flight for one batch.
	Concurrency int
	// DropUnresolvable skips records whose metadata cannot be read instead of
	// failing the whole batch.
	DropUnresolvable bool
}

type assembler struct {
	metadata         domain.MetadataUseCase
	gateway          domain.MetadataGateway
	concurrency      int
	dropUnresolvable bool
	metrics          metrics.Service
}

func NewAssembler(cfg *AssemblerCfg) listing.Assembler {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &assembler{
		metadata:         cfg.Metadata,
		gateway:          cfg.Gateway,
		concurrency:      concurrency,
		dropUnresolvable: cfg.DropUnresolvable,
		metrics:          metrics.New("listing"),
	}
}

type assembled struct {
	idx     int
	listing *listing.Listing
	err     error
}

func (im *assembler) Assemble(c ctx.Ctx, raws []marketplace.MarketItem, binding marketplace.TokenURIReader) ([]*listing.Listing, error) {
	defer im.metrics.BumpTime("assemble.time").End()

	kept := make([]marketplace.MarketItem, 0, len(raws))
	for _, raw := range raws {
		if raw.HasTokenId() {
			kept = append(kept, raw)
		}
	}
	if len(kept) == 0 {
		return []*listing.Listing{}, nil
	}

	workers := im.concurrency
	if workers > len(kept) {
		workers = len(kept)
	}
	b := goroutines.NewBatch(workers, goroutines.WithBatchSize(len(kept)))
	defer b.Close()
	for i := 0; i < len(kept); i++ {
		idx := i
		if err := b.Queue(func() (interface{}, error) {
			l, err := im.assembleOne(c, kept[idx], binding)
			// failures travel in the value so the index survives
			return &assembled{idx: idx, listing: l, err: err}, nil
		}); err != nil {
			c.WithField("err", err).Error("batch.Queue failed")
			return nil, err
		}
	}
	b.QueueComplete()

	slots := make([]*listing.Listing, len(kept))
	var firstErr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		res := ret.Value().(*assembled)
		if res.err != nil {
			if !im.dropUnresolvable && firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		slots[res.idx] = res.listing
	}

	if firstErr != nil {
		c.WithFields(log.Fields{
			"err":   firstErr,
			"count": len(kept),
		}).Error("assemble batch failed")
		return nil, firstErr
	}

	listings := make([]*listing.Listing, 0, len(slots))
	for _, l := range slots {
		if l != nil {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

func (im *assembler) assembleOne(c ctx.Ctx, raw marketplace.MarketItem, binding marketplace.TokenURIReader) (*listing.Listing, error) {
	tokenId := domain.TokenIdFromBig(raw.TokenId)

	uri, err := binding.TokenURI(c, raw.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("binding.TokenURI failed")
		return nil, xerrors.Errorf("tokenURI %s: %w", tokenId, domain.ErrMetadataUnresolvable)
	}

	doc, err := im.metadata.Get(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"tokenId":  tokenId,
			"tokenUri": uri,
		}).Warn("metadata.Get failed")
		return nil, err
	}

	l := &listing.Listing{
		TokenId:     tokenId,
		Seller:      raw.Seller.ToLower(),
		Owner:       raw.Owner.ToLower(),
		Price:       unit.ToDisplay(raw.Price),
		Name:        doc.Name,
		Description: doc.Description,
		Image:       doc.Image,
	}
	if doc.Image != "" && im.gateway != nil {
		l.ImageUrl = im.gateway.ResolveURL(doc.Image)
	}
	return l, nil
}
