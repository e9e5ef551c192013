package usecase

import (
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmarket/base/abi"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/event"
)

type resolver struct{}

func NewResolver() event.Resolver {
	return &resolver{}
}

func (r *resolver) Extract(receipt *types.Receipt, kind event.Kind) (*event.Event, bool) {
	if receipt == nil {
		return nil, false
	}
	for _, l := range receipt.Logs {
		ev, err := decode(l)
		if err != nil {
			log.Log().WithFields(log.Fields{
				"err":      err,
				"txHash":   receipt.TxHash.Hex(),
				"logIndex": l.Index,
			}).Debug("skip undecodable log")
			continue
		}
		if ev != nil && ev.Kind == kind {
			return ev, true
		}
	}
	return nil, false
}

// decode returns nil without error for marketplace events no Kind covers.
func decode(l *types.Log) (*event.Event, error) {
	abiEvent, err := abi.EventOf(l)
	if err != nil {
		return nil, err
	}

	kind := kindOf(abiEvent.Name)
	ev := &event.Event{Kind: kind, LogIndex: l.Index}
	switch kind {
	case event.KindMarketItemCreated:
		m, err := abi.ToMarketItemCreatedLog(l)
		if err != nil {
			return nil, err
		}
		ev.MarketItemCreated = &event.MarketItemCreated{
			TokenId: m.TokenId,
			Seller:  domain.Address(m.Seller.Hex()),
			Owner:   domain.Address(m.Owner.Hex()),
			Price:   m.Price,
			Sold:    m.Sold,
		}
	case event.KindTransfer:
		t, err := abi.ToTransferLog(l)
		if err != nil {
			return nil, err
		}
		ev.Transfer = &event.Transfer{
			From:    domain.Address(t.From.Hex()),
			To:      domain.Address(t.To.Hex()),
			TokenId: t.TokenId,
		}
	default:
		return nil, nil
	}
	return ev, nil
}

func kindOf(name string) event.Kind {
	switch name {
	case event.KindMarketItemCreated.String():
		return event.KindMarketItemCreated
	case event.KindTransfer.String():
		return event.KindTransfer
	}
	return 0
}
