package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var (
	seller = common.HexToAddress("0x939ae6a4c8dfdbb1f7085189574f0a938013952b")
	market = common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")
)

func TestMarketItemCreatedLog(t *testing.T) {
	req := require.New(t)
	ev := MarketplaceABI.Events["MarketItemCreated"]
	data, err := ev.Inputs.NonIndexed().Pack(seller, market, big.NewInt(1000000000000000), false)
	req.NoError(err)

	log := &types.Log{
		Topics: []common.Hash{ev.ID, common.BigToHash(big.NewInt(7))},
		Data:   data,
	}
	got, err := EventOf(log)
	req.NoError(err)
	req.Equal("MarketItemCreated", got.Name)

	l, err := ToMarketItemCreatedLog(log)
	req.NoError(err)
	req.Equal(&MarketItemCreatedLog{
		TokenId: big.NewInt(7),
		Seller:  seller,
		Owner:   market,
		Price:   big.NewInt(1000000000000000),
		Sold:    false,
	}, l)
}

func TestTransferLog(t *testing.T) {
	req := require.New(t)
	ev := MarketplaceABI.Events["Transfer"]
	log := &types.Log{
		Topics: []common.Hash{
			ev.ID,
			common.BytesToHash(common.Address{}.Bytes()),
			common.BytesToHash(seller.Bytes()),
			common.BigToHash(big.NewInt(3)),
		},
	}
	l, err := ToTransferLog(log)
	req.NoError(err)
	req.Equal(&TransferLog{From: common.Address{}, To: seller, TokenId: big.NewInt(3)}, l)

	_, err = ToTransferLog(&types.Log{Topics: log.Topics[:3]})
	req.Error(err)
}

func TestEventOfUnknownTopic(t *testing.T) {
	_, err := EventOf(&types.Log{Topics: []common.Hash{common.HexToHash("0x01")}})
	require.Error(t, err)
	_, err = EventOf(&types.Log{})
	require.Error(t, err)
}
