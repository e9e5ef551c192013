package contract

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/nftmarket/base/abi"
	"github.com/x-xyz/nftmarket/base/backoff"
	bCtx "github.com/x-xyz/nftmarket/base/ctx"
	bEthereum "github.com/x-xyz/nftmarket/base/ethereum"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/validator"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/marketplace"
	"github.com/x-xyz/nftmarket/domain/wallet"
	"github.com/x-xyz/nftmarket/service/chain"
)

type MarketplaceCfg struct {
	Client  chain.Client
	Address string
	// Wallet signs writes. Without one only ReadOnly bindings can be built.
	Wallet      wallet.SigningProvider
	ReadOnly    bool
	ReceiptPoll time.Duration
}

type Marketplace struct {
	client      chain.Client
	address     common.Address
	abi         ethabi.ABI
	bound       *bind.BoundContract
	wallet      wallet.SigningProvider
	receiptPoll time.Duration
}

func NewMarketplace(cfg *MarketplaceCfg) (*Marketplace, error) {
	if cfg.Address == "" || !validator.IsValidAddress(cfg.Address) || common.HexToAddress(cfg.Address) == (common.Address{}) {
		return nil, xerrors.Errorf("marketplace address %q: %w", cfg.Address, domain.ErrContractAddressMissing)
	}
	if cfg.Wallet == nil && !cfg.ReadOnly {
		return nil, domain.ErrWalletUnavailable
	}
	poll := cfg.ReceiptPoll
	if poll <= 0 {
		poll = time.Second
	}
	addr := common.HexToAddress(cfg.Address)
	backend := cfg.Client.Backend()
	return &Marketplace{
		client:      cfg.Client,
		address:     addr,
		abi:         baseabi.MarketplaceABI,
		bound:       bind.NewBoundContract(addr, baseabi.MarketplaceABI, backend, backend, backend),
		wallet:      cfg.Wallet,
		receiptPoll: poll,
	}, nil
}

func (m *Marketplace) FetchMarketItems(ctx bCtx.Ctx) ([]marketplace.MarketItem, error) {
	return m.fetchItems(ctx, common.Address{}, "fetchMarketItems")
}

func (m *Marketplace) FetchMyNFTs(ctx bCtx.Ctx, account domain.Address) ([]marketplace.MarketItem, error) {
	if !validator.IsValidAddress(string(account)) {
		return nil, xerrors.Errorf("%q: %w", account, domain.ErrInvalidAddress)
	}
	return m.fetchItems(ctx, common.HexToAddress(string(account)), "fetchMyNFTs")
}

func (m *Marketplace) fetchItems(ctx bCtx.Ctx, from common.Address, method string) ([]marketplace.MarketItem, error) {
	unpacked, err := m.client.Call(ctx, from, m.address, m.abi, method)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", method, err)
	}
	var raws []baseabi.MarketItem
	if err := convert(unpacked, &raws); err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Error("convert failed")
		return nil, err
	}
	items := make([]marketplace.MarketItem, len(raws))
	for i := range raws {
		items[i] = toMarketItem(&raws[i])
	}
	return items, nil
}

func (m *Marketplace) FetchSingleNFT(ctx bCtx.Ctx, tokenId *big.Int) (*marketplace.MarketItem, error) {
	method := "fetchSingleNFT"
	unpacked, err := m.client.Call(ctx, common.Address{}, m.address, m.abi, method, tokenId)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", method, err)
	}
	var raw baseabi.MarketItem
	if err := convert(unpacked, &raw); err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Error("convert failed")
		return nil, err
	}
	item := toMarketItem(&raw)
	return &item, nil
}

func (m *Marketplace) TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error) {
	method := "tokenURI"
	unpacked, err := m.client.Call(ctx, common.Address{}, m.address, m.abi, method, tokenId)
	if err != nil {
		return "", xerrors.Errorf("%s(%s): %w", method, tokenId, err)
	}
	return unpacked[0].(string), nil
}

func (m *Marketplace) GetListingPrice(ctx bCtx.Ctx) (*big.Int, error) {
	method := "getListingPrice"
	unpacked, err := m.client.Call(ctx, common.Address{}, m.address, m.abi, method)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", method, err)
	}
	return unpacked[0].(*big.Int), nil
}

func (m *Marketplace) CreateToken(ctx bCtx.Ctx, tokenURI string, price, fee *big.Int) (marketplace.PendingTx, error) {
	return m.transact(ctx, fee, "createToken", tokenURI, price)
}

func (m *Marketplace) CreateMarketSale(ctx bCtx.Ctx, tokenId, value *big.Int) (marketplace.PendingTx, error) {
	return m.transact(ctx, value, "createMarketSale", tokenId)
}

func (m *Marketplace) ResellToken(ctx bCtx.Ctx, tokenId, price, fee *big.Int) (marketplace.PendingTx, error) {
	return m.transact(ctx, fee, "resellToken", tokenId, price)
}

func (m *Marketplace) transact(ctx bCtx.Ctx, value *big.Int, method string, params ...interface{}) (marketplace.PendingTx, error) {
	if m.wallet == nil {
		return nil, xerrors.Errorf("%s: %w", method, domain.ErrWalletUnavailable)
	}
	signer, err := m.wallet.Signer(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Warn("wallet.Signer failed")
		return nil, xerrors.Errorf("%s: %w", method, err)
	}
	opts := *signer
	opts.Context = ctx
	opts.Value = value

	tx, err := m.bound.Transact(&opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"from":   opts.From.Hex(),
			"err":    err,
		}).Error("bound.Transact failed")
		return nil, xerrors.Errorf("%s: %s: %w", method, err.Error(), domain.ErrTransactionFailed)
	}
	ctx.WithFields(log.Fields{
		"method": method,
		"txHash": tx.Hash().Hex(),
	}).Info("transaction submitted")
	return &pendingTx{
		tx:      tx,
		method:  method,
		backend: m.client.Backend(),
		poll:    m.receiptPoll,
	}, nil
}

type pendingTx struct {
	tx      *types.Transaction
	method  string
	backend bEthereum.Backend
	poll    time.Duration
}

func (p *pendingTx) Hash() domain.TxHash {
	return domain.TxHash(p.tx.Hash().Hex())
}

func (p *pendingTx) Wait(ctx bCtx.Ctx) (*types.Receipt, error) {
	hash := p.tx.Hash()
	b := backoff.NewExponential(p.poll, 8*p.poll)
	for {
		receipt, err := p.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status == types.ReceiptStatusFailed {
				ctx.WithFields(log.Fields{
					"method": p.method,
					"txHash": hash.Hex(),
				}).Error("transaction reverted")
				return receipt, xerrors.Errorf("%s %s reverted: %w", p.method, hash.Hex(), domain.ErrTransactionFailed)
			}
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"txHash": hash.Hex(),
				"err":    err,
			}).Warn("backend.TransactionReceipt failed")
		}
		if err := b.Backoff(ctx); err != nil {
			return nil, xerrors.Errorf("wait %s: %w", hash.Hex(), err)
		}
	}
}

func toMarketItem(raw *baseabi.MarketItem) marketplace.MarketItem {
	return marketplace.MarketItem{
		TokenId: raw.TokenId,
		Seller:  domain.Address(raw.Seller.Hex()).ToLower(),
		Owner:   domain.Address(raw.Owner.Hex()).ToLower(),
		Price:   raw.Price,
		Sold:    raw.Sold,
	}
}

// convert copies the first output into out. abi.ConvertType panics on
// mismatching layouts.
func convert(unpacked []interface{}, out interface{}) (err error) {
	if len(unpacked) == 0 {
		return xerrors.New("no outputs")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("abi.ConvertType: %v", r)
		}
	}()
	ethabi.ConvertType(unpacked[0], out)
	return nil
}
