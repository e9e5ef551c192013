package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmarket/base/ctx"
	bEthereum "github.com/x-xyz/nftmarket/base/ethereum"
	"github.com/x-xyz/nftmarket/base/log"
)

type ClientCfg struct {
	RpcUrl             string
	ChainId            int64
	MaxConcurrentCalls int
}

type Client interface {
	// Call packs method, runs it as an eth_call sent from `from` and unpacks
	// the outputs. The zero address means no sender.
	Call(ctx bCtx.Ctx, from common.Address, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Backend() bEthereum.Backend
	ChainId() *big.Int
	Ping(ctx bCtx.Ctx) error
}

type clientImpl struct {
	backend bEthereum.Backend
	chainId *big.Int
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithField("err", err).Error("failed to dial rpc")
		return nil, err
	}
	var backend bEthereum.Backend = client
	if cfg.MaxConcurrentCalls > 0 {
		backend = bEthereum.NewThrottledBackend(client, cfg.MaxConcurrentCalls)
	}
	return NewClientWithBackend(backend, cfg.ChainId), nil
}

// NewClientWithBackend wraps an already connected backend, e.g. a simulated
// chain in tests.
func NewClientWithBackend(backend bEthereum.Backend, chainId int64) Client {
	return &clientImpl{
		backend: backend,
		chainId: big.NewInt(chainId),
	}
}

func (c *clientImpl) Backend() bEthereum.Backend {
	return c.backend
}

func (c *clientImpl) ChainId() *big.Int {
	return new(big.Int).Set(c.chainId)
}

func (c *clientImpl) Ping(ctx bCtx.Ctx) error {
	if _, err := c.backend.HeaderByNumber(ctx, nil); err != nil {
		ctx.WithField("err", err).Error("backend.HeaderByNumber failed")
		return xerrors.Errorf("ping node: %w", err)
	}
	return nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, from common.Address, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		From: from,
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("backend.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
