package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmarket/base/log"
)

// Backend is what the marketplace binding needs from a node: contract calls,
// transaction submission and receipt lookups.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ThrottledBackend caps the number of concurrent node requests. Listing
// assembly fans out one tokenURI call per item, which would otherwise burst
// the node's rate limit.
type ThrottledBackend struct {
	Backend
	tokens chan int
}

func NewThrottledBackend(b Backend, n int) *ThrottledBackend {
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledBackend{
		Backend: b,
		tokens:  tokens,
	}
}

func (c *ThrottledBackend) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.CodeAt(ctx, address, number)
}

func (c *ThrottledBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.CallContract(ctx, msg, number)
}

func (c *ThrottledBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.EstimateGas(ctx, msg)
}

func (c *ThrottledBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.SendTransaction(ctx, tx)
}

func (c *ThrottledBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.TransactionReceipt(ctx, hash)
}

func (c *ThrottledBackend) before(ctx context.Context) int {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now)).Debug("throttle ctx done")
		return 0
	case token := <-c.tokens:
		if waited := time.Since(now); waited > time.Second {
			log.Log().WithFields(log.Fields{"token": token, "waited": waited}).Debug("throttled")
		}
		return token
	}
}

func (c *ThrottledBackend) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
