package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
)

const ethCoinType = 60

type ProviderCfg struct {
	// Mnemonic derives Accounts keys along m/44'/60'/0'/0/i.
	Mnemonic string
	// PrivateKey is a single hex key, used when Mnemonic is empty.
	PrivateKey   string
	Accounts     uint32
	AccountIndex uint32
	ChainId      *big.Int
}

// HDProvider is a server-side signing provider holding keys derived from a
// mnemonic. One account is active at a time, like in a browser wallet.
type HDProvider struct {
	chainId *big.Int
	keys    []*ecdsa.PrivateKey

	mu      sync.RWMutex
	active  int // -1 when disconnected
	last    int // account Reconnect restores
	nextSub int
	subs    map[int]func([]domain.Address)
}

func NewProvider(cfg *ProviderCfg) (*HDProvider, error) {
	var keys []*ecdsa.PrivateKey
	switch {
	case cfg.Mnemonic != "":
		n := cfg.Accounts
		if n == 0 {
			n = 1
		}
		if cfg.AccountIndex >= n {
			n = cfg.AccountIndex + 1
		}
		derived, err := deriveKeys(cfg.Mnemonic, n)
		if err != nil {
			return nil, err
		}
		keys = derived
	case cfg.PrivateKey != "":
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, xerrors.Errorf("private key: %s: %w", err.Error(), domain.ErrWalletUnavailable)
		}
		keys = []*ecdsa.PrivateKey{key}
	default:
		return nil, xerrors.Errorf("no key material: %w", domain.ErrWalletUnavailable)
	}

	active := int(cfg.AccountIndex)
	if active >= len(keys) {
		active = 0
	}
	return &HDProvider{
		chainId: cfg.ChainId,
		keys:    keys,
		active:  active,
		last:    active,
		subs:    make(map[int]func([]domain.Address)),
	}, nil
}

func deriveKeys(mnemonic string, n uint32) ([]*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, xerrors.Errorf("invalid mnemonic: %w", domain.ErrWalletUnavailable)
	}
	seed := bip39.NewSeed(mnemonic, "")
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, xerrors.Errorf("master key: %w", err)
	}
	// m/44'/60'/0'/0
	change := master
	for _, idx := range []uint32{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + ethCoinType,
		bip32.FirstHardenedChild + 0,
		0,
	} {
		if change, err = change.NewChildKey(idx); err != nil {
			return nil, xerrors.Errorf("derive %d: %w", idx, err)
		}
	}
	keys := make([]*ecdsa.PrivateKey, n)
	for i := uint32(0); i < n; i++ {
		child, err := change.NewChildKey(i)
		if err != nil {
			return nil, xerrors.Errorf("derive child %d: %w", i, err)
		}
		if keys[i], err = crypto.ToECDSA(child.Key); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func addressOf(key *ecdsa.PrivateKey) domain.Address {
	return domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())
}

// Accounts lists the active account only, as eth_accounts does.
func (p *HDProvider) Accounts(c ctx.Ctx) ([]domain.Address, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accountsLocked(), nil
}

func (p *HDProvider) accountsLocked() []domain.Address {
	if p.active < 0 {
		return []domain.Address{}
	}
	return []domain.Address{addressOf(p.keys[p.active])}
}

func (p *HDProvider) Signer(c ctx.Ctx) (*bind.TransactOpts, error) {
	p.mu.RLock()
	active := p.active
	p.mu.RUnlock()
	if active < 0 {
		return nil, xerrors.Errorf("disconnected: %w", domain.ErrWalletUnavailable)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.keys[active], p.chainId)
	if err != nil {
		c.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, xerrors.Errorf("%s: %w", err.Error(), domain.ErrWalletUnavailable)
	}
	return opts, nil
}

// SignText returns a 65 byte signature with v in {27, 28}.
func (p *HDProvider) SignText(c ctx.Ctx, account domain.Address, msg []byte) ([]byte, error) {
	for _, key := range p.keys {
		if !addressOf(key).Equals(account) {
			continue
		}
		sig, err := crypto.Sign(accounts.TextHash(msg), key)
		if err != nil {
			c.WithField("err", err).Error("crypto.Sign failed")
			return nil, err
		}
		sig[crypto.RecoveryIDOffset] += 27
		return sig, nil
	}
	return nil, xerrors.Errorf("unknown account %s: %w", account, domain.ErrWalletUnavailable)
}

func (p *HDProvider) OnAccountsChanged(cb func([]domain.Address)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = cb
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Select makes the index-th derived account active.
func (p *HDProvider) Select(c ctx.Ctx, index uint32) error {
	if int(index) >= len(p.keys) {
		return xerrors.Errorf("account %d of %d: %w", index, len(p.keys), domain.ErrBadParamInput)
	}
	p.mu.Lock()
	p.active = int(index)
	p.last = p.active
	p.mu.Unlock()
	c.WithField("index", index).Info("account selected")
	p.notify()
	return nil
}

func (p *HDProvider) Disconnect(c ctx.Ctx) {
	p.mu.Lock()
	p.active = -1
	p.mu.Unlock()
	c.Info("wallet disconnected")
	p.notify()
}

// Reconnect re-activates the account that was active before Disconnect. It
// is a no-op while an account is active.
func (p *HDProvider) Reconnect(c ctx.Ctx) {
	p.mu.Lock()
	if p.active >= 0 {
		p.mu.Unlock()
		return
	}
	p.active = p.last
	index := p.last
	p.mu.Unlock()
	c.WithField("index", index).Info("wallet reconnected")
	p.notify()
}

func (p *HDProvider) notify() {
	p.mu.RLock()
	accounts := p.accountsLocked()
	ids := make([]int, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	cbs := make([]func([]domain.Address), 0, len(ids))
	for _, id := range ids {
		cbs = append(cbs, p.subs[id])
	}
	p.mu.RUnlock()

	log.Log().WithField("accounts", accounts).Debug("accountsChanged")
	for _, cb := range cbs {
		cb(accounts)
	}
}
