package usecase

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/ethereum"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/appstate"
	"github.com/x-xyz/nftmarket/domain/wallet"
)

type ConnectionUseCaseCfg struct {
	// Provider is nil when no wallet is configured.
	Provider wallet.SigningProvider
	Store    appstate.Store
}

type connectionUseCase struct {
	provider wallet.SigningProvider
	store    appstate.Store
}

func NewConnectionUseCase(cfg *ConnectionUseCaseCfg) wallet.ConnectionUseCase {
	return &connectionUseCase{
		provider: cfg.Provider,
		store:    cfg.Store,
	}
}

func (im *connectionUseCase) Check(c ctx.Ctx) (appstate.Connection, error) {
	if im.provider == nil {
		im.store.SetConnection(appstate.Connection{})
		return appstate.Connection{}, xerrors.Errorf("no signing provider: %w", domain.ErrWalletUnavailable)
	}
	accounts, err := im.provider.Accounts(c)
	if err != nil {
		c.WithField("err", err).Error("provider.Accounts failed")
		return appstate.Connection{}, err
	}
	conn := appstate.ConnectionFromAccounts(accounts)
	im.store.SetConnection(conn)
	return conn, nil
}

func (im *connectionUseCase) Connect(c ctx.Ctx) (appstate.Connection, error) {
	if im.provider == nil {
		return appstate.Connection{}, xerrors.Errorf("no signing provider: %w", domain.ErrWalletUnavailable)
	}
	// like a wallet prompt after the user disconnected the site
	if switcher, ok := im.provider.(wallet.AccountSwitcher); ok {
		switcher.Reconnect(c)
	}
	signer, err := im.provider.Signer(c)
	if err != nil {
		c.WithField("err", err).Error("provider.Signer failed")
		return appstate.Connection{}, err
	}
	account := domain.Address(signer.From.Hex())

	if err := im.prove(c, account); err != nil {
		return appstate.Connection{}, err
	}

	conn := appstate.ConnectionFromAccounts([]domain.Address{account})
	im.store.SetConnection(conn)
	c.WithField("account", account.ToLower()).Info("wallet connected")
	return conn, nil
}

// prove has the provider sign a fresh challenge and checks the signature
// recovers to account.
func (im *connectionUseCase) prove(c ctx.Ctx, account domain.Address) error {
	challenge := ethereum.SessionChallenge(uuid.NewString())
	sig, err := im.provider.SignText(c, account, challenge)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "account": account}).Error("provider.SignText failed")
		return xerrors.Errorf("sign challenge: %w", domain.ErrWalletUnavailable)
	}
	ok, err := ethereum.ValidateMsgSignature(challenge, hexutil.Encode(sig), string(account))
	if err != nil || !ok {
		c.WithFields(log.Fields{"err": err, "account": account}).Error("challenge signature mismatch")
		return xerrors.Errorf("signature does not match %s: %w", account, domain.ErrWalletUnavailable)
	}
	return nil
}

func (im *connectionUseCase) SwitchAccount(c ctx.Ctx, index uint32) (appstate.Connection, error) {
	switcher, ok := im.provider.(wallet.AccountSwitcher)
	if !ok {
		return appstate.Connection{}, xerrors.Errorf("provider cannot switch accounts: %w", domain.ErrWalletUnavailable)
	}
	if err := switcher.Select(c, index); err != nil {
		c.WithFields(log.Fields{"err": err, "index": index}).Error("switcher.Select failed")
		return appstate.Connection{}, err
	}
	return im.Check(c)
}

func (im *connectionUseCase) Disconnect(c ctx.Ctx) appstate.Connection {
	if switcher, ok := im.provider.(wallet.AccountSwitcher); ok {
		switcher.Disconnect(c)
	}
	im.store.SetConnection(appstate.Connection{})
	return appstate.Connection{}
}

func (im *connectionUseCase) Watch(c ctx.Ctx) func() {
	if im.provider == nil {
		return func() {}
	}
	return im.provider.OnAccountsChanged(func(accounts []domain.Address) {
		conn := appstate.ConnectionFromAccounts(accounts)
		c.WithField("connected", conn.IsConnected).Info("accounts changed")
		im.store.SetConnection(conn)
	})
}
