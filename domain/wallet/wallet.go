package wallet

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/appstate"
)

// SigningProvider holds the user's keys. An empty account list means the
// wallet is locked or disconnected.
type SigningProvider interface {
	Accounts(c ctx.Ctx) ([]domain.Address, error)
	// Signer returns transact options for the active account, or
	// ErrWalletUnavailable.
	Signer(c ctx.Ctx) (*bind.TransactOpts, error)
	// SignText signs msg the way personal_sign does.
	SignText(c ctx.Ctx, account domain.Address, msg []byte) ([]byte, error)
	OnAccountsChanged(cb func(accounts []domain.Address)) (unsubscribe func())
}

// AccountSwitcher is implemented by providers that can change the active
// account on request, like a user would in a wallet extension.
type AccountSwitcher interface {
	Select(c ctx.Ctx, index uint32) error
	Disconnect(c ctx.Ctx)
	// Reconnect restores the account active before Disconnect.
	Reconnect(c ctx.Ctx)
}

// ConnectionUseCase is the only writer of the connection state.
type ConnectionUseCase interface {
	// Check mirrors eth_accounts into the store without prompting.
	Check(c ctx.Ctx) (appstate.Connection, error)
	// Connect asks the provider for a signer and proves key ownership.
	Connect(c ctx.Ctx) (appstate.Connection, error)
	SwitchAccount(c ctx.Ctx, index uint32) (appstate.Connection, error)
	Disconnect(c ctx.Ctx) appstate.Connection
	// Watch keeps the store in sync with account-change notifications.
	Watch(c ctx.Ctx) (stop func())
}
