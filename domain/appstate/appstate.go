package appstate

import (
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/listing"
)

type Connection struct {
	IsConnected    bool            `json:"isConnected"`
	CurrentAddress *domain.Address `json:"currentAddress"`
}

// ConnectionFromAccounts maps a provider account list to connection state:
// empty means disconnected, otherwise the first account lowercased.
func ConnectionFromAccounts(accounts []domain.Address) Connection {
	if len(accounts) == 0 {
		return Connection{}
	}
	addr := accounts[0].ToLower()
	return Connection{IsConnected: true, CurrentAddress: &addr}
}

// Is reports whether the connected account equals addr.
func (c Connection) Is(addr domain.Address) bool {
	return c.IsConnected && c.CurrentAddress != nil && c.CurrentAddress.Equals(addr)
}

type Snapshot struct {
	Connection Connection         `json:"connection"`
	Listings   []*listing.Listing `json:"listings"`
}

// Store is the process-wide view state. Sets are last-write-wins and
// subscribers run after every write.
type Store interface {
	Connection() Connection
	SetConnection(Connection)
	SubscribeConnection(func(Connection)) (unsubscribe func())

	Listings() []*listing.Listing
	ReplaceListings([]*listing.Listing)
	RemoveListing(domain.TokenId)
	SubscribeListings(func([]*listing.Listing)) (unsubscribe func())

	Snapshot() Snapshot
}
