package usecase

import (
	"sync"

	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/appstate"
	"github.com/x-xyz/nftmarket/domain/listing"
)

type store struct {
	mu       sync.RWMutex
	conn     appstate.Connection
	listings []*listing.Listing

	nextSub     int
	connSubs    map[int]func(appstate.Connection)
	listingSubs map[int]func([]*listing.Listing)
}

func NewStore() appstate.Store {
	return &store{
		listings:    []*listing.Listing{},
		connSubs:    map[int]func(appstate.Connection){},
		listingSubs: map[int]func([]*listing.Listing){},
	}
}

func (s *store) Connection() appstate.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyConnection(s.conn)
}

func (s *store) SetConnection(conn appstate.Connection) {
	conn = copyConnection(conn)
	s.mu.Lock()
	s.conn = conn
	subs := make([]func(appstate.Connection), 0, len(s.connSubs))
	for _, fn := range s.connSubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(copyConnection(conn))
	}
}

func (s *store) SubscribeConnection(fn func(appstate.Connection)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.connSubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.connSubs, id)
	}
}

func (s *store) Listings() []*listing.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyListings(s.listings)
}

func (s *store) ReplaceListings(listings []*listing.Listing) {
	s.mu.Lock()
	s.listings = copyListings(listings)
	s.notifyListingsLocked()
}

func (s *store) RemoveListing(tokenId domain.TokenId) {
	s.mu.Lock()
	kept := make([]*listing.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if l.TokenId != tokenId {
			kept = append(kept, l)
		}
	}
	s.listings = kept
	s.notifyListingsLocked()
}

// notifyListingsLocked releases the lock taken by the caller before running
// subscribers, so a subscriber may read the store.
func (s *store) notifyListingsLocked() {
	current := s.listings
	subs := make([]func([]*listing.Listing), 0, len(s.listingSubs))
	for _, fn := range s.listingSubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(copyListings(current))
	}
}

func (s *store) SubscribeListings(fn func([]*listing.Listing)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listingSubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listingSubs, id)
	}
}

func (s *store) Snapshot() appstate.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return appstate.Snapshot{
		Connection: copyConnection(s.conn),
		Listings:   copyListings(s.listings),
	}
}

func copyConnection(c appstate.Connection) appstate.Connection {
	if c.CurrentAddress != nil {
		addr := *c.CurrentAddress
		c.CurrentAddress = &addr
	}
	return c
}

func copyListings(ls []*listing.Listing) []*listing.Listing {
	res := make([]*listing.Listing, len(ls))
	for i, l := range ls {
		cp := *l
		res[i] = &cp
	}
	return res
}
