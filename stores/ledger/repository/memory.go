package repository

import (
	"math/big"
	"sort"
	"sync"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
)

type memoryRepo struct {
	mu       sync.RWMutex
	state    *ledger.State
	listings map[domain.TokenId]*ledger.Listing
	auctions map[ledger.AuctionId]*ledger.Auction
	balances map[domain.Address]*big.Int
	events   []*ledger.Event
}

// NewMemory returns a repo keeping the ledger in process, for single node
// deployments without persistence and for tests
func NewMemory() ledger.Repo {
	return &memoryRepo{
		listings: map[domain.TokenId]*ledger.Listing{},
		auctions: map[ledger.AuctionId]*ledger.Auction{},
		balances: map[domain.Address]*big.Int{},
	}
}

func (r *memoryRepo) Load(c ctx.Ctx) (*ledger.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := &ledger.Snapshot{Balances: map[domain.Address]*big.Int{}}
	if r.state != nil {
		state := *r.state
		s.State = &state
	}
	for _, l := range r.listings {
		s.Listings = append(s.Listings, l.Clone())
	}
	for _, a := range r.auctions {
		s.Auctions = append(s.Auctions, a.Clone())
	}
	for addr, b := range r.balances {
		s.Balances[addr] = new(big.Int).Set(b)
	}
	sort.Slice(s.Listings, func(i, j int) bool { return s.Listings[i].TokenId < s.Listings[j].TokenId })
	sort.Slice(s.Auctions, func(i, j int) bool { return s.Auctions[i].Id < s.Auctions[j].Id })
	return s, nil
}

func (r *memoryRepo) Commit(c ctx.Ctx, cs *ledger.Changeset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := cs.State
	r.state = &state
	for _, l := range cs.Listings {
		r.listings[l.TokenId] = l.Clone()
	}
	for _, a := range cs.Auctions {
		r.auctions[a.Id] = a.Clone()
	}
	for addr, b := range cs.Balances {
		r.balances[addr] = new(big.Int).Set(b)
	}
	for _, e := range cs.Events {
		r.events = append(r.events, e.Clone())
	}
	return nil
}

func (r *memoryRepo) FindEvents(c ctx.Ctx, optFns ...ledger.FindEventOptions) ([]*ledger.Event, error) {
	opts, err := ledger.GetFindEventOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("ledger.GetFindEventOptions failed")
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// newest first, same as the mongo repo
	res := []*ledger.Event{}
	skipped := 0
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if !opts.Match(e) {
			continue
		}
		if opts.Offset != nil && skipped < *opts.Offset {
			skipped++
			continue
		}
		if opts.Limit != nil && *opts.Limit > 0 && len(res) >= *opts.Limit {
			break
		}
		res = append(res, e.Clone())
	}
	return res, nil
}
