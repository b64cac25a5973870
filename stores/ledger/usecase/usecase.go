package usecase

import (
	"math/big"
	"sort"
	"sync"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/log"
	"github.com/x-xyz/ledger/base/metrics"
	"github.com/x-xyz/ledger/base/validator"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
)

type LedgerUseCaseCfg struct {
	// Owner is the marketplace owner, it receives listing fees and is the
	// only caller allowed to change the fee configuration
	Owner domain.Address
	// Fees is the initial fee configuration of a fresh store
	Fees      ledger.FeeConfig
	Repo      ledger.Repo
	Publisher ledger.Publisher
	// TimeNow is the clock auction expiry is evaluated against, defaults to time.Now
	TimeNow func() time.Time
}

type impl struct {
	owner     domain.Address
	fees      ledger.FeeConfig
	repo      ledger.Repo
	publisher ledger.Publisher
	timeNow   func() time.Time
	met       metrics.Service

	// mu serializes every call, mutations hold it through commit
	mu       sync.RWMutex
	state    ledger.State
	listings map[domain.TokenId]*ledger.Listing
	auctions map[domain.TokenId]*ledger.Auction
	balances map[domain.Address]*big.Int
}

func New(cfg *LedgerUseCaseCfg) (ledger.Usecase, error) {
	if !validator.IsValidAddress(string(cfg.Owner)) || cfg.Owner.IsZero() {
		return nil, xerrors.Errorf("invalid marketplace owner %q: %w", cfg.Owner, domain.ErrInvalidAddress)
	}
	if err := cfg.Fees.Validate(); err != nil {
		return nil, err
	}
	timeNow := cfg.TimeNow
	if timeNow == nil {
		timeNow = time.Now
	}
	im := &impl{
		owner:     cfg.Owner.ToLower(),
		fees:      cfg.Fees,
		repo:      cfg.Repo,
		publisher: cfg.Publisher,
		timeNow:   timeNow,
		met:       metrics.New("ledger"),
	}
	im.reset(&ledger.Snapshot{})
	return im, nil
}

func (im *impl) reset(s *ledger.Snapshot) {
	im.state = ledger.State{Fees: im.fees}
	if s.State != nil {
		im.state = *s.State
	}
	im.listings = make(map[domain.TokenId]*ledger.Listing, len(s.Listings))
	for _, l := range s.Listings {
		im.listings[l.TokenId] = l
	}
	im.auctions = make(map[domain.TokenId]*ledger.Auction)
	for _, a := range s.Auctions {
		if cur, ok := im.auctions[a.TokenId]; !ok || cur.Id < a.Id {
			im.auctions[a.TokenId] = a
		}
	}
	im.balances = make(map[domain.Address]*big.Int, len(s.Balances))
	for addr, b := range s.Balances {
		im.balances[addr] = b
	}
}

func (im *impl) Restore(c ctx.Ctx) error {
	s, err := im.repo.Load(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Load failed")
		return err
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.reset(s)

	c.WithFields(log.Fields{
		"listings":     len(im.listings),
		"auctions":     len(im.auctions),
		"lastTokenId":  im.state.LastTokenId,
		"lastEventSeq": im.state.LastEventSeq,
	}).Info("ledger restored")
	return nil
}

// authorize is the single ownership predicate behind every gated operation
func authorize(caller, owner domain.Address, denied error) error {
	if caller.IsZero() || !caller.Equals(owner) {
		return denied
	}
	return nil
}

// commit persists the staged changes, then makes them visible and hands the
// events to the publisher. Callers hold im.mu.
func (im *impl) commit(c ctx.Ctx, t *txn) error {
	cs := t.changeset()
	if err := im.repo.Commit(c, cs); err != nil {
		c.WithField("err", err).Error("repo.Commit failed")
		return err
	}

	im.state = cs.State
	for _, l := range cs.Listings {
		im.listings[l.TokenId] = l
	}
	for _, a := range cs.Auctions {
		im.auctions[a.TokenId] = a
	}
	for addr, b := range cs.Balances {
		im.balances[addr] = b
	}

	if im.publisher != nil && len(cs.Events) > 0 {
		im.publisher.Publish(c, cs.Events)
	}
	return nil
}

func (im *impl) observe(op string, err *error) func() {
	end := im.met.BumpTime(op + ".time").End
	return func() {
		end()
		if *err != nil {
			im.met.BumpSum(op+".err", 1)
		}
	}
}

func (im *impl) CreateToken(c ctx.Ctx, caller domain.Address, tokenURI string, price *big.Int) (res *ledger.Listing, err error) {
	defer im.observe("createToken", &err)()
	caller = caller.ToLower()

	if price == nil || price.Sign() <= 0 {
		return nil, ledger.ErrInvalidPrice
	}
	if caller.IsZero() {
		return nil, ledger.ErrNotOwner
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	t.state.LastTokenId++
	l := &ledger.Listing{
		TokenId:    t.state.LastTokenId,
		Owner:      caller,
		Seller:     caller,
		Creator:    caller,
		Price:      new(big.Int).Set(price),
		TokenURI:   tokenURI,
		Active:     true,
		DateListed: t.now,
	}
	t.putListing(l)
	t.emit(ledger.EventTypeMint, l.TokenId, 0, domain.EmptyAddress, caller, nil)
	t.emit(ledger.EventTypeList, l.TokenId, 0, caller, "", price)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

// activeAuction fails when the token is under an unfinalized auction, the
// listing is frozen until then
func activeAuction(t *txn, tokenId domain.TokenId) error {
	if a := t.auction(tokenId); a != nil && a.Active {
		return ledger.ErrAuctionActive
	}
	return nil
}

func (im *impl) TradeNFT(c ctx.Ctx, caller, to domain.Address, tokenId domain.TokenId) (res *ledger.Listing, err error) {
	defer im.observe("tradeNFT", &err)()
	caller, to = caller.ToLower(), to.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	l, err := t.listing(tokenId)
	if err != nil {
		return nil, err
	}
	if err := authorize(caller, l.Owner, ledger.ErrNotOwner); err != nil {
		return nil, err
	}
	if to.IsZero() || !validator.IsValidAddress(string(to)) {
		return nil, ledger.ErrInvalidRecipient
	}
	if err := activeAuction(t, tokenId); err != nil {
		return nil, err
	}

	wasListed := l.Active
	l.TransferTo(to)
	if wasListed {
		t.emit(ledger.EventTypeCancelListing, tokenId, 0, caller, "", nil)
	}
	t.emit(ledger.EventTypeTransfer, tokenId, 0, caller, to, nil)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

func (im *impl) SellNFT(c ctx.Ctx, buyer domain.Address, tokenId domain.TokenId, payment *big.Int) (res *ledger.Settlement, err error) {
	defer im.observe("sellNFT", &err)()
	buyer = buyer.ToLower()

	if buyer.IsZero() {
		return nil, ledger.ErrInvalidRecipient
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	l, err := t.listing(tokenId)
	if err != nil {
		return nil, err
	}
	if !l.Active {
		return nil, ledger.ErrNotListed
	}
	if payment == nil || payment.Cmp(l.Price) != 0 {
		return nil, ledger.ErrPaymentMismatch
	}
	if buyer.Equals(l.Seller) {
		return nil, ledger.ErrBuyOwnToken
	}

	s := t.settle(l, buyer, l.Price, 0)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return s, nil
}

func (im *impl) ListNFT(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId, price *big.Int) (res *ledger.Listing, err error) {
	defer im.observe("listNFT", &err)()
	caller = caller.ToLower()

	if price == nil || price.Sign() <= 0 {
		return nil, ledger.ErrInvalidPrice
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	l, err := t.listing(tokenId)
	if err != nil {
		return nil, err
	}
	if err := authorize(caller, l.Owner, ledger.ErrNotOwner); err != nil {
		return nil, err
	}
	if err := activeAuction(t, tokenId); err != nil {
		return nil, err
	}

	l.Seller = caller
	l.Price = new(big.Int).Set(price)
	l.Active = true
	l.DateListed = t.now
	t.emit(ledger.EventTypeList, tokenId, 0, caller, "", price)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

func (im *impl) CancelListing(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (res *ledger.Listing, err error) {
	defer im.observe("cancelListing", &err)()
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	l, err := t.listing(tokenId)
	if err != nil {
		return nil, err
	}
	if err := authorize(caller, l.Owner, ledger.ErrNotOwner); err != nil {
		return nil, err
	}
	if !l.Active {
		return nil, ledger.ErrNotListed
	}

	l.Active = false
	t.emit(ledger.EventTypeCancelListing, tokenId, 0, caller, "", nil)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

func (im *impl) AuctionNFT(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId, duration time.Duration) (res *ledger.Auction, err error) {
	defer im.observe("auctionNFT", &err)()
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	l, err := t.listing(tokenId)
	if err != nil {
		return nil, err
	}
	if err := authorize(caller, l.Owner, ledger.ErrNotOwner); err != nil {
		return nil, err
	}
	if err := activeAuction(t, tokenId); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, ledger.ErrInvalidDuration
	}

	if l.Active {
		l.Active = false
		t.emit(ledger.EventTypeCancelListing, tokenId, 0, caller, "", nil)
	}
	l.Seller = caller

	t.state.LastAuctionId++
	a := &ledger.Auction{
		Id:         t.state.LastAuctionId,
		TokenId:    tokenId,
		Seller:     caller,
		HighestBid: new(big.Int),
		StartTime:  t.now,
		EndTime:    t.now.Add(duration),
		Active:     true,
	}
	t.putAuction(a)
	t.emit(ledger.EventTypeCreateAuction, tokenId, a.Id, caller, "", nil)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

func (im *impl) Bid(c ctx.Ctx, bidder domain.Address, tokenId domain.TokenId, payment *big.Int) (res *ledger.Auction, err error) {
	defer im.observe("bid", &err)()
	bidder = bidder.ToLower()

	if bidder.IsZero() {
		return nil, ledger.ErrInvalidRecipient
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	a := t.auction(tokenId)
	if a == nil {
		if _, err := t.listing(tokenId); err != nil {
			return nil, err
		}
		return nil, ledger.ErrAuctionNotFound
	}
	if !a.Active {
		return nil, ledger.ErrAuctionClosed
	}
	if a.Ended(t.now) {
		return nil, ledger.ErrBidAfterEnd
	}
	if bidder.Equals(a.Seller) {
		return nil, ledger.ErrSelfBid
	}
	if payment == nil || payment.Cmp(a.HighestBid) <= 0 {
		return nil, ledger.ErrBidTooLow
	}

	// the escrowed bid goes back to its owner before the new one is taken
	if a.HasBid() {
		t.credit(a.HighestBidder, a.HighestBid)
		t.emit(ledger.EventTypeBidRefunded, tokenId, a.Id, "", a.HighestBidder, a.HighestBid)
	}
	a.HighestBid = new(big.Int).Set(payment)
	a.HighestBidder = bidder
	t.emit(ledger.EventTypePlaceBid, tokenId, a.Id, bidder, "", payment)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

func (im *impl) FinalizeAuction(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (res *ledger.AuctionResult, err error) {
	defer im.observe("finalizeAuction", &err)()
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	a := t.auction(tokenId)
	if a == nil {
		if _, err := t.listing(tokenId); err != nil {
			return nil, err
		}
		return nil, ledger.ErrAuctionNotFound
	}
	if !a.Active {
		return nil, ledger.ErrAuctionClosed
	}
	if !a.Ended(t.now) {
		return nil, ledger.ErrAuctionNotEnded
	}

	now := t.now
	a.Active = false
	a.FinalizedAt = &now
	res = &ledger.AuctionResult{Auction: a}

	if a.HasBid() {
		l, err := t.listing(tokenId)
		if err != nil {
			return nil, err
		}
		res.Settlement = t.settle(l, a.HighestBidder, a.HighestBid, a.Id)
	}
	t.emit(ledger.EventTypeResultAuction, tokenId, a.Id, caller, a.HighestBidder, a.HighestBid)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	res.Auction = a.Clone()
	return res, nil
}

func (im *impl) updateFees(c ctx.Ctx, caller domain.Address, typ ledger.EventType, update func(*ledger.FeeConfig)) (*ledger.FeeConfig, error) {
	if err := authorize(caller.ToLower(), im.owner, ledger.ErrNotMarketplaceOwner); err != nil {
		return nil, err
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	fees := t.state.Fees
	update(&fees)
	if err := fees.Validate(); err != nil {
		return nil, err
	}
	t.state.Fees = fees
	t.emit(typ, 0, 0, im.owner, "", nil)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return &fees, nil
}

func (im *impl) UpdateListingFeePercent(c ctx.Ctx, caller domain.Address, percent int) (res *ledger.FeeConfig, err error) {
	defer im.observe("updateListingFeePercent", &err)()
	return im.updateFees(c, caller, ledger.EventTypeUpdateListingFeePercent, func(f *ledger.FeeConfig) {
		f.ListingFeePercent = percent
	})
}

func (im *impl) UpdateRoyaltyPercent(c ctx.Ctx, caller domain.Address, percent int) (res *ledger.FeeConfig, err error) {
	defer im.observe("updateRoyaltyPercent", &err)()
	return im.updateFees(c, caller, ledger.EventTypeUpdateRoyaltyPercent, func(f *ledger.FeeConfig) {
		f.RoyaltyPercent = percent
	})
}

func (im *impl) GetFeeConfig(c ctx.Ctx) (*ledger.FeeConfig, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	fees := im.state.Fees
	return &fees, nil
}

func (im *impl) GetListingFeePercent(c ctx.Ctx) (int, error) {
	fees, err := im.GetFeeConfig(c)
	if err != nil {
		return 0, err
	}
	return fees.ListingFeePercent, nil
}

func (im *impl) GetRoyaltyPercent(c ctx.Ctx) (int, error) {
	fees, err := im.GetFeeConfig(c)
	if err != nil {
		return 0, err
	}
	return fees.RoyaltyPercent, nil
}

func (im *impl) MarketplaceOwner() domain.Address {
	return im.owner
}

func (im *impl) filterListings(match func(*ledger.Listing) bool) []*ledger.Listing {
	im.mu.RLock()
	defer im.mu.RUnlock()

	res := []*ledger.Listing{}
	for _, l := range im.listings {
		if match(l) {
			res = append(res, l.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TokenId < res[j].TokenId })
	return res
}

func (im *impl) GetAllListedNFTs(c ctx.Ctx) ([]*ledger.Listing, error) {
	return im.filterListings(func(l *ledger.Listing) bool {
		return l.Active
	}), nil
}

func (im *impl) GetMyNFTs(c ctx.Ctx, caller domain.Address) ([]*ledger.Listing, error) {
	if caller.IsZero() {
		return []*ledger.Listing{}, nil
	}
	return im.filterListings(func(l *ledger.Listing) bool {
		return l.Owner.Equals(caller)
	}), nil
}

func (im *impl) GetNFTListing(c ctx.Ctx, tokenId domain.TokenId) (*ledger.Listing, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	l, ok := im.listings[tokenId]
	if !ok {
		return nil, ledger.ErrTokenNotFound
	}
	return l.Clone(), nil
}

func (im *impl) GetAuctionedNFTs(c ctx.Ctx) ([]*ledger.AuctionedNFT, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	res := []*ledger.AuctionedNFT{}
	for tokenId, a := range im.auctions {
		if !a.Active {
			continue
		}
		l, ok := im.listings[tokenId]
		if !ok {
			c.WithField("tokenId", tokenId).Warn("auction without listing")
			continue
		}
		res = append(res, &ledger.AuctionedNFT{Listing: l.Clone(), Auction: a.Clone()})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Listing.TokenId < res[j].Listing.TokenId })
	return res, nil
}

func (im *impl) GetAuction(c ctx.Ctx, tokenId domain.TokenId) (*ledger.Auction, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	if a, ok := im.auctions[tokenId]; ok {
		return a.Clone(), nil
	}
	if _, ok := im.listings[tokenId]; !ok {
		return nil, ledger.ErrTokenNotFound
	}
	return nil, ledger.ErrAuctionNotFound
}

func (im *impl) BalanceOf(c ctx.Ctx, address domain.Address) (*big.Int, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	if b, ok := im.balances[address.ToLower()]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

func (im *impl) Withdraw(c ctx.Ctx, caller domain.Address) (res *big.Int, err error) {
	defer im.observe("withdraw", &err)()
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.begin()
	b := t.balance(caller)
	if b.Sign() <= 0 {
		return nil, ledger.ErrNothingToWithdraw
	}
	amount := new(big.Int).Set(b)
	b.SetInt64(0)
	t.emit(ledger.EventTypeWithdraw, 0, 0, caller, "", amount)

	if err := im.commit(c, t); err != nil {
		return nil, err
	}
	return amount, nil
}

func (im *impl) FindEvents(c ctx.Ctx, opts ...ledger.FindEventOptions) ([]*ledger.Event, error) {
	if _, err := ledger.GetFindEventOptions(opts...); err != nil {
		return nil, err
	}
	res, err := im.repo.FindEvents(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindEvents failed")
		return nil, err
	}
	return res, nil
}
