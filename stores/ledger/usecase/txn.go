package usecase

import (
	"math/big"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
)

// txn stages the changes of one ledger call on top of the committed state.
// Nothing it touches is visible to readers until the ledger applies it.
type txn struct {
	im  *impl
	now time.Time

	state    ledger.State
	listings map[domain.TokenId]*ledger.Listing
	auctions map[domain.TokenId]*ledger.Auction
	balances map[domain.Address]*big.Int
	events   []*ledger.Event
}

func (im *impl) begin() *txn {
	return &txn{
		im:       im,
		now:      im.timeNow(),
		state:    im.state,
		listings: map[domain.TokenId]*ledger.Listing{},
		auctions: map[domain.TokenId]*ledger.Auction{},
		balances: map[domain.Address]*big.Int{},
	}
}

// listing returns a writable copy of the token's listing
func (t *txn) listing(id domain.TokenId) (*ledger.Listing, error) {
	if l, ok := t.listings[id]; ok {
		return l, nil
	}
	l, ok := t.im.listings[id]
	if !ok {
		return nil, ledger.ErrTokenNotFound
	}
	t.listings[id] = l.Clone()
	return t.listings[id], nil
}

func (t *txn) putListing(l *ledger.Listing) {
	t.listings[l.TokenId] = l
}

// auction returns a writable copy of the latest auction of the token, nil if
// the token was never auctioned
func (t *txn) auction(id domain.TokenId) *ledger.Auction {
	if a, ok := t.auctions[id]; ok {
		return a
	}
	a, ok := t.im.auctions[id]
	if !ok {
		return nil
	}
	t.auctions[id] = a.Clone()
	return t.auctions[id]
}

func (t *txn) putAuction(a *ledger.Auction) {
	t.auctions[a.TokenId] = a
}

func (t *txn) balance(addr domain.Address) *big.Int {
	if b, ok := t.balances[addr]; ok {
		return b
	}
	b := new(big.Int)
	if committed, ok := t.im.balances[addr]; ok {
		b.Set(committed)
	}
	t.balances[addr] = b
	return b
}

func (t *txn) credit(addr domain.Address, amount *big.Int) {
	b := t.balance(addr)
	b.Add(b, amount)
}

func (t *txn) emit(typ ledger.EventType, tokenId domain.TokenId, auctionId ledger.AuctionId, from, to domain.Address, amount *big.Int) {
	t.state.LastEventSeq++
	e := &ledger.Event{
		Id:        uuid.NewString(),
		Seq:       t.state.LastEventSeq,
		Type:      typ,
		TokenId:   tokenId,
		AuctionId: auctionId,
		From:      from,
		To:        to,
		Time:      t.now,
	}
	if amount != nil {
		e.Amount = new(big.Int).Set(amount)
	}
	t.events = append(t.events, e)
}

// settle pays out a sale of listing to buyer at price and transfers ownership
func (t *txn) settle(l *ledger.Listing, buyer domain.Address, price *big.Int, auctionId ledger.AuctionId) *ledger.Settlement {
	split := t.state.Fees.Split(price)
	s := &ledger.Settlement{
		TokenId:          l.TokenId,
		Buyer:            buyer,
		Seller:           l.Seller,
		Creator:          l.Creator,
		MarketplaceOwner: t.im.owner,
		Split:            split,
	}

	t.emit(ledger.EventTypeSale, l.TokenId, auctionId, l.Seller, buyer, price)

	t.credit(l.Creator, split.Royalty)
	t.emit(ledger.EventTypeRoyaltyPaid, l.TokenId, auctionId, buyer, l.Creator, split.Royalty)

	t.credit(t.im.owner, split.ListingFee)
	t.emit(ledger.EventTypeListingFeePaid, l.TokenId, auctionId, buyer, t.im.owner, split.ListingFee)

	t.credit(l.Seller, split.SellerProceeds)
	t.emit(ledger.EventTypeSellerPaid, l.TokenId, auctionId, buyer, l.Seller, split.SellerProceeds)

	from := l.Owner
	l.TransferTo(buyer)
	t.emit(ledger.EventTypeTransfer, l.TokenId, auctionId, from, buyer, nil)
	return s
}

func (t *txn) changeset() *ledger.Changeset {
	cs := &ledger.Changeset{
		State:    t.state,
		Balances: t.balances,
		Events:   t.events,
	}
	for _, l := range t.listings {
		cs.Listings = append(cs.Listings, l)
	}
	for _, a := range t.auctions {
		cs.Auctions = append(cs.Auctions, a)
	}
	sort.Slice(cs.Listings, func(i, j int) bool { return cs.Listings[i].TokenId < cs.Listings[j].TokenId })
	sort.Slice(cs.Auctions, func(i, j int) bool { return cs.Auctions[i].Id < cs.Auctions[j].Id })
	return cs
}
