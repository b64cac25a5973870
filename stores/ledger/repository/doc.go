package repository

import (
	"math/big"
	"time"

	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
)

// stateKey is the _id of the single document in the state table
const stateKey = "ledger"

// amounts are stored as decimal strings, bson has no big integer type

type stateDoc struct {
	Key               string `bson:"_id"`
	ListingFeePercent int    `bson:"listingFeePercent"`
	RoyaltyPercent    int    `bson:"royaltyPercent"`
	LastTokenId       uint64 `bson:"lastTokenId"`
	LastAuctionId     uint64 `bson:"lastAuctionId"`
	LastEventSeq      uint64 `bson:"lastEventSeq"`
}

type listingDoc struct {
	TokenId    uint64    `bson:"tokenId"`
	Owner      string    `bson:"owner"`
	Seller     string    `bson:"seller"`
	Creator    string    `bson:"creator"`
	Price      string    `bson:"price"`
	TokenURI   string    `bson:"tokenURI"`
	Active     bool      `bson:"active"`
	DateListed time.Time `bson:"dateListed"`
}

type auctionDoc struct {
	AuctionId     uint64     `bson:"auctionId"`
	TokenId       uint64     `bson:"tokenId"`
	Seller        string     `bson:"seller"`
	HighestBid    string     `bson:"highestBid"`
	HighestBidder string     `bson:"highestBidder"`
	StartTime     time.Time  `bson:"startTime"`
	EndTime       time.Time  `bson:"endTime"`
	Active        bool       `bson:"active"`
	FinalizedAt   *time.Time `bson:"finalizedAt,omitempty"`
}

type balanceDoc struct {
	Address string `bson:"address"`
	Balance string `bson:"balance"`
}

type eventDoc struct {
	Id        string    `bson:"id"`
	Seq       uint64    `bson:"seq"`
	Type      string    `bson:"type"`
	TokenId   uint64    `bson:"tokenId,omitempty"`
	AuctionId uint64    `bson:"auctionId,omitempty"`
	From      string    `bson:"from,omitempty"`
	To        string    `bson:"to,omitempty"`
	Amount    string    `bson:"amount,omitempty"`
	Time      time.Time `bson:"time"`
}

func amountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func toStateDoc(s ledger.State) *stateDoc {
	return &stateDoc{
		Key:               stateKey,
		ListingFeePercent: s.Fees.ListingFeePercent,
		RoyaltyPercent:    s.Fees.RoyaltyPercent,
		LastTokenId:       uint64(s.LastTokenId),
		LastAuctionId:     uint64(s.LastAuctionId),
		LastEventSeq:      s.LastEventSeq,
	}
}

func (d *stateDoc) toState() *ledger.State {
	return &ledger.State{
		Fees: ledger.FeeConfig{
			ListingFeePercent: d.ListingFeePercent,
			RoyaltyPercent:    d.RoyaltyPercent,
		},
		LastTokenId:   domain.TokenId(d.LastTokenId),
		LastAuctionId: ledger.AuctionId(d.LastAuctionId),
		LastEventSeq:  d.LastEventSeq,
	}
}

func toListingDoc(l *ledger.Listing) *listingDoc {
	return &listingDoc{
		TokenId:    uint64(l.TokenId),
		Owner:      l.Owner.ToLowerStr(),
		Seller:     l.Seller.ToLowerStr(),
		Creator:    l.Creator.ToLowerStr(),
		Price:      amountString(l.Price),
		TokenURI:   l.TokenURI,
		Active:     l.Active,
		DateListed: l.DateListed,
	}
}

func (d *listingDoc) toListing() (*ledger.Listing, error) {
	price, err := domain.ParseAmount(d.Price)
	if err != nil {
		return nil, err
	}
	return &ledger.Listing{
		TokenId:    domain.TokenId(d.TokenId),
		Owner:      domain.Address(d.Owner),
		Seller:     domain.Address(d.Seller),
		Creator:    domain.Address(d.Creator),
		Price:      price,
		TokenURI:   d.TokenURI,
		Active:     d.Active,
		DateListed: d.DateListed,
	}, nil
}

func toAuctionDoc(a *ledger.Auction) *auctionDoc {
	return &auctionDoc{
		AuctionId:     uint64(a.Id),
		TokenId:       uint64(a.TokenId),
		Seller:        a.Seller.ToLowerStr(),
		HighestBid:    amountString(a.HighestBid),
		HighestBidder: a.HighestBidder.ToLowerStr(),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Active:        a.Active,
		FinalizedAt:   a.FinalizedAt,
	}
}

func (d *auctionDoc) toAuction() (*ledger.Auction, error) {
	bid, err := domain.ParseAmount(d.HighestBid)
	if err != nil {
		return nil, err
	}
	return &ledger.Auction{
		Id:            ledger.AuctionId(d.AuctionId),
		TokenId:       domain.TokenId(d.TokenId),
		Seller:        domain.Address(d.Seller),
		HighestBid:    bid,
		HighestBidder: domain.Address(d.HighestBidder),
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Active:        d.Active,
		FinalizedAt:   d.FinalizedAt,
	}, nil
}

func toEventDoc(e *ledger.Event) *eventDoc {
	d := &eventDoc{
		Id:        e.Id,
		Seq:       e.Seq,
		Type:      string(e.Type),
		TokenId:   uint64(e.TokenId),
		AuctionId: uint64(e.AuctionId),
		From:      e.From.ToLowerStr(),
		To:        e.To.ToLowerStr(),
		Time:      e.Time,
	}
	if e.Amount != nil {
		d.Amount = e.Amount.String()
	}
	return d
}

func (d *eventDoc) toEvent() (*ledger.Event, error) {
	e := &ledger.Event{
		Id:        d.Id,
		Seq:       d.Seq,
		Type:      ledger.EventType(d.Type),
		TokenId:   domain.TokenId(d.TokenId),
		AuctionId: ledger.AuctionId(d.AuctionId),
		From:      domain.Address(d.From),
		To:        domain.Address(d.To),
		Time:      d.Time,
	}
	if d.Amount != "" {
		amount, err := domain.ParseAmount(d.Amount)
		if err != nil {
			return nil, err
		}
		e.Amount = amount
	}
	return e, nil
}
