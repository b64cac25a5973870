package ledger

import (
	"math/big"
	"time"

	"github.com/x-xyz/ledger/domain"
)

type AuctionId uint64

// Auction is one bidding round on a token. A token can be auctioned many
// times, but at most one auction per token is active.
type Auction struct {
	Id            AuctionId      `json:"id"`
	TokenId       domain.TokenId `json:"tokenId"`
	Seller        domain.Address `json:"seller"`
	HighestBid    *big.Int       `json:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       time.Time      `json:"endTime"`
	Active        bool           `json:"active"`
	FinalizedAt   *time.Time     `json:"finalizedAt,omitempty"`
}

func (a *Auction) Clone() *Auction {
	res := *a
	res.HighestBid = new(big.Int).Set(a.HighestBid)
	if a.FinalizedAt != nil {
		t := *a.FinalizedAt
		res.FinalizedAt = &t
	}
	return &res
}

// Ended reports whether bidding is over at now, endTime itself is included
func (a *Auction) Ended(now time.Time) bool {
	return !now.Before(a.EndTime)
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}

// AuctionedNFT is an active auction together with its listing
type AuctionedNFT struct {
	Listing *Listing `json:"listing"`
	Auction *Auction `json:"auction"`
}

// AuctionResult describes how a finalized auction was settled. Settlement is
// nil when the auction closed without bids.
type AuctionResult struct {
	Auction    *Auction    `json:"auction"`
	Settlement *Settlement `json:"settlement,omitempty"`
}
