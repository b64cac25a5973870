package ledger

import (
	"math/big"
	"time"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/domain"
)

// State is the ledger wide record persisted along with every commit
type State struct {
	Fees          FeeConfig      `json:"fees"`
	LastTokenId   domain.TokenId `json:"lastTokenId"`
	LastAuctionId AuctionId      `json:"lastAuctionId"`
	LastEventSeq  uint64         `json:"lastEventSeq"`
}

// Snapshot is the full persisted ledger. State is nil for a fresh store.
type Snapshot struct {
	State    *State
	Listings []*Listing
	Auctions []*Auction
	Balances map[domain.Address]*big.Int
}

// Changeset is everything a single ledger call modified. It is written as
// one unit, a failed commit leaves the store untouched.
type Changeset struct {
	State    State
	Listings []*Listing
	Auctions []*Auction
	Balances map[domain.Address]*big.Int
	Events   []*Event
}

type Usecase interface {
	CreateToken(c ctx.Ctx, caller domain.Address, tokenURI string, price *big.Int) (*Listing, error)
	TradeNFT(c ctx.Ctx, caller, to domain.Address, tokenId domain.TokenId) (*Listing, error)
	SellNFT(c ctx.Ctx, buyer domain.Address, tokenId domain.TokenId, payment *big.Int) (*Settlement, error)
	ListNFT(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId, price *big.Int) (*Listing, error)
	CancelListing(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (*Listing, error)

	AuctionNFT(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId, duration time.Duration) (*Auction, error)
	Bid(c ctx.Ctx, bidder domain.Address, tokenId domain.TokenId, payment *big.Int) (*Auction, error)
	FinalizeAuction(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (*AuctionResult, error)

	UpdateListingFeePercent(c ctx.Ctx, caller domain.Address, percent int) (*FeeConfig, error)
	UpdateRoyaltyPercent(c ctx.Ctx, caller domain.Address, percent int) (*FeeConfig, error)
	GetFeeConfig(c ctx.Ctx) (*FeeConfig, error)
	GetListingFeePercent(c ctx.Ctx) (int, error)
	GetRoyaltyPercent(c ctx.Ctx) (int, error)
	MarketplaceOwner() domain.Address

	GetAllListedNFTs(c ctx.Ctx) ([]*Listing, error)
	GetMyNFTs(c ctx.Ctx, caller domain.Address) ([]*Listing, error)
	GetNFTListing(c ctx.Ctx, tokenId domain.TokenId) (*Listing, error)
	GetAuctionedNFTs(c ctx.Ctx) ([]*AuctionedNFT, error)
	GetAuction(c ctx.Ctx, tokenId domain.TokenId) (*Auction, error)

	BalanceOf(c ctx.Ctx, address domain.Address) (*big.Int, error)
	Withdraw(c ctx.Ctx, caller domain.Address) (*big.Int, error)

	FindEvents(c ctx.Ctx, opts ...FindEventOptions) ([]*Event, error)

	// Restore replaces the in-memory ledger with the persisted snapshot
	Restore(c ctx.Ctx) error
}

type Repo interface {
	Load(c ctx.Ctx) (*Snapshot, error)
	Commit(c ctx.Ctx, cs *Changeset) error
	FindEvents(c ctx.Ctx, opts ...FindEventOptions) ([]*Event, error)
}

// Publisher receives committed events in commit order
type Publisher interface {
	Publish(c ctx.Ctx, events []*Event)
}

// Dispatcher fans published events out to subscribers
type Dispatcher interface {
	Publisher
	// Close stops accepting events and waits for pending deliveries
	Close()
}

// Subscriber consumes events fanned out by a Publisher
type Subscriber interface {
	Name() string
	Handle(c ctx.Ctx, e *Event) error
}
