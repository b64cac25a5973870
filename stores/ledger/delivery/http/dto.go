package http

import (
	"math/big"
	"time"

	"github.com/x-xyz/ledger/base/amount"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
)

// Amounts leave the api as wei strings, the ether fields are for display only

type listingResp struct {
	TokenId    domain.TokenId `json:"tokenId"`
	Owner      domain.Address `json:"owner"`
	Seller     domain.Address `json:"seller"`
	Creator    domain.Address `json:"creator"`
	Price      string         `json:"price"`
	PriceEther string         `json:"priceEther"`
	TokenURI   string         `json:"tokenURI"`
	Active     bool           `json:"active"`
	DateListed time.Time      `json:"dateListed"`
}

type auctionResp struct {
	Id              ledger.AuctionId `json:"id"`
	TokenId         domain.TokenId   `json:"tokenId"`
	Seller          domain.Address   `json:"seller"`
	HighestBid      string           `json:"highestBid"`
	HighestBidEther string           `json:"highestBidEther"`
	HighestBidder   domain.Address   `json:"highestBidder,omitempty"`
	StartTime       time.Time        `json:"startTime"`
	EndTime         time.Time        `json:"endTime"`
	Active          bool             `json:"active"`
	FinalizedAt     *time.Time       `json:"finalizedAt,omitempty"`
}

type auctionedNFTResp struct {
	Listing *listingResp `json:"listing"`
	Auction *auctionResp `json:"auction"`
}

type splitResp struct {
	Price          string `json:"price"`
	Royalty        string `json:"royalty"`
	ListingFee     string `json:"listingFee"`
	SellerProceeds string `json:"sellerProceeds"`
	PriceEther     string `json:"priceEther"`
}

type settlementResp struct {
	TokenId          domain.TokenId `json:"tokenId"`
	Buyer            domain.Address `json:"buyer"`
	Seller           domain.Address `json:"seller"`
	Creator          domain.Address `json:"creator"`
	MarketplaceOwner domain.Address `json:"marketplaceOwner"`
	Split            splitResp      `json:"split"`
}

type auctionResultResp struct {
	Auction    *auctionResp    `json:"auction"`
	Settlement *settlementResp `json:"settlement,omitempty"`
}

type balanceResp struct {
	Address      domain.Address `json:"address"`
	Balance      string         `json:"balance"`
	BalanceEther string         `json:"balanceEther"`
}

type eventResp struct {
	Id          string           `json:"id"`
	Seq         uint64           `json:"seq"`
	Type        ledger.EventType `json:"type"`
	TokenId     domain.TokenId   `json:"tokenId,omitempty"`
	AuctionId   ledger.AuctionId `json:"auctionId,omitempty"`
	From        domain.Address   `json:"from,omitempty"`
	To          domain.Address   `json:"to,omitempty"`
	Amount      string           `json:"amount,omitempty"`
	AmountEther string           `json:"amountEther,omitempty"`
	Time        time.Time        `json:"time"`
}

func wei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func toListingResp(l *ledger.Listing) *listingResp {
	return &listingResp{
		TokenId:    l.TokenId,
		Owner:      l.Owner,
		Seller:     l.Seller,
		Creator:    l.Creator,
		Price:      wei(l.Price),
		PriceEther: amount.FormatEther(l.Price),
		TokenURI:   l.TokenURI,
		Active:     l.Active,
		DateListed: l.DateListed,
	}
}

func toListingResps(ls []*ledger.Listing) []*listingResp {
	res := make([]*listingResp, 0, len(ls))
	for _, l := range ls {
		res = append(res, toListingResp(l))
	}
	return res
}

func toAuctionResp(a *ledger.Auction) *auctionResp {
	return &auctionResp{
		Id:              a.Id,
		TokenId:         a.TokenId,
		Seller:          a.Seller,
		HighestBid:      wei(a.HighestBid),
		HighestBidEther: amount.FormatEther(a.HighestBid),
		HighestBidder:   a.HighestBidder,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Active:          a.Active,
		FinalizedAt:     a.FinalizedAt,
	}
}

func toSettlementResp(s *ledger.Settlement) *settlementResp {
	return &settlementResp{
		TokenId:          s.TokenId,
		Buyer:            s.Buyer,
		Seller:           s.Seller,
		Creator:          s.Creator,
		MarketplaceOwner: s.MarketplaceOwner,
		Split: splitResp{
			Price:          wei(s.Split.Price),
			Royalty:        wei(s.Split.Royalty),
			ListingFee:     wei(s.Split.ListingFee),
			SellerProceeds: wei(s.Split.SellerProceeds),
			PriceEther:     amount.FormatEther(s.Split.Price),
		},
	}
}

func toAuctionResultResp(r *ledger.AuctionResult) *auctionResultResp {
	res := &auctionResultResp{Auction: toAuctionResp(r.Auction)}
	if r.Settlement != nil {
		res.Settlement = toSettlementResp(r.Settlement)
	}
	return res
}

func toEventResp(e *ledger.Event) *eventResp {
	res := &eventResp{
		Id:        e.Id,
		Seq:       e.Seq,
		Type:      e.Type,
		TokenId:   e.TokenId,
		AuctionId: e.AuctionId,
		From:      e.From,
		To:        e.To,
		Time:      e.Time,
	}
	if e.Amount != nil {
		res.Amount = e.Amount.String()
		res.AmountEther = amount.FormatEther(e.Amount)
	}
	return res
}
