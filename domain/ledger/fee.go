package ledger

import (
	"math/big"

	"github.com/x-xyz/ledger/domain"
)

const MaxPercent = 100

// FeeConfig holds the marketplace wide percentages applied on every sale
type FeeConfig struct {
	ListingFeePercent int `json:"listingFeePercent"`
	RoyaltyPercent    int `json:"royaltyPercent"`
}

func (f FeeConfig) Validate() error {
	if f.ListingFeePercent < 0 || f.ListingFeePercent > MaxPercent {
		return ErrInvalidPercent
	}
	if f.RoyaltyPercent < 0 || f.RoyaltyPercent > MaxPercent {
		return ErrInvalidPercent
	}
	if f.ListingFeePercent+f.RoyaltyPercent > MaxPercent {
		return ErrInvalidPercent
	}
	return nil
}

// Split divides price into royalty, listing fee and seller proceeds. Each
// percentage share truncates toward zero and the seller gets the remainder,
// so the three parts always add up to price.
func (f FeeConfig) Split(price *big.Int) Split {
	royalty := percentOf(price, f.RoyaltyPercent)
	fee := percentOf(price, f.ListingFeePercent)
	proceeds := new(big.Int).Sub(price, royalty)
	proceeds.Sub(proceeds, fee)
	return Split{
		Price:          new(big.Int).Set(price),
		Royalty:        royalty,
		ListingFee:     fee,
		SellerProceeds: proceeds,
	}
}

func percentOf(v *big.Int, percent int) *big.Int {
	res := new(big.Int).Mul(v, big.NewInt(int64(percent)))
	return res.Quo(res, domain.Big100)
}

type Split struct {
	Price          *big.Int `json:"price"`
	Royalty        *big.Int `json:"royalty"`
	ListingFee     *big.Int `json:"listingFee"`
	SellerProceeds *big.Int `json:"sellerProceeds"`
}

// Settlement is the outcome of a sale, at fixed price or by auction
type Settlement struct {
	TokenId          domain.TokenId `json:"tokenId"`
	Buyer            domain.Address `json:"buyer"`
	Seller           domain.Address `json:"seller"`
	Creator          domain.Address `json:"creator"`
	MarketplaceOwner domain.Address `json:"marketplaceOwner"`
	Split            Split          `json:"split"`
}
