package ledger

import (
	"math/big"
	"time"

	"github.com/x-xyz/ledger/domain"
)

// Listing binds a token to its ownership, price and metadata pointer.
// Listings are never removed, a token leaves the market by deactivation.
type Listing struct {
	TokenId    domain.TokenId `json:"tokenId"`
	Owner      domain.Address `json:"owner"`
	Seller     domain.Address `json:"seller"`
	Creator    domain.Address `json:"creator"`
	Price      *big.Int       `json:"price"`
	TokenURI   string         `json:"tokenURI"`
	Active     bool           `json:"active"`
	DateListed time.Time      `json:"dateListed"`
}

func (l *Listing) Clone() *Listing {
	res := *l
	res.Price = new(big.Int).Set(l.Price)
	return &res
}

// TransferTo hands owner and seller role to the new holder and takes the
// token off the market
func (l *Listing) TransferTo(to domain.Address) {
	l.Owner = to
	l.Seller = to
	l.Active = false
}
