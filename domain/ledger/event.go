package ledger

import (
	"math/big"
	"time"

	"github.com/x-xyz/ledger/domain"
)

type EventType string

const (
	EventTypeMint          EventType = "mint"
	EventTypeTransfer      EventType = "transfer"
	EventTypeList          EventType = "list"
	EventTypeCancelListing EventType = "cancelListing"

	// sale and its payouts
	EventTypeSale           EventType = "sale"
	EventTypeRoyaltyPaid    EventType = "royaltyPaid"
	EventTypeListingFeePaid EventType = "listingFeePaid"
	EventTypeSellerPaid     EventType = "sellerPaid"

	// auction
	EventTypeCreateAuction EventType = "createAuction"
	EventTypePlaceBid      EventType = "placeBid"
	EventTypeBidRefunded   EventType = "bidRefunded"
	EventTypeResultAuction EventType = "resultAuction"

	// configuration
	EventTypeUpdateListingFeePercent EventType = "updateListingFeePercent"
	EventTypeUpdateRoyaltyPercent    EventType = "updateRoyaltyPercent"

	EventTypeWithdraw EventType = "withdraw"
)

var eventTypes = map[EventType]struct{}{
	EventTypeMint: {}, EventTypeTransfer: {}, EventTypeList: {}, EventTypeCancelListing: {},
	EventTypeSale: {}, EventTypeRoyaltyPaid: {}, EventTypeListingFeePaid: {}, EventTypeSellerPaid: {},
	EventTypeCreateAuction: {}, EventTypePlaceBid: {}, EventTypeBidRefunded: {}, EventTypeResultAuction: {},
	EventTypeUpdateListingFeePercent: {}, EventTypeUpdateRoyaltyPercent: {}, EventTypeWithdraw: {},
}

func (t EventType) IsValid() bool {
	_, ok := eventTypes[t]
	return ok
}

// Event is an entry of the ledger log. Seq is strictly increasing in commit
// order. TokenId and AuctionId are zero for events not bound to a token.
type Event struct {
	Id        string         `json:"id"`
	Seq       uint64         `json:"seq"`
	Type      EventType      `json:"type"`
	TokenId   domain.TokenId `json:"tokenId,omitempty"`
	AuctionId AuctionId      `json:"auctionId,omitempty"`
	From      domain.Address `json:"from,omitempty"`
	To        domain.Address `json:"to,omitempty"`
	Amount    *big.Int       `json:"amount,omitempty"`
	Time      time.Time      `json:"time"`
}

func (e *Event) Clone() *Event {
	res := *e
	if e.Amount != nil {
		res.Amount = new(big.Int).Set(e.Amount)
	}
	return &res
}

type findEventOptions struct {
	Offset  *int
	Limit   *int
	Account *domain.Address
	TokenId *domain.TokenId
	Types   []EventType
	SeqGT   *uint64
}

type FindEventOptions func(*findEventOptions) error

func GetFindEventOptions(opts ...FindEventOptions) (*findEventOptions, error) {
	res := &findEventOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func EventWithPagination(offset, limit int) FindEventOptions {
	return func(opts *findEventOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

// EventWithAccount matches events sent from or to account
func EventWithAccount(account domain.Address) FindEventOptions {
	return func(opts *findEventOptions) error {
		opts.Account = account.ToLowerPtr()
		return nil
	}
}

func EventWithTokenId(tokenId domain.TokenId) FindEventOptions {
	return func(opts *findEventOptions) error {
		opts.TokenId = &tokenId
		return nil
	}
}

func EventWithTypes(types ...EventType) FindEventOptions {
	return func(opts *findEventOptions) error {
		for _, t := range types {
			if !t.IsValid() {
				return domain.ErrBadParamInput
			}
		}
		opts.Types = types
		return nil
	}
}

func EventWithSeqGT(seq uint64) FindEventOptions {
	return func(opts *findEventOptions) error {
		opts.SeqGT = &seq
		return nil
	}
}

// Match applies the options to a single event, for stores without a query engine
func (o *findEventOptions) Match(e *Event) bool {
	if o.Account != nil && !e.From.Equals(*o.Account) && !e.To.Equals(*o.Account) {
		return false
	}
	if o.TokenId != nil && e.TokenId != *o.TokenId {
		return false
	}
	if o.SeqGT != nil && e.Seq <= *o.SeqGT {
		return false
	}
	if len(o.Types) > 0 {
		found := false
		for _, t := range o.Types {
			if e.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
