package ledger

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/domain"
)

var (
	ErrTokenNotFound   = xerrors.Errorf("token not found: %w", domain.ErrNotFound)
	ErrAuctionNotFound = xerrors.Errorf("auction not found: %w", domain.ErrNotFound)

	ErrNotOwner            = xerrors.Errorf("caller is not the token owner: %w", domain.ErrUnauthorized)
	ErrNotMarketplaceOwner = xerrors.Errorf("caller is not the marketplace owner: %w", domain.ErrUnauthorized)

	ErrInvalidPrice      = xerrors.Errorf("price must be greater than zero: %w", domain.ErrInvalidArgument)
	ErrInvalidRecipient  = xerrors.Errorf("invalid recipient: %w", domain.ErrInvalidArgument)
	ErrPaymentMismatch   = xerrors.Errorf("payment does not match price: %w", domain.ErrInvalidArgument)
	ErrNotListed         = xerrors.Errorf("token is not listed for sale: %w", domain.ErrInvalidArgument)
	ErrBuyOwnToken       = xerrors.Errorf("seller cannot buy own token: %w", domain.ErrInvalidArgument)
	ErrInvalidDuration   = xerrors.Errorf("auction duration must be positive: %w", domain.ErrInvalidArgument)
	ErrSelfBid           = xerrors.Errorf("seller cannot bid on own auction: %w", domain.ErrInvalidArgument)
	ErrInvalidPercent    = xerrors.Errorf("percent out of range: %w", domain.ErrInvalidArgument)
	ErrNothingToWithdraw = xerrors.Errorf("no balance to withdraw: %w", domain.ErrInvalidArgument)

	ErrAuctionActive = xerrors.Errorf("token is on auction: %w", domain.ErrConflict)
	ErrAuctionClosed = xerrors.Errorf("auction is not active: %w", domain.ErrConflict)

	ErrBidAfterEnd     = xerrors.Errorf("auction has ended: %w", domain.ErrAuctionExpired)
	ErrAuctionNotEnded = xerrors.Errorf("auction has not ended: %w", domain.ErrAuctionNotExpired)
	ErrBidTooLow       = xerrors.Errorf("bid must exceed the highest bid: %w", domain.ErrInsufficientBid)
)
