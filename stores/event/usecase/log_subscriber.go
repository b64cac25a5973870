package usecase

import (
	"github.com/x-xyz/ledger/base/amount"
	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/log"
	"github.com/x-xyz/ledger/domain/ledger"
)

type logSubscriber struct{}

// NewLogSubscriber writes every ledger event to the structured log
func NewLogSubscriber() ledger.Subscriber {
	return &logSubscriber{}
}

func (s *logSubscriber) Name() string {
	return "log"
}

func (s *logSubscriber) Handle(c ctx.Ctx, e *ledger.Event) error {
	fields := log.Fields{
		"id":   e.Id,
		"seq":  e.Seq,
		"type": e.Type,
		"time": e.Time,
	}
	if e.TokenId != 0 {
		fields["tokenId"] = e.TokenId
	}
	if e.AuctionId != 0 {
		fields["auctionId"] = e.AuctionId
	}
	if !e.From.IsZero() {
		fields["from"] = e.From
	}
	if !e.To.IsZero() {
		fields["to"] = e.To
	}
	if e.Amount != nil {
		fields["amount"] = e.Amount.String()
		fields["ether"] = amount.FormatEther(e.Amount)
	}
	c.WithFields(fields).Info("ledger event")
	return nil
}
