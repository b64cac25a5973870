package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/log"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
	"github.com/x-xyz/ledger/service/query"
)

var indexes = map[domain.Table][]query.Index{
	domain.TableLedgerListings: {
		{Keys: []string{"tokenId"}, Unique: true},
		{Keys: []string{"owner", "tokenId"}},
		{Keys: []string{"active", "tokenId"}},
	},
	domain.TableLedgerAuctions: {
		{Keys: []string{"auctionId"}, Unique: true},
		{Keys: []string{"tokenId", "-auctionId"}},
	},
	domain.TableLedgerBalances: {
		{Keys: []string{"address"}, Unique: true},
	},
	domain.TableLedgerEvents: {
		{Keys: []string{"seq"}, Unique: true},
		{Keys: []string{"from", "-seq"}},
		{Keys: []string{"to", "-seq"}},
		{Keys: []string{"tokenId", "-seq"}},
		{Keys: []string{"type", "-seq"}},
	},
}

// EnsureIndexes creates the indexes the mongo repo queries rely on
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	for table, idx := range indexes {
		if err := q.EnsureIndexes(c, table, idx); err != nil {
			c.WithFields(log.Fields{"table": table, "err": err}).Error("q.EnsureIndexes failed")
			return err
		}
	}
	return nil
}

func makeFindQuery(optFns ...ledger.FindEventOptions) (bson.M, error) {
	opts, err := ledger.GetFindEventOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"from": opts.Account.ToLowerStr()},
			bson.M{"to": opts.Account.ToLowerStr()},
		}
	}

	if opts.TokenId != nil {
		qry["tokenId"] = uint64(*opts.TokenId)
	}

	if opts.SeqGT != nil {
		qry["seq"] = bson.M{"$gt": *opts.SeqGT}
	}

	if len(opts.Types) > 1 {
		types := make(bson.A, 0, len(opts.Types))
		for _, t := range opts.Types {
			types = append(types, string(t))
		}
		qry["type"] = bson.M{"$in": types}
	} else if len(opts.Types) > 0 {
		qry["type"] = string(opts.Types[0])
	}

	return qry, nil
}

type mongoRepo struct {
	q query.Mongo
}

func NewMongo(q query.Mongo) ledger.Repo {
	return &mongoRepo{q: q}
}

func (r *mongoRepo) Load(c ctx.Ctx) (*ledger.Snapshot, error) {
	s := &ledger.Snapshot{Balances: map[domain.Address]*big.Int{}}

	state := stateDoc{}
	if err := r.q.FindOne(c, domain.TableLedgerState, bson.M{"_id": stateKey}, &state); err == nil {
		s.State = state.toState()
	} else if err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne state failed")
		return nil, err
	}

	listings := []listingDoc{}
	if err := r.q.Search(c, domain.TableLedgerListings, 0, 0, "tokenId", bson.M{}, &listings); err != nil {
		c.WithField("err", err).Error("q.Search listings failed")
		return nil, err
	}
	for i := range listings {
		l, err := listings[i].toListing()
		if err != nil {
			c.WithFields(log.Fields{"tokenId": listings[i].TokenId, "err": err}).Error("toListing failed")
			return nil, err
		}
		s.Listings = append(s.Listings, l)
	}

	auctions := []auctionDoc{}
	if err := r.q.Search(c, domain.TableLedgerAuctions, 0, 0, "auctionId", bson.M{}, &auctions); err != nil {
		c.WithField("err", err).Error("q.Search auctions failed")
		return nil, err
	}
	for i := range auctions {
		a, err := auctions[i].toAuction()
		if err != nil {
			c.WithFields(log.Fields{"auctionId": auctions[i].AuctionId, "err": err}).Error("toAuction failed")
			return nil, err
		}
		s.Auctions = append(s.Auctions, a)
	}

	balances := []balanceDoc{}
	if err := r.q.Search(c, domain.TableLedgerBalances, 0, 0, "", bson.M{}, &balances); err != nil {
		c.WithField("err", err).Error("q.Search balances failed")
		return nil, err
	}
	for _, b := range balances {
		v, err := domain.ParseAmount(b.Balance)
		if err != nil {
			c.WithFields(log.Fields{"address": b.Address, "err": err}).Error("domain.ParseAmount failed")
			return nil, err
		}
		s.Balances[domain.Address(b.Address)] = v
	}

	return s, nil
}

func (r *mongoRepo) Commit(c ctx.Ctx, cs *ledger.Changeset) error {
	listingOps := make([]query.UpsertOp, 0, len(cs.Listings))
	for _, l := range cs.Listings {
		listingOps = append(listingOps, query.UpsertOp{
			Selector: bson.M{"tokenId": uint64(l.TokenId)},
			Updater:  toListingDoc(l),
		})
	}
	auctionOps := make([]query.UpsertOp, 0, len(cs.Auctions))
	for _, a := range cs.Auctions {
		auctionOps = append(auctionOps, query.UpsertOp{
			Selector: bson.M{"auctionId": uint64(a.Id)},
			Updater:  toAuctionDoc(a),
		})
	}
	balanceOps := make([]query.UpsertOp, 0, len(cs.Balances))
	for addr, b := range cs.Balances {
		balanceOps = append(balanceOps, query.UpsertOp{
			Selector: bson.M{"address": addr.ToLowerStr()},
			Updater:  &balanceDoc{Address: addr.ToLowerStr(), Balance: amountString(b)},
		})
	}
	events := make([]interface{}, 0, len(cs.Events))
	for _, e := range cs.Events {
		events = append(events, toEventDoc(e))
	}

	return r.q.RunWithTransaction(c, func(tc ctx.Ctx) error {
		if err := r.q.Upsert(tc, domain.TableLedgerState, bson.M{"_id": stateKey}, toStateDoc(cs.State)); err != nil {
			tc.WithField("err", err).Error("q.Upsert state failed")
			return err
		}
		for table, ops := range map[domain.Table][]query.UpsertOp{
			domain.TableLedgerListings: listingOps,
			domain.TableLedgerAuctions: auctionOps,
			domain.TableLedgerBalances: balanceOps,
		} {
			if len(ops) == 0 {
				continue
			}
			if _, _, err := r.q.BulkUpsert(tc, table, ops); err != nil {
				tc.WithFields(log.Fields{"table": table, "err": err}).Error("q.BulkUpsert failed")
				return err
			}
		}
		if err := r.q.InsertMany(tc, domain.TableLedgerEvents, events); err != nil {
			tc.WithField("err", err).Error("q.InsertMany events failed")
			return err
		}
		return nil
	})
}

func (r *mongoRepo) FindEvents(c ctx.Ctx, optFns ...ledger.FindEventOptions) ([]*ledger.Event, error) {
	opts, err := ledger.GetFindEventOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("ledger.GetFindEventOptions failed")
		return nil, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	docs := []eventDoc{}
	if err := r.q.Search(c, domain.TableLedgerEvents, offset, limit, "-seq", qry, &docs); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	res := make([]*ledger.Event, 0, len(docs))
	for i := range docs {
		e, err := docs[i].toEvent()
		if err != nil {
			c.WithFields(log.Fields{"seq": docs[i].Seq, "err": err}).Error("toEvent failed")
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}
