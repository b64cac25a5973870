package query

/*
	Description:
		Package `query` provides interface for querying mongo db
		This pachage is basicly nothing but wrap https://github.com/mongodb/mongo-go-driver
		so please read document at following link for any detail
		https://godoc.org/go.mongodb.org/mongo-driver/mongo
*/

import (
	"fmt"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// UpsertOp is an upsert operation.
type UpsertOp struct {
	Selector interface{}
	Updater  interface{}
}

// Index describes a collection index, keys in order
type Index struct {
	Keys   []string
	Unique bool
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// InsertMany inserts documents to the table in order
	InsertMany(context ctx.Ctx, table domain.Table, inserts []interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Upsert update an entry , if the selector is already exist.
	// Upsert insert an entry , if the selector is not exist.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and the MongoDB does not guarantee the order of query results.
	// limit 0 means no limit.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// BulkUpsert performs multiple upsert operations.
	// Note that upsert operations are executed in a non-deterministic order.
	BulkUpsert(context ctx.Ctx, table domain.Table, BulkOps []UpsertOp) (matchedCnt int64, modifiedCnt int64, err error)

	// EnsureIndexes creates the indexes of the table if missing
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes []Index) error

	// RunWithTransaction runs `run` in a transaction, the ctx passed to `run`
	// must be used for every query that belongs to the transaction
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
