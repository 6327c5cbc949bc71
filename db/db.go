package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tripline/tripline-backend/types"
)

// PGXPool is the subset of pgxpool.Pool behavior the stores depend on.
// pgxmock satisfies it too, which keeps the stores testable without a
// live database.
type PGXPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists LINE user profiles.
type UserStore interface {
	UpsertUser(ctx context.Context, user types.User) error
}

// TripStore persists trips and the collaborator records hanging off them.
type TripStore interface {
	CreateTrip(ctx context.Context, trip types.Trip) (int64, error)
	GetTrip(ctx context.Context, id int64) (*types.Trip, error)
	UpdateTrip(ctx context.Context, id int64, update types.TripUpdate) error
	DeleteTrip(ctx context.Context, id int64) error
	ListVisibleTrips(ctx context.Context, userID string) ([]*types.Trip, error)
	UpsertShare(ctx context.Context, tripID int64, sharedUserID string) error
}

// TripDetailStore persists the scheduled activities within a trip.
type TripDetailStore interface {
	CreateDetail(ctx context.Context, detail types.TripDetail) (int64, error)
	GetDetail(ctx context.Context, id int64) (*types.TripDetail, error)
	UpdateDetail(ctx context.Context, id int64, update types.TripDetailUpdate) error
	DeleteDetail(ctx context.Context, id int64) error
	ListDetails(ctx context.Context, tripID int64) ([]*types.TripDetail, error)
}

// Store provides access to all database operations.
type Store struct {
	pool        PGXPool
	Users       UserStore
	Trips       TripStore
	TripDetails TripDetailStore
}

// NewStore creates a new database store backed by the given pool.
func NewStore(pool PGXPool) *Store {
	return &Store{
		pool:        pool,
		Users:       &UserDB{pool: pool},
		Trips:       &TripDB{pool: pool},
		TripDetails: &TripDetailDB{pool: pool},
	}
}

// WithTx runs fn inside a transaction. The transaction commits only when
// fn returns nil; any error rolls back every statement issued in fn.
func WithTx(ctx context.Context, pool PGXPool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
