package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

// TripDB implements TripStore on PostgreSQL.
type TripDB struct {
	pool PGXPool
}

func NewTripDB(pool PGXPool) *TripDB {
	return &TripDB{pool: pool}
}

const tripColumns = `trip_id, line_user_id, title, description, start_date, end_date,
               area, tags, budget, preferred_gender, created_at, updated_at`

func (tdb *TripDB) CreateTrip(ctx context.Context, trip types.Trip) (int64, error) {
	log := logger.GetLogger()
	var tripID int64

	err := tdb.pool.QueryRow(ctx, `
        INSERT INTO line_trips (
            line_user_id, title, description, start_date, end_date,
            area, tags, budget, preferred_gender
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING trip_id`,
		trip.LineUserID,
		trip.Title,
		trip.Description,
		trip.StartDate,
		trip.EndDate,
		trip.Area,
		trip.Tags,
		trip.Budget,
		trip.PreferredGender,
	).Scan(&tripID)

	if err != nil {
		log.Errorw("Failed to create trip", "error", err)
		return 0, err
	}
	return tripID, nil
}

func (tdb *TripDB) GetTrip(ctx context.Context, id int64) (*types.Trip, error) {
	var trip types.Trip
	err := tdb.pool.QueryRow(ctx, `
        SELECT `+tripColumns+`
        FROM line_trips
        WHERE trip_id = $1`, id).Scan(
		&trip.ID,
		&trip.LineUserID,
		&trip.Title,
		&trip.Description,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Area,
		&trip.Tags,
		&trip.Budget,
		&trip.PreferredGender,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTrip overwrites the whole mutable field set. Callers resend the
// entire record; zero fields replace the stored values.
func (tdb *TripDB) UpdateTrip(ctx context.Context, id int64, update types.TripUpdate) error {
	log := logger.GetLogger()

	tag, err := tdb.pool.Exec(ctx, `
        UPDATE line_trips
        SET title = $1, description = $2, start_date = $3, end_date = $4,
            area = $5, tags = $6, budget = $7, preferred_gender = $8,
            updated_at = CURRENT_TIMESTAMP
        WHERE trip_id = $9`,
		update.Title,
		update.Description,
		update.StartDate,
		update.EndDate,
		update.Area,
		update.Tags,
		update.Budget,
		update.PreferredGender,
		id,
	)
	if err != nil {
		log.Errorw("Failed to update trip", "tripId", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteTrip removes a trip and all of its details in one transaction.
// Either both deletions commit or neither does.
func (tdb *TripDB) DeleteTrip(ctx context.Context, id int64) error {
	log := logger.GetLogger()

	return WithTx(ctx, tdb.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM line_trip_details WHERE trip_id = $1`, id); err != nil {
			log.Errorw("Failed to delete trip details", "tripId", id, "error", err)
			return err
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM line_trips WHERE trip_id = $1`, id)
		if err != nil {
			log.Errorw("Failed to delete trip", "tripId", id, "error", err)
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

// ListVisibleTrips returns the trips a user owns plus the ones shared with
// them. UNION deduplicates by row identity; ordering is ascending start
// date with the trip id as a stable tiebreak.
func (tdb *TripDB) ListVisibleTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	log := logger.GetLogger()

	rows, err := tdb.pool.Query(ctx, `
        SELECT `+tripColumns+`
        FROM line_trips
        WHERE line_user_id = $1
        UNION
        SELECT t.trip_id, t.line_user_id, t.title, t.description, t.start_date, t.end_date,
               t.area, t.tags, t.budget, t.preferred_gender, t.created_at, t.updated_at
        FROM line_trips t
        JOIN line_trip_shares s ON s.trip_id = t.trip_id
        WHERE s.shared_user_id = $1
        ORDER BY start_date ASC, trip_id ASC`, userID)
	if err != nil {
		log.Errorw("Failed to list trips", "lineUserId", userID, "error", err)
		return nil, err
	}
	defer rows.Close()

	trips := make([]*types.Trip, 0)
	for rows.Next() {
		var trip types.Trip
		if err := rows.Scan(
			&trip.ID,
			&trip.LineUserID,
			&trip.Title,
			&trip.Description,
			&trip.StartDate,
			&trip.EndDate,
			&trip.Area,
			&trip.Tags,
			&trip.Budget,
			&trip.PreferredGender,
			&trip.CreatedAt,
			&trip.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}
	return trips, rows.Err()
}

// UpsertShare records that a trip is shared with a user. Re-sharing the
// same pair only advances the timestamp, never duplicates the row.
func (tdb *TripDB) UpsertShare(ctx context.Context, tripID int64, sharedUserID string) error {
	log := logger.GetLogger()

	_, err := tdb.pool.Exec(ctx, `
        INSERT INTO line_trip_shares (trip_id, shared_user_id, shared_at)
        VALUES ($1, $2, CURRENT_TIMESTAMP)
        ON CONFLICT (trip_id, shared_user_id) DO UPDATE
        SET shared_at = CURRENT_TIMESTAMP`,
		tripID, sharedUserID,
	)
	if err != nil {
		log.Errorw("Failed to share trip", "tripId", tripID, "sharedUserId", sharedUserID, "error", err)
		return err
	}
	return nil
}
