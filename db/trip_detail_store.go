package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

// TripDetailDB implements TripDetailStore on PostgreSQL.
type TripDetailDB struct {
	pool PGXPool
}

func NewTripDetailDB(pool PGXPool) *TripDetailDB {
	return &TripDetailDB{pool: pool}
}

// Times live in TIME columns; they cross the wire as HH:MM strings.
const detailColumns = `detail_id, trip_id, location, date,
               to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at`

func (ddb *TripDetailDB) CreateDetail(ctx context.Context, detail types.TripDetail) (int64, error) {
	log := logger.GetLogger()
	var detailID int64

	err := ddb.pool.QueryRow(ctx, `
        INSERT INTO line_trip_details (trip_id, location, date, start_time, end_time)
        VALUES ($1, $2, $3, $4::time, $5::time)
        RETURNING detail_id`,
		detail.TripID,
		detail.Location,
		detail.Date,
		detail.StartTime,
		detail.EndTime,
	).Scan(&detailID)

	if err != nil {
		log.Errorw("Failed to create trip detail", "tripId", detail.TripID, "error", err)
		return 0, err
	}
	return detailID, nil
}

func (ddb *TripDetailDB) GetDetail(ctx context.Context, id int64) (*types.TripDetail, error) {
	var detail types.TripDetail
	err := ddb.pool.QueryRow(ctx, `
        SELECT `+detailColumns+`
        FROM line_trip_details
        WHERE detail_id = $1`, id).Scan(
		&detail.ID,
		&detail.TripID,
		&detail.Location,
		&detail.Date,
		&detail.StartTime,
		&detail.EndTime,
		&detail.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (ddb *TripDetailDB) UpdateDetail(ctx context.Context, id int64, update types.TripDetailUpdate) error {
	log := logger.GetLogger()

	tag, err := ddb.pool.Exec(ctx, `
        UPDATE line_trip_details
        SET location = $1, date = $2, start_time = $3::time, end_time = $4::time
        WHERE detail_id = $5`,
		update.Location,
		update.Date,
		update.StartTime,
		update.EndTime,
		id,
	)
	if err != nil {
		log.Errorw("Failed to update trip detail", "detailId", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (ddb *TripDetailDB) DeleteDetail(ctx context.Context, id int64) error {
	log := logger.GetLogger()

	tag, err := ddb.pool.Exec(ctx,
		`DELETE FROM line_trip_details WHERE detail_id = $1`, id)
	if err != nil {
		log.Errorw("Failed to delete trip detail", "detailId", id, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListDetails returns a trip's details ordered by (date, start_time)
// ascending. An empty slice, not an error, when the trip has none.
func (ddb *TripDetailDB) ListDetails(ctx context.Context, tripID int64) ([]*types.TripDetail, error) {
	log := logger.GetLogger()

	rows, err := ddb.pool.Query(ctx, `
        SELECT `+detailColumns+`
        FROM line_trip_details
        WHERE trip_id = $1
        ORDER BY date ASC, start_time ASC`, tripID)
	if err != nil {
		log.Errorw("Failed to list trip details", "tripId", tripID, "error", err)
		return nil, err
	}
	defer rows.Close()

	details := make([]*types.TripDetail, 0)
	for rows.Next() {
		var detail types.TripDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.TripID,
			&detail.Location,
			&detail.Date,
			&detail.StartTime,
			&detail.EndTime,
			&detail.CreatedAt,
		); err != nil {
			return nil, err
		}
		details = append(details, &detail)
	}
	return details, rows.Err()
}
