package db

import (
	"context"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

// UserDB implements UserStore on PostgreSQL.
type UserDB struct {
	pool PGXPool
}

func NewUserDB(pool PGXPool) *UserDB {
	return &UserDB{pool: pool}
}

// UpsertUser inserts a profile on first contact and refreshes the display
// name and picture URL on subsequent ones.
func (udb *UserDB) UpsertUser(ctx context.Context, user types.User) error {
	log := logger.GetLogger()

	_, err := udb.pool.Exec(ctx, `
        INSERT INTO line_users (line_user_id, display_name, picture_url)
        VALUES ($1, $2, $3)
        ON CONFLICT (line_user_id) DO UPDATE
        SET display_name = EXCLUDED.display_name,
            picture_url  = EXCLUDED.picture_url,
            updated_at   = CURRENT_TIMESTAMP`,
		user.LineUserID,
		user.DisplayName,
		user.PictureURL,
	)
	if err != nil {
		log.Errorw("Failed to upsert user", "lineUserId", user.LineUserID, "error", err)
		return err
	}
	return nil
}
