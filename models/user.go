package models

import (
	"context"

	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/db"
	"github.com/tripline/tripline-backend/types"
)

// UserModel wraps profile persistence with input validation.
type UserModel struct {
	store db.UserStore
}

func NewUserModel(store db.UserStore) *UserModel {
	return &UserModel{store: store}
}

// UpsertUser creates the profile on first contact and refreshes it on
// every later one.
func (um *UserModel) UpsertUser(ctx context.Context, user *types.User) error {
	if user.LineUserID == "" {
		return apperrors.ValidationFailed("Missing required field", "line_user_id")
	}

	if err := um.store.UpsertUser(ctx, *user); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
