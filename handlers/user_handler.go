package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

// UserHandler upserts LINE user profiles pushed by the frontend.
type UserHandler struct {
	userModel UserModelInterface
}

func NewUserHandler(userModel UserModelInterface) *UserHandler {
	return &UserHandler{userModel: userModel}
}

// UpsertUserRequest mirrors the profile object the LINE client exposes.
type UpsertUserRequest struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	user := &types.User{
		LineUserID:  req.UserID,
		DisplayName: req.DisplayName,
		PictureURL:  req.PictureURL,
	}
	if err := h.userModel.UpsertUser(c.Request.Context(), user); err != nil {
		_ = c.Error(err)
		return
	}

	logger.GetLogger().Infow("User profile upserted", "userId", logger.MaskSensitiveString(req.UserID, 4, 0))
	c.JSON(http.StatusOK, gin.H{"message": "User created/updated successfully"})
}
