package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/middleware"
	"github.com/tripline/tripline-backend/types"
)

func newUserRouter(model UserModelInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/line/user", NewUserHandler(model).UpsertUser)
	return r
}

func TestUpsertUser(t *testing.T) {
	model := new(mockUserModel)
	model.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u *types.User) bool {
		return u.LineUserID == "U123" && u.DisplayName == "Mei" && u.PictureURL == "https://img.example/p.png"
	})).Return(nil)

	w := performJSON(newUserRouter(model), http.MethodPost, "/line/user", gin.H{
		"userId":      "U123",
		"displayName": "Mei",
		"pictureUrl":  "https://img.example/p.png",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	model.AssertExpectations(t)
}

func TestUpsertUserMissingID(t *testing.T) {
	model := new(mockUserModel)
	model.On("UpsertUser", mock.Anything, mock.Anything).
		Return(apperrors.ValidationFailed("Missing required field", "line_user_id"))

	w := performJSON(newUserRouter(model), http.MethodPost, "/line/user", gin.H{
		"displayName": "Mei",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
