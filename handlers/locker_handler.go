package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline-backend/types"
)

// LockerHandler exposes the cached locker-rental search.
type LockerHandler struct {
	searcher LockerSearcherInterface
}

func NewLockerHandler(searcher LockerSearcherInterface) *LockerHandler {
	return &LockerHandler{searcher: searcher}
}

// LockerSearchRequest embeds the search form fields plus the requested
// result page.
type LockerSearchRequest struct {
	types.LockerSearchParams
	Page int `json:"page"`
}

func (h *LockerHandler) SearchLockers(c *gin.Context) {
	var req LockerSearchRequest
	if !bindJSONOrError(c, &req) {
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	result, err := h.searcher.Search(c.Request.Context(), req.LockerSearchParams, req.Page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
