package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
	"github.com/gaegulzip/wowa/internal/service"
)

// SelectionHandler serves users' daily WOD choices.
type SelectionHandler struct {
	svc service.SelectionService
}

// NewSelectionHandler constructs SelectionHandler.
func NewSelectionHandler(svc service.SelectionService) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

type selectWodRequest struct {
	WodID int64  `json:"wodId" binding:"required"`
	BoxID int64  `json:"boxId" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type selectionResponse struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"userId"`
	WodID        int64             `json:"wodId"`
	BoxID        int64             `json:"boxId"`
	Date         string            `json:"date"`
	SnapshotData model.ProgramData `json:"snapshotData"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func toSelectionResponse(s *model.WodSelection) selectionResponse {
	return selectionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		WodID:        s.WodID,
		BoxID:        s.BoxID,
		Date:         s.Date,
		SnapshotData: s.SnapshotData,
		CreatedAt:    s.CreatedAt,
	}
}

// Select handles POST /wods/selections.
func (h *SelectionHandler) Select(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, errs.ErrUnauthorized)
		return
	}

	var req selectWodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", errs.ErrValidation, err.Error()))
		return
	}

	sel, err := h.svc.Select(c.Request.Context(), model.SelectWodInput{
		UserID: userID,
		WodID:  req.WodID,
		BoxID:  req.BoxID,
		Date:   req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSelectionResponse(sel))
}

// List handles GET /wods/selections.
func (h *SelectionHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, errs.ErrUnauthorized)
		return
	}

	out, err := h.svc.Selections(c.Request.Context(), userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]selectionResponse, 0, len(out))
	for i := range out {
		resp = append(resp, toSelectionResponse(&out[i]))
	}
	c.JSON(http.StatusOK, resp)
}
