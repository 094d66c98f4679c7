// Package api exposes the WOD engine over HTTP.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
	"github.com/gaegulzip/wowa/internal/service"
)

// WodHandler serves workout registration and per-day lookup.
type WodHandler struct {
	svc service.WodService
}

// NewWodHandler constructs WodHandler.
func NewWodHandler(svc service.WodService) *WodHandler {
	return &WodHandler{svc: svc}
}

type registerWodRequest struct {
	BoxID       int64             `json:"boxId" binding:"required"`
	Date        string            `json:"date" binding:"required"`
	RawText     string            `json:"rawText" binding:"required"`
	ProgramData model.ProgramData `json:"programData" binding:"required"`
}

type wodResponse struct {
	ID          int64             `json:"id"`
	BoxID       int64             `json:"boxId"`
	Date        string            `json:"date"`
	ProgramData model.ProgramData `json:"programData"`
	RawText     string            `json:"rawText"`
	IsBase      bool              `json:"isBase"`
	CreatedBy   int64             `json:"createdBy"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type wodWithComparisonResponse struct {
	wodResponse
	ComparisonResult model.ComparisonResult `json:"comparisonResult"`
}

type wodsByDateResponse struct {
	BaseWod      *wodResponse                `json:"baseWod"`
	PersonalWods []wodWithComparisonResponse `json:"personalWods"`
}

func toWodResponse(w *model.Wod) wodResponse {
	return wodResponse{
		ID:          w.ID,
		BoxID:       w.BoxID,
		Date:        w.Date,
		ProgramData: w.ProgramData,
		RawText:     w.RawText,
		IsBase:      w.IsBase,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// Register handles POST /wods.
func (h *WodHandler) Register(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, errs.ErrUnauthorized)
		return
	}

	var req registerWodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", errs.ErrValidation, err.Error()))
		return
	}

	out, err := h.svc.Register(c.Request.Context(), model.RegisterWodInput{
		BoxID:       req.BoxID,
		Date:        req.Date,
		ProgramData: req.ProgramData,
		RawText:     req.RawText,
		CreatedBy:   userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wodWithComparisonResponse{
		wodResponse:      toWodResponse(&out.Wod),
		ComparisonResult: out.ComparisonResult,
	})
}

// ByDate handles GET /wods/:boxId/:date.
func (h *WodHandler) ByDate(c *gin.Context) {
	boxID, err := strconv.ParseInt(c.Param("boxId"), 10, 64)
	if err != nil {
		respondError(c, fmt.Errorf("%w: boxId must be an integer", errs.ErrValidation))
		return
	}

	out, err := h.svc.WodsByDate(c.Request.Context(), boxID, c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := wodsByDateResponse{PersonalWods: make([]wodWithComparisonResponse, 0, len(out.PersonalWods))}
	if out.BaseWod != nil {
		base := toWodResponse(out.BaseWod)
		resp.BaseWod = &base
	}
	for i := range out.PersonalWods {
		p := &out.PersonalWods[i]
		resp.PersonalWods = append(resp.PersonalWods, wodWithComparisonResponse{
			wodResponse:      toWodResponse(&p.Wod),
			ComparisonResult: p.ComparisonResult,
		})
	}
	c.JSON(http.StatusOK, resp)
}
