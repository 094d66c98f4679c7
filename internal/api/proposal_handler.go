package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
	"github.com/gaegulzip/wowa/internal/service"
)

// ProposalHandler serves the Base-change proposal workflow.
type ProposalHandler struct {
	svc service.ProposalService
}

// NewProposalHandler constructs ProposalHandler.
func NewProposalHandler(svc service.ProposalService) *ProposalHandler {
	return &ProposalHandler{svc: svc}
}

type createProposalRequest struct {
	BaseWodID     int64 `json:"baseWodId" binding:"required"`
	ProposedWodID int64 `json:"proposedWodId" binding:"required"`
}

type proposalResponse struct {
	ID            int64                `json:"id"`
	BaseWodID     int64                `json:"baseWodId"`
	ProposedWodID int64                `json:"proposedWodId"`
	Status        model.ProposalStatus `json:"status"`
	ProposedAt    time.Time            `json:"proposedAt"`
	ResolvedAt    *time.Time           `json:"resolvedAt"`
	ResolvedBy    *int64               `json:"resolvedBy"`
}

func toProposalResponse(p *model.ProposedChange) proposalResponse {
	return proposalResponse{
		ID:            p.ID,
		BaseWodID:     p.BaseWodID,
		ProposedWodID: p.ProposedWodID,
		Status:        p.Status,
		ProposedAt:    p.ProposedAt,
		ResolvedAt:    p.ResolvedAt,
		ResolvedBy:    p.ResolvedBy,
	}
}

// Create handles POST /wods/proposals.
func (h *ProposalHandler) Create(c *gin.Context) {
	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", errs.ErrValidation, err.Error()))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.BaseWodID, req.ProposedWodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProposalResponse(p))
}

// Approve handles POST /wods/proposals/:proposalId/approve.
func (h *ProposalHandler) Approve(c *gin.Context) {
	h.resolve(c, h.svc.Approve)
}

// Reject handles POST /wods/proposals/:proposalId/reject.
func (h *ProposalHandler) Reject(c *gin.Context) {
	h.resolve(c, h.svc.Reject)
}

func (h *ProposalHandler) resolve(c *gin.Context, fn func(ctx context.Context, proposalID, resolverID int64) (*model.ProposedChange, error)) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, errs.ErrUnauthorized)
		return
	}

	proposalID, err := strconv.ParseInt(c.Param("proposalId"), 10, 64)
	if err != nil {
		respondError(c, fmt.Errorf("%w: proposalId must be an integer", errs.ErrValidation))
		return
	}

	p, err := fn(c.Request.Context(), proposalID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProposalResponse(p))
}

// List handles GET /wods/proposals.
func (h *ProposalHandler) List(c *gin.Context) {
	var f model.ProposalFilter
	if v := c.Query("baseWodId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(c, fmt.Errorf("%w: baseWodId must be an integer", errs.ErrValidation))
			return
		}
		f.BaseWodID = id
	}
	f.Status = model.ProposalStatus(c.Query("status"))

	out, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]proposalResponse, 0, len(out))
	for i := range out {
		resp = append(resp, toProposalResponse(&out[i]))
	}
	c.JSON(http.StatusOK, resp)
}
