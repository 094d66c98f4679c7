package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
)

const testSecret = "test-secret"

type fakeWodService struct {
	registerOut *model.WodWithComparison
	registerErr error
	byDateOut   *model.WodsByDateResult
	byDateErr   error

	registerIn model.RegisterWodInput
}

func (f *fakeWodService) Register(_ context.Context, in model.RegisterWodInput) (*model.WodWithComparison, error) {
	f.registerIn = in
	return f.registerOut, f.registerErr
}

func (f *fakeWodService) WodsByDate(_ context.Context, boxID int64, date string) (*model.WodsByDateResult, error) {
	return f.byDateOut, f.byDateErr
}

type fakeProposalService struct {
	out *model.ProposedChange
	err error

	resolverID int64
}

func (f *fakeProposalService) Create(_ context.Context, baseWodID, proposedWodID int64) (*model.ProposedChange, error) {
	return f.out, f.err
}

func (f *fakeProposalService) Approve(_ context.Context, proposalID, approverID int64) (*model.ProposedChange, error) {
	f.resolverID = approverID
	return f.out, f.err
}

func (f *fakeProposalService) Reject(_ context.Context, proposalID, rejecterID int64) (*model.ProposedChange, error) {
	f.resolverID = rejecterID
	return f.out, f.err
}

func (f *fakeProposalService) List(_ context.Context, _ model.ProposalFilter) ([]model.ProposedChange, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []model.ProposedChange{*f.out}, nil
}

type fakeSelectionService struct {
	selOut  *model.WodSelection
	selErr  error
	listOut []model.WodSelection
	listErr error
}

func (f *fakeSelectionService) Select(_ context.Context, in model.SelectWodInput) (*model.WodSelection, error) {
	return f.selOut, f.selErr
}

func (f *fakeSelectionService) Selections(_ context.Context, userID int64, startDate, endDate string) ([]model.WodSelection, error) {
	return f.listOut, f.listErr
}

func testToken(t *testing.T, userID int64) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newTestRouter(wodSvc *fakeWodService, proposalSvc *fakeProposalService, selectionSvc *fakeSelectionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if wodSvc == nil {
		wodSvc = &fakeWodService{}
	}
	if proposalSvc == nil {
		proposalSvc = &fakeProposalService{}
	}
	if selectionSvc == nil {
		selectionSvc = &fakeSelectionService{}
	}
	return NewRouter(zap.NewNop(), testSecret, nil, wodSvc, proposalSvc, selectionSvc)
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(nil, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MissingToken(t *testing.T) {
	r := newTestRouter(nil, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wods/1/2025-03-01", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_BadToken(t *testing.T) {
	r := newTestRouter(nil, nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wods/1/2025-03-01", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RegisterWod(t *testing.T) {
	reps := 10
	timeCap := 15
	program := model.ProgramData{
		Type:      model.WodTypeAMRAP,
		TimeCap:   &timeCap,
		Movements: []model.Movement{{Name: "pull-up", Reps: &reps}},
	}
	wodSvc := &fakeWodService{
		registerOut: &model.WodWithComparison{
			Wod:              model.Wod{ID: 10, BoxID: 1, Date: "2025-03-01", ProgramData: program, RawText: "raw", IsBase: true, CreatedBy: 7},
			ComparisonResult: model.ComparisonIdentical,
		},
	}
	r := newTestRouter(wodSvc, nil, nil)

	body, err := json.Marshal(map[string]any{
		"boxId":       1,
		"date":        "2025-03-01",
		"rawText":     "raw",
		"programData": program,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wods", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, 7))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, int64(7), wodSvc.registerIn.CreatedBy, "createdBy must come from the token")

	var resp struct {
		ID               int64  `json:"id"`
		IsBase           bool   `json:"isBase"`
		ComparisonResult string `json:"comparisonResult"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(10), resp.ID)
	require.True(t, resp.IsBase)
	require.Equal(t, "identical", resp.ComparisonResult)
}

func TestRouter_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad date", errs.ErrValidation), http.StatusBadRequest},
		{"forbidden", fmt.Errorf("%w: not the creator", errs.ErrForbidden), http.StatusForbidden},
		{"not found", errs.ErrNotFound, http.StatusNotFound},
		{"conflict", errs.ErrConflict, http.StatusConflict},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeWodService{byDateErr: tc.err}, nil, nil)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/wods/1/2025-03-01", nil)
			req.Header.Set("Authorization", "Bearer "+testToken(t, 7))
			r.ServeHTTP(w, req)
			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRouter_ApprovePassesCallerID(t *testing.T) {
	proposalSvc := &fakeProposalService{out: &model.ProposedChange{ID: 1, Status: model.ProposalApproved}}
	r := newTestRouter(nil, proposalSvc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wods/proposals/1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 42))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(42), proposalSvc.resolverID)
}

func TestRouter_SelectionsRange(t *testing.T) {
	selectionSvc := &fakeSelectionService{listOut: []model.WodSelection{}}
	r := newTestRouter(nil, nil, selectionSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wods/selections?startDate=2025-03-01&endDate=2025-03-31", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 3))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}
