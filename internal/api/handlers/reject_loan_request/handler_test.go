package reject_loan_request

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/USM-SpaceService/internal/api/middleware"
	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeLoanService struct {
	resp *models.LoanRequestResponse
	err  error

	lastID  int64
	lastReq *models.RejectLoanRequest
}

func (f *fakeLoanService) Reject(_ context.Context, id int64, req *models.RejectLoanRequest) (*models.LoanRequestResponse, error) {
	f.lastID = id
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestRejectHandler_RequiresAuthenticatedUser(t *testing.T) {
	svc := &fakeLoanService{}
	handler := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/loan-requests/21/reject",
		bytes.NewBufferString(`{"comment":"причина"}`))
	req = mux.SetURLVars(req, map[string]string{"requestId": "21"})
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, svc.lastID)
}

func TestRejectHandler_Success(t *testing.T) {
	svc := &fakeLoanService{resp: &models.LoanRequestResponse{ID: 21, Status: "rejected"}}
	handler := NewHandler(svc, nopLogger{})

	router := mux.NewRouter()
	router.Handle("/api/v1/loan-requests/{requestId}/reject",
		middleware.Auth(http.HandlerFunc(handler.Handle))).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/loan-requests/21/reject",
		bytes.NewBufferString(`{"comment":"помещение занято"}`))
	req.Header.Set(middleware.HeaderUserID, "7")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(21), svc.lastID)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "помещение занято", svc.lastReq.Comment)

	var resp models.LoanRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rejected", resp.Status)
}
