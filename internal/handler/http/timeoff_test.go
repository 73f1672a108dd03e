package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
	"github.com/peoplehub/hr-backend-go/internal/domain/user"
	"github.com/peoplehub/hr-backend-go/internal/handler/http/response"
)

// fakeRequestService returns canned results and records the last call.
type fakeRequestService struct {
	createResult  timeoff.Request
	approveResult timeoff.Request
	rejectResult  timeoff.Request
	myResult      timeoff.MyRequestsResponse
	teamResult    timeoff.TeamRequestsResponse
	err           error

	lastActorID   string
	lastRequestID string
	lastReason    *string
	lastSearch    string
}

func (f *fakeRequestService) Create(_ context.Context, actorID string, _ timeoff.CreateRequestRequest) (timeoff.Request, error) {
	f.lastActorID = actorID
	return f.createResult, f.err
}

func (f *fakeRequestService) Approve(_ context.Context, actorID string, requestID string) (timeoff.Request, error) {
	f.lastActorID = actorID
	f.lastRequestID = requestID
	return f.approveResult, f.err
}

func (f *fakeRequestService) Reject(_ context.Context, actorID string, requestID string, reason *string) (timeoff.Request, error) {
	f.lastActorID = actorID
	f.lastRequestID = requestID
	f.lastReason = reason
	return f.rejectResult, f.err
}

func (f *fakeRequestService) AvailableBalance(_ context.Context, _ string, _ timeoff.Type) (timeoff.Balance, error) {
	return timeoff.Balance{}, f.err
}

func (f *fakeRequestService) MyRequests(_ context.Context, actorID string) (timeoff.MyRequestsResponse, error) {
	f.lastActorID = actorID
	return f.myResult, f.err
}

func (f *fakeRequestService) TeamRequests(_ context.Context, actorID string, search string) (timeoff.TeamRequestsResponse, error) {
	f.lastActorID = actorID
	f.lastSearch = search
	return f.teamResult, f.err
}

type fakeFileService struct {
	url string
	err error
}

func (f *fakeFileService) UploadTimeOffAttachment(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
	return f.url, f.err
}

func (f *fakeFileService) DeleteFile(_ context.Context, _ string) error { return f.err }

func (f *fakeFileService) GetFileURL(_ context.Context, _ string, _ time.Duration) (string, error) {
	return f.url, f.err
}

// withClaims attaches verified JWT claims the way jwtauth.Verifier would.
func withClaims(r *http.Request, userID string) *http.Request {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	if err != nil {
		panic(err)
	}
	ctx := jwtauth.NewContext(r.Context(), tok, nil)
	return r.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestTimeOffHandler_CreateRequest_Success(t *testing.T) {
	svc := &fakeRequestService{createResult: timeoff.Request{
		ID:        "req-1",
		UserID:    "emp-1",
		Type:      timeoff.TypePaidTimeOff,
		StartDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Days:      3,
		Status:    timeoff.StatusPending,
	}}
	handler := NewTimeOffHandler(svc, &fakeFileService{})

	body := `{"type":"paid_time_off","start_date":"2024-06-10","end_date":"2024-06-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeoff", bytes.NewBufferString(body))
	req = withClaims(req, "emp-1")
	rec := httptest.NewRecorder()

	handler.CreateRequest(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "emp-1", svc.lastActorID)
}

func TestTimeOffHandler_CreateRequest_InvalidJSON(t *testing.T) {
	handler := NewTimeOffHandler(&fakeRequestService{}, &fakeFileService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeoff", bytes.NewBufferString("{not json"))
	req = withClaims(req, "emp-1")
	rec := httptest.NewRecorder()

	handler.CreateRequest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestTimeOffHandler_CreateRequest_MissingClaims(t *testing.T) {
	handler := NewTimeOffHandler(&fakeRequestService{}, &fakeFileService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeoff", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()

	handler.CreateRequest(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTimeOffHandler_ApproveRequest_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "already processed", err: timeoff.ErrAlreadyProcessed, want: http.StatusConflict},
		{name: "not found", err: timeoff.ErrRequestNotFound, want: http.StatusNotFound},
		{name: "not HR", err: user.ErrHRAccessRequired, want: http.StatusForbidden},
		{name: "not owned", err: user.ErrEmployeeNotOwned, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTimeOffHandler(&fakeRequestService{err: tt.err}, &fakeFileService{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/timeoff/req-1/approve", nil)
			req = withClaims(req, "hr-1")
			req = withURLParam(req, "id", "req-1")
			rec := httptest.NewRecorder()

			handler.ApproveRequest(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
		})
	}
}

func TestTimeOffHandler_RejectRequest_PassesReason(t *testing.T) {
	svc := &fakeRequestService{rejectResult: timeoff.Request{
		ID:     "req-1",
		Status: timeoff.StatusRejected,
	}}
	handler := NewTimeOffHandler(svc, &fakeFileService{})

	body := `{"reason":"overlaps with project deadline"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeoff/req-1/reject", bytes.NewBufferString(body))
	req = withClaims(req, "hr-1")
	req = withURLParam(req, "id", "req-1")
	rec := httptest.NewRecorder()

	handler.RejectRequest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", svc.lastRequestID)
	require.NotNil(t, svc.lastReason)
	assert.Equal(t, "overlaps with project deadline", *svc.lastReason)
}

func TestTimeOffHandler_ListRequests_ForwardsSearch(t *testing.T) {
	svc := &fakeRequestService{}
	handler := NewTimeOffHandler(svc, &fakeFileService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timeoff?search=alice", nil)
	req = withClaims(req, "hr-1")
	rec := httptest.NewRecorder()

	handler.ListRequests(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", svc.lastSearch)
	assert.Equal(t, "hr-1", svc.lastActorID)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
