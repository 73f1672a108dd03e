package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
	"github.com/peoplehub/hr-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hr-backend-go/internal/service/file"
)

type TimeOffHandler interface {
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	UploadAttachment(w http.ResponseWriter, r *http.Request)

	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type TimeOffHandlerImpl struct {
	requestService timeoff.RequestService
	fileService    file.FileService
}

func NewTimeOffHandler(requestService timeoff.RequestService, fileService file.FileService) TimeOffHandler {
	return &TimeOffHandlerImpl{
		requestService: requestService,
		fileService:    fileService,
	}
}

// GetMyRequests implements TimeOffHandler.
func (h *TimeOffHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.requestService.MyRequests(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CreateRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timeoff.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time off request created successfully", timeoff.ToRequestResponse(created))
}

// UploadAttachment implements TimeOffHandler.
func (h *TimeOffHandlerImpl) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// 10 MB limit for supporting documents
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required", nil)
		return
	}
	defer f.Close()

	url, err := h.fileService.UploadTimeOffAttachment(r.Context(), actor, f, header.Filename)
	if err != nil {
		slog.Error("UploadAttachment failed", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, map[string]string{"attachment_url": url})
}

// ListRequests implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	search := r.URL.Query().Get("search")

	resp, err := h.requestService.TeamRequests(r.Context(), actor, search)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ApproveRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	approved, err := h.requestService.Approve(r.Context(), actor, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time off request approved", timeoff.ToRequestResponse(approved))
}

// RejectRequest implements TimeOffHandler.
func (h *TimeOffHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req timeoff.RejectRequestRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("RejectRequest decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := h.requestService.Reject(r.Context(), actor, requestID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time off request rejected", timeoff.ToRequestResponse(rejected))
}
