package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ActivityLogHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type activityLogHandlerImpl struct {
	activityLogService activitylog.ActivityLogService
}

func NewActivityLogHandler(activityLogService activitylog.ActivityLogService) ActivityLogHandler {
	return &activityLogHandlerImpl{
		activityLogService: activityLogService,
	}
}

// Add implements ActivityLogHandler.
func (h *activityLogHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req activitylog.AddActivityLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = claims.EmployeeID

	result, err := h.activityLogService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity log added", result)
}

// ListAll implements ActivityLogHandler.
func (h *activityLogHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityLogService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByDate implements ActivityLogHandler.
func (h *activityLogHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityLogService.ListByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements ActivityLogHandler.
func (h *activityLogHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if !claims.CanAccess(employeeID) {
		response.HandleError(w, auth.ErrForbidden)
		return
	}

	result, err := h.activityLogService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Edit implements ActivityLogHandler. Only administrators may change the status.
func (h *activityLogHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req activitylog.EditActivityLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.ID = chi.URLParam(r, "id")

	if !claims.CanAccess(req.EmployeeID) {
		response.HandleError(w, auth.ErrForbidden)
		return
	}
	if req.Status != nil && !claims.IsAdmin {
		response.HandleError(w, auth.ErrAdminPrivilegeRequired)
		return
	}

	result, err := h.activityLogService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log updated", result)
}

// Accept implements ActivityLogHandler.
func (h *activityLogHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityLogService.Accept(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log accepted", result)
}

// Reject implements ActivityLogHandler.
func (h *activityLogHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityLogService.Reject(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log rejected", result)
}
