package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMembers(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	EditDates(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.AddProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", result)
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListActive implements ProjectHandler.
func (h *projectHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements ProjectHandler.
func (h *projectHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements ProjectHandler.
func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMembers implements ProjectHandler.
func (h *projectHandlerImpl) GetMembers(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.GetMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddMember implements ProjectHandler.
func (h *projectHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	var req project.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	result, err := h.projectService.AddMember(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member added", result)
}

// EditDates implements ProjectHandler.
func (h *projectHandlerImpl) EditDates(w http.ResponseWriter, r *http.Request) {
	var req project.EditDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	result, err := h.projectService.EditDates(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project dates updated", result)
}
