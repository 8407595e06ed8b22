package http

import (
	"net/http"

	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
	"github.com/codezenith/hrms-backend-go/internal/handler/http/response"
	"github.com/codezenith/hrms-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Department
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	// Setting
	ListSettings(w http.ResponseWriter, r *http.Request)
	GetSetting(w http.ResponseWriter, r *http.Request)
	UpsertSetting(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== DEPARTMENT ====================

// CreateDepartment implements MasterHandler.
func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", result)
}

// ListDepartments implements MasterHandler.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// UpdateDepartment implements MasterHandler.
func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", result)
}

// DeleteDepartment implements MasterHandler.
func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Deleted(w, "Department deleted successfully")
}

// ==================== SETTING ====================

// ListSettings implements MasterHandler.
func (h *masterHandlerImpl) ListSettings(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// GetSetting implements MasterHandler.
func (h *masterHandlerImpl) GetSetting(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetSetting(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpsertSetting implements MasterHandler.
func (h *masterHandlerImpl) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req setting.UpsertSettingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Key = chi.URLParam(r, "key")

	result, err := h.masterService.UpsertSetting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Setting saved", result)
}
