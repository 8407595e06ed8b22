package master

import (
	"context"
	"fmt"

	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// Setting operations
	GetSetting(ctx context.Context, key string) (setting.SettingResponse, error)
	ListSettings(ctx context.Context) ([]setting.SettingResponse, error)
	UpsertSetting(ctx context.Context, req setting.UpsertSettingRequest) (setting.SettingResponse, error)
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	settingRepo    setting.SettingRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	settingRepo setting.SettingRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		settingRepo:    settingRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Head:        req.Head,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(created), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Head != nil {
		existing.Head = req.Head
	}
	if req.Description != nil {
		existing.Description = req.Description
	}

	updated, err := s.departmentRepo.Update(ctx, existing)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== SETTING OPERATIONS ====================

func (s *masterServiceImpl) GetSetting(ctx context.Context, key string) (setting.SettingResponse, error) {
	if !setting.IsValidKey(key) {
		return setting.SettingResponse{}, setting.ErrInvalidKey
	}

	found, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return setting.SettingResponse{}, err
	}
	return setting.NewSettingResponse(found), nil
}

func (s *masterServiceImpl) ListSettings(ctx context.Context) ([]setting.SettingResponse, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	responses := make([]setting.SettingResponse, 0, len(settings))
	for _, st := range settings {
		responses = append(responses, setting.NewSettingResponse(st))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpsertSetting(ctx context.Context, req setting.UpsertSettingRequest) (setting.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.SettingResponse{}, err
	}

	saved, err := s.settingRepo.Upsert(ctx, setting.Setting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		return setting.SettingResponse{}, fmt.Errorf("failed to save setting: %w", err)
	}
	return setting.NewSettingResponse(saved), nil
}
