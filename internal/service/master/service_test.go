package master

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDepartmentRepo struct {
	departments map[string]department.Department
}

func (m *memDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	for _, existing := range m.departments {
		if existing.Name == d.Name {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}
	d.ID = "dept-" + d.Name
	m.departments[d.ID] = d
	return d, nil
}

func (m *memDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (m *memDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	out := make([]department.Department, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDepartmentRepo) Update(ctx context.Context, d department.Department) (department.Department, error) {
	m.departments[d.ID] = d
	return d, nil
}

func (m *memDepartmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

type memSettingRepo struct {
	settings map[string]setting.Setting
}

func (m *memSettingRepo) Get(ctx context.Context, key string) (setting.Setting, error) {
	s, ok := m.settings[key]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return s, nil
}

func (m *memSettingRepo) List(ctx context.Context) ([]setting.Setting, error) {
	out := make([]setting.Setting, 0, len(m.settings))
	for _, s := range m.settings {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSettingRepo) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	s.UpdatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.settings[s.Key] = s
	return s, nil
}

func newService() MasterService {
	return NewMasterService(
		&memDepartmentRepo{departments: map[string]department.Department{}},
		&memSettingRepo{settings: map[string]setting.Setting{}},
	)
}

func TestDepartments(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "  Engineering "})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", created.Name)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "   "})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	head := "Rina"
	updated, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{ID: created.ID, Head: &head})
	require.NoError(t, err)
	assert.Equal(t, &head, updated.Head)
	assert.Equal(t, "Engineering", updated.Name)

	list, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteDepartment(ctx, created.ID), department.ErrDepartmentNotFound)
}

func TestSettings(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GetSetting(ctx, "company.name")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	saved, err := svc.UpsertSetting(ctx, setting.UpsertSettingRequest{Key: "company.name", Value: json.RawMessage(`"CodeZenith"`)})
	require.NoError(t, err)
	assert.JSONEq(t, `"CodeZenith"`, string(saved.Value))

	_, err = svc.UpsertSetting(ctx, setting.UpsertSettingRequest{Key: "company.name", Value: json.RawMessage(`{"broken"`)})
	assert.Error(t, err)

	_, err = svc.UpsertSetting(ctx, setting.UpsertSettingRequest{Key: "bad key!", Value: json.RawMessage(`1`)})
	assert.Error(t, err)

	_, err = svc.GetSetting(ctx, "bad key!")
	assert.ErrorIs(t, err, setting.ErrInvalidKey)

	got, err := svc.GetSetting(ctx, "company.name")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", got.UpdatedAt)
}
