package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByAlternateKey(ctx context.Context, key entity.AlternateKey) (*entity.MonitoringLocation, error) {
	args := m.Called(ctx, key)
	ml, _ := args.Get(0).(*entity.MonitoringLocation)
	return ml, args.Error(1)
}

func (m *mockRepo) GetByNormalizedName(ctx context.Context, filter entity.NormalizedNameFilter) ([]entity.MonitoringLocation, error) {
	args := m.Called(ctx, filter)
	mls, _ := args.Get(0).([]entity.MonitoringLocation)
	return mls, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*entity.MonitoringLocation, error) {
	args := m.Called(ctx, id)
	ml, _ := args.Get(0).(*entity.MonitoringLocation)
	return ml, args.Error(1)
}

func (m *mockRepo) CreateMonitoringLocation(ctx context.Context, ml entity.MonitoringLocation) (*entity.MonitoringLocation, error) {
	args := m.Called(ctx, ml)
	out, _ := args.Get(0).(*entity.MonitoringLocation)
	return out, args.Error(1)
}

func (m *mockRepo) UpdateMonitoringLocation(ctx context.Context, ml entity.MonitoringLocation) (*entity.MonitoringLocation, error) {
	args := m.Called(ctx, ml)
	out, _ := args.Get(0).(*entity.MonitoringLocation)
	return out, args.Error(1)
}

func id(v int64) *int64    { return &v }
func str(v string) *string { return &v }

func wateringHole(mlID *int64) entity.MonitoringLocation {
	return entity.MonitoringLocation{
		ID:            mlID,
		AgencyCode:    str("USGS"),
		SiteNumber:    str("123456789"),
		StateFipsCode: str("55"),
		StationIx:     str("WATERINGHOLE"),
	}
}
