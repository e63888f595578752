package usecase

import (
	"context"
	"strings"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	RecordRepository

	GetByID(ctx context.Context, id int64) (*entity.MonitoringLocation, error)
	CreateMonitoringLocation(ctx context.Context, ml entity.MonitoringLocation) (*entity.MonitoringLocation, error)
	UpdateMonitoringLocation(ctx context.Context, ml entity.MonitoringLocation) (*entity.MonitoringLocation, error)
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uniqueKey *UniqueKeyValidator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uniqueKey: NewUniqueKeyValidator(dep.RepoDB, dep.Instrument),
		ins:       dep.Instrument,
	}
}

// UniqueKeyValidator exposes the uniqueness checks for callers that persist
// monitoring locations through another path.
func (s *Usecase) UniqueKeyValidator() *UniqueKeyValidator {
	return s.uniqueKey
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("monitoringlocation.usecase").Start(ctx, name)
}

// trimPtr trims p and reports a blank value as absent.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
