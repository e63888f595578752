package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/goerror"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

const (
	MsgDuplicateAlternateKey = "Duplicate Agency Code and Site Number found in MLR."
	MsgStationIxRequired     = "Normalized station name (stationIx) is required when creating a monitoring location."
)

// RecordRepository is the lookup surface the uniqueness checks consult.
type RecordRepository interface {
	// GetByAlternateKey returns goerror.ErrNotFound when no record matches.
	GetByAlternateKey(ctx context.Context, key entity.AlternateKey) (*entity.MonitoringLocation, error)
	GetByNormalizedName(ctx context.Context, filter entity.NormalizedNameFilter) ([]entity.MonitoringLocation, error)
}

// UniqueKeyValidator detects monitoring locations that would duplicate the
// (agency code, site number) key or the normalized station name of a
// persisted record. It holds no per-call state and is safe for concurrent use.
//
// The check is best effort: a concurrent insert can still slip in between the
// lookup and the write, so the storage unique constraints stay authoritative.
type UniqueKeyValidator struct {
	repo       RecordRepository
	ins        instrument.Instrumentation
	violations metric.Int64Counter
}

func NewUniqueKeyValidator(repo RecordRepository, ins instrument.Instrumentation) *UniqueKeyValidator {
	if ins == nil {
		ins = instrument.NewNoop()
	}

	var counter metric.Int64Counter = metricnoop.Int64Counter{}
	if c, err := ins.Meter("monitoringlocation.usecase").Int64Counter(
		"monitoring_location.validation.violations",
		metric.WithDescription("Uniqueness violations found while validating monitoring locations"),
	); err == nil {
		counter = c
	}

	return &UniqueKeyValidator{repo: repo, ins: ins, violations: counter}
}

// Validate runs every uniqueness check against ml and returns the violations
// found. Both checks always run. A non-nil error means a lookup failed or
// a matched record has no identifier; the violations are then incomplete.
func (v *UniqueKeyValidator) Validate(ctx context.Context, ml *entity.MonitoringLocation) (_ Violations, err error) {
	if ml == nil {
		return nil, nil
	}

	ctx, span := v.ins.Tracer("monitoringlocation.usecase").Start(ctx, "UniqueKeyValidator.Validate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var vs Violations

	akViolation, err := v.checkAlternateKey(ctx, ml)
	if err != nil {
		return nil, err
	}
	if akViolation != nil {
		vs = append(vs, *akViolation)
	}

	ixViolation, err := v.checkNormalizedName(ctx, ml)
	if err != nil {
		return nil, err
	}
	if ixViolation != nil {
		vs = append(vs, *ixViolation)
	}

	for _, violation := range vs {
		v.violations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("field", violation.Field),
			attribute.Bool("create", ml.IsCreate()),
		))
	}
	span.SetAttributes(attribute.Int("violations", len(vs)))

	return vs, nil
}

func (v *UniqueKeyValidator) checkAlternateKey(ctx context.Context, ml *entity.MonitoringLocation) (*Violation, error) {
	key, ok := ml.AlternateKey()
	if !ok {
		return nil, nil
	}

	existing, err := v.repo.GetByAlternateKey(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monitoring location by alternate key: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	if ml.IsUpdate() {
		same, err := ml.SameID(existing)
		if err != nil {
			return nil, fmt.Errorf("compare alternate key match: %w", err)
		}
		if same {
			return nil, nil
		}
	}

	return &Violation{Field: entity.FieldSiteNumber, Message: MsgDuplicateAlternateKey}, nil
}

func (v *UniqueKeyValidator) checkNormalizedName(ctx context.Context, ml *entity.MonitoringLocation) (*Violation, error) {
	if ml.StationIx == nil {
		if ml.IsCreate() {
			return &Violation{Field: entity.FieldStationIx, Message: MsgStationIxRequired}, nil
		}
		// the stored row may already carry a stationIx
		return nil, nil
	}

	existing, err := v.repo.GetByNormalizedName(ctx, entity.NormalizedNameFilter{StationIx: *ml.StationIx})
	if err != nil {
		return nil, fmt.Errorf("get monitoring locations by normalized name: %w", err)
	}

	valid := len(existing) == 0
	if ml.IsUpdate() && len(existing) == 1 {
		valid, err = ml.SameID(&existing[0])
		if err != nil {
			return nil, fmt.Errorf("compare normalized name match: %w", err)
		}
	}
	if valid {
		return nil, nil
	}

	return &Violation{Field: entity.FieldStationIx, Message: duplicateStationIxMessage(*ml.StationIx, existing)}, nil
}

func duplicateStationIxMessage(stationIx string, existing []entity.MonitoringLocation) string {
	names := lo.Map(existing, func(ml entity.MonitoringLocation, _ int) string {
		return ml.String()
	})

	return fmt.Sprintf(
		"The supplied monitoring location had a duplicate normalized station name (stationIx): '%s'.\n"+
			"The following %d monitoring location(s) had the same normalized station name: %s",
		stationIx, len(existing), strings.Join(names, ","),
	)
}
