package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/goerror"
)

// UpdateInput patches an existing monitoring location. Nil fields keep the
// stored value.
type UpdateInput struct {
	ID               int64   `json:"id" validate:"required,gt=0"`
	AgencyCode       *string `json:"agencyCode" validate:"omitempty,agencycode"`
	SiteNumber       *string `json:"siteNumber" validate:"omitempty,sitenumber"`
	StationName      *string `json:"stationName" validate:"omitempty,max=50"`
	StationIx        *string `json:"stationIx" validate:"omitempty,max=50"`
	StateFipsCode    *string `json:"stateFipsCode" validate:"omitempty,len=2,numeric"`
	CountyCode       *string `json:"countyCode" validate:"omitempty,len=3,numeric"`
	SiteTypeCode     *string `json:"siteTypeCode" validate:"omitempty,max=7"`
	DecimalLatitude  *string `json:"decimalLatitude" validate:"omitempty,latitude"`
	DecimalLongitude *string `json:"decimalLongitude" validate:"omitempty,longitude"`
	UpdatedBy        string  `json:"updatedBy" validate:"required,max=8"`
}

func (s *Usecase) UpdateMonitoringLocation(ctx context.Context, in UpdateInput) (*entity.MonitoringLocation, error) {
	ctx, span := s.startSpan(ctx, "UpdateMonitoringLocation")
	defer span.End()

	in.AgencyCode = trimPtr(in.AgencyCode)
	in.SiteNumber = trimPtr(in.SiteNumber)
	in.StationName = trimPtr(in.StationName)
	in.StationIx = trimPtr(in.StationIx)
	in.UpdatedBy = strings.TrimSpace(in.UpdatedBy)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "monitoring location not found", "monitoring_location_id", in.ID)
		return nil, goerror.NewBusiness("monitoring location not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get monitoring location by id", "monitoring_location_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	ml := entity.MonitoringLocation{
		ID:               lo.ToPtr(in.ID),
		AgencyCode:       in.AgencyCode,
		SiteNumber:       in.SiteNumber,
		StationName:      in.StationName,
		StationIx:        in.StationIx,
		StateFipsCode:    in.StateFipsCode,
		CountyCode:       in.CountyCode,
		SiteTypeCode:     in.SiteTypeCode,
		DecimalLatitude:  in.DecimalLatitude,
		DecimalLongitude: in.DecimalLongitude,
		TransactionType:  lo.ToPtr(transactionTypeModify),
		UpdatedBy:        in.UpdatedBy,
	}

	if err := s.ensureUnique(ctx, &ml); err != nil {
		return nil, err
	}

	updated, err := s.repoDB.UpdateMonitoringLocation(ctx, ml)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "monitoring location disappeared before update", "monitoring_location_id", in.ID)
		return nil, goerror.NewBusiness("monitoring location not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "monitoring location rejected by unique constraint", "monitoring_location", ml.String())
		return nil, goerror.NewBusiness("monitoring location conflicts with an existing record", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update monitoring location", "monitoring_location_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return updated, nil
}
