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

const (
	transactionTypeAdd    = "A"
	transactionTypeModify = "M"
)

type CreateInput struct {
	AgencyCode       *string `json:"agencyCode" validate:"omitempty,agencycode"`
	SiteNumber       *string `json:"siteNumber" validate:"omitempty,sitenumber"`
	StationName      *string `json:"stationName" validate:"omitempty,max=50"`
	StationIx        *string `json:"stationIx" validate:"omitempty,max=50"`
	StateFipsCode    *string `json:"stateFipsCode" validate:"omitempty,len=2,numeric"`
	CountyCode       *string `json:"countyCode" validate:"omitempty,len=3,numeric"`
	SiteTypeCode     *string `json:"siteTypeCode" validate:"omitempty,max=7"`
	DecimalLatitude  *string `json:"decimalLatitude" validate:"omitempty,latitude"`
	DecimalLongitude *string `json:"decimalLongitude" validate:"omitempty,longitude"`
	CreatedBy        string  `json:"createdBy" validate:"required,max=8"`
}

func (s *Usecase) CreateMonitoringLocation(ctx context.Context, in CreateInput) (*entity.MonitoringLocation, error) {
	ctx, span := s.startSpan(ctx, "CreateMonitoringLocation")
	defer span.End()

	in.AgencyCode = trimPtr(in.AgencyCode)
	in.SiteNumber = trimPtr(in.SiteNumber)
	in.StationName = trimPtr(in.StationName)
	in.StationIx = trimPtr(in.StationIx)
	in.CreatedBy = strings.TrimSpace(in.CreatedBy)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ml := entity.MonitoringLocation{
		AgencyCode:       in.AgencyCode,
		SiteNumber:       in.SiteNumber,
		StationName:      in.StationName,
		StationIx:        in.StationIx,
		StateFipsCode:    in.StateFipsCode,
		CountyCode:       in.CountyCode,
		SiteTypeCode:     in.SiteTypeCode,
		DecimalLatitude:  in.DecimalLatitude,
		DecimalLongitude: in.DecimalLongitude,
		TransactionType:  lo.ToPtr(transactionTypeAdd),
		CreatedBy:        in.CreatedBy,
		UpdatedBy:        in.CreatedBy,
	}

	if err := s.ensureUnique(ctx, &ml); err != nil {
		return nil, err
	}

	created, err := s.repoDB.CreateMonitoringLocation(ctx, ml)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "monitoring location rejected by unique constraint", "monitoring_location", ml.String())
		return nil, goerror.NewBusiness("monitoring location conflicts with an existing record", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create monitoring location", "monitoring_location", ml.String(), "error", err)
		return nil, goerror.NewServer(err)
	}

	return created, nil
}

func (s *Usecase) ensureUnique(ctx context.Context, ml *entity.MonitoringLocation) error {
	violations, err := s.uniqueKey.Validate(ctx, ml)
	if err != nil {
		slog.ErrorContext(ctx, "failed to validate monitoring location uniqueness", "monitoring_location", ml.String(), "error", err)
		return goerror.NewServer(err)
	}

	if !violations.Valid() {
		slog.WarnContext(ctx, "monitoring location is not unique", "monitoring_location", ml.String(), "violations", violations.Error())
		return goerror.NewInvalidInput(nil, violations.Pairs()...)
	}

	return nil
}
