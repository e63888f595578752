// Package monitoringlocation wires the monitoring location write path: the
// Postgres repository, the uniqueness checks and the create/update usecases.
package monitoringlocation

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/outbound/db"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/usecase"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) (*usecase.Usecase, error) {
	if dep.Validator == nil {
		return nil, validator.V10ValidationError{"Validator": "Validator is a required field"}
	}
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)

	return usecase.New(usecase.Dependency{
		RepoDB:     repo,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	}), nil
}
