package app

import (
	"fmt"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation"
)

func (a *App) initModules() error {
	uc, err := monitoringlocation.New(monitoringlocation.Dependency{
		DBConn:     a.dbConn,
		Instrument: a.ins,
		Validator:  a.validator,
	})
	if err != nil {
		return fmt.Errorf("init module monitoring location: %w", err)
	}

	a.monitoringLocation = uc
	return nil
}
