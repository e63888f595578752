package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/usecase"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/goerror"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/validator"
)

func newUsecase(t *testing.T, repo *mockRepo) *usecase.Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return usecase.New(usecase.Dependency{
		RepoDB:     repo,
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})
}

func requireGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var ge *goerror.Error
	require.ErrorAs(t, err, &ge)
	return ge
}

func TestCreateMonitoringLocation_Success(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByAlternateKey", mock.Anything, entity.AlternateKey{AgencyCode: "USGS", SiteNumber: "123456789"}).
		Return(nil, goerror.ErrNotFound)
	repo.On("GetByNormalizedName", mock.Anything, ixFilter).Return([]entity.MonitoringLocation{}, nil)
	repo.On("CreateMonitoringLocation", mock.Anything, mock.MatchedBy(func(ml entity.MonitoringLocation) bool {
		return ml.ID == nil && *ml.AgencyCode == "USGS" && *ml.TransactionType == "A" && ml.CreatedBy == "jdoe"
	})).Return(&entity.MonitoringLocation{ID: id(10), AgencyCode: str("USGS")}, nil)

	uc := newUsecase(t, repo)
	got, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{
		AgencyCode: str(" USGS "),
		SiteNumber: str("123456789"),
		StationIx:  str("WATERINGHOLE"),
		CreatedBy:  "jdoe",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), *got.ID)
	repo.AssertExpectations(t)
}

func TestCreateMonitoringLocation_InvalidInput(t *testing.T) {
	repo := new(mockRepo)
	uc := newUsecase(t, repo)

	_, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{
		AgencyCode: str("usgs"),
		StationIx:  str("WATERINGHOLE"),
	})

	ge := requireGoError(t, err)
	assert.Equal(t, goerror.CodeInvalidInput, ge.Code())
	assert.Contains(t, ge.Fields(), "agencyCode")
	assert.Contains(t, ge.Fields(), "createdBy")
	repo.AssertNotCalled(t, "GetByNormalizedName", mock.Anything, mock.Anything)
}

func TestCreateMonitoringLocation_DuplicateRejected(t *testing.T) {
	existing := wateringHole(id(2))

	repo := new(mockRepo)
	repo.On("GetByAlternateKey", mock.Anything, mock.Anything).Return(&existing, nil)
	repo.On("GetByNormalizedName", mock.Anything, ixFilter).Return([]entity.MonitoringLocation{existing}, nil)

	uc := newUsecase(t, repo)
	_, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{
		AgencyCode: str("USGS"),
		SiteNumber: str("123456789"),
		StationIx:  str("WATERINGHOLE"),
		CreatedBy:  "jdoe",
	})

	ge := requireGoError(t, err)
	assert.Equal(t, goerror.TypeValidation, ge.Type())
	assert.Equal(t, usecase.MsgDuplicateAlternateKey, ge.Fields()[entity.FieldSiteNumber])
	assert.Contains(t, ge.Fields()[entity.FieldStationIx], existing.String())
	repo.AssertNotCalled(t, "CreateMonitoringLocation", mock.Anything, mock.Anything)
}

func TestCreateMonitoringLocation_MissingStationIx(t *testing.T) {
	repo := new(mockRepo)
	uc := newUsecase(t, repo)

	_, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{CreatedBy: "jdoe"})

	ge := requireGoError(t, err)
	assert.Equal(t, usecase.MsgStationIxRequired, ge.Fields()[entity.FieldStationIx])
}

func TestCreateMonitoringLocation_BlankStationIx(t *testing.T) {
	repo := new(mockRepo)
	uc := newUsecase(t, repo)

	_, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{
		AgencyCode: str("   "),
		StationIx:  str("  "),
		CreatedBy:  "jdoe",
	})

	ge := requireGoError(t, err)
	assert.Equal(t, usecase.MsgStationIxRequired, ge.Fields()[entity.FieldStationIx])
	repo.AssertNotCalled(t, "GetByAlternateKey", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "GetByNormalizedName", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateMonitoringLocation", mock.Anything, mock.Anything)
}

func TestUpdateMonitoringLocation_BlankStationIxKeepsStored(t *testing.T) {
	stored := wateringHole(id(1))

	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&stored, nil)
	repo.On("UpdateMonitoringLocation", mock.Anything, mock.MatchedBy(func(ml entity.MonitoringLocation) bool {
		return ml.StationIx == nil
	})).Return(&stored, nil)

	uc := newUsecase(t, repo)
	_, err := uc.UpdateMonitoringLocation(context.Background(), usecase.UpdateInput{
		ID:        1,
		StationIx: str(" "),
		UpdatedBy: "jdoe",
	})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetByNormalizedName", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateMonitoringLocation_StorageConflict(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByNormalizedName", mock.Anything, ixFilter).Return([]entity.MonitoringLocation{}, nil)
	repo.On("CreateMonitoringLocation", mock.Anything, mock.Anything).Return(nil, goerror.ErrConflict)

	uc := newUsecase(t, repo)
	_, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{
		StationIx: str("WATERINGHOLE"),
		CreatedBy: "jdoe",
	})

	ge := requireGoError(t, err)
	assert.Equal(t, goerror.TypeBusiness, ge.Type())
	assert.Equal(t, goerror.CodeConflict, ge.Code())
}

func TestCreateMonitoringLocation_LookupFailure(t *testing.T) {
	boom := errors.New("db down")

	repo := new(mockRepo)
	repo.On("GetByNormalizedName", mock.Anything, ixFilter).Return(nil, boom)

	uc := newUsecase(t, repo)
	_, err := uc.CreateMonitoringLocation(context.Background(), usecase.CreateInput{
		StationIx: str("WATERINGHOLE"),
		CreatedBy: "jdoe",
	})

	ge := requireGoError(t, err)
	assert.Equal(t, goerror.TypeServer, ge.Type())
	assert.ErrorIs(t, err, boom)
}

func TestUpdateMonitoringLocation_Success(t *testing.T) {
	stored := wateringHole(id(1))

	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&stored, nil)
	repo.On("GetByAlternateKey", mock.Anything, mock.Anything).Return(&stored, nil)
	repo.On("GetByNormalizedName", mock.Anything, ixFilter).Return([]entity.MonitoringLocation{stored}, nil)
	repo.On("UpdateMonitoringLocation", mock.Anything, mock.MatchedBy(func(ml entity.MonitoringLocation) bool {
		return *ml.ID == 1 && *ml.TransactionType == "M" && ml.UpdatedBy == "jdoe"
	})).Return(&stored, nil)

	uc := newUsecase(t, repo)
	got, err := uc.UpdateMonitoringLocation(context.Background(), usecase.UpdateInput{
		ID:         1,
		AgencyCode: str("USGS"),
		SiteNumber: str("123456789"),
		StationIx:  str("WATERINGHOLE"),
		UpdatedBy:  "jdoe",
	})

	require.NoError(t, err)
	assert.Equal(t, &stored, got)
	repo.AssertExpectations(t)
}

func TestUpdateMonitoringLocation_NotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, goerror.ErrNotFound)

	uc := newUsecase(t, repo)
	_, err := uc.UpdateMonitoringLocation(context.Background(), usecase.UpdateInput{ID: 5, UpdatedBy: "jdoe"})

	ge := requireGoError(t, err)
	assert.Equal(t, goerror.CodeNotFound, ge.Code())
}

func TestUpdateMonitoringLocation_DuplicateOfOther(t *testing.T) {
	stored := wateringHole(id(1))
	other := wateringHole(id(2))

	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&stored, nil)
	repo.On("GetByNormalizedName", mock.Anything, ixFilter).Return([]entity.MonitoringLocation{other}, nil)

	uc := newUsecase(t, repo)
	_, err := uc.UpdateMonitoringLocation(context.Background(), usecase.UpdateInput{
		ID:        1,
		StationIx: str("WATERINGHOLE"),
		UpdatedBy: "jdoe",
	})

	ge := requireGoError(t, err)
	assert.Equal(t, goerror.CodeInvalidInput, ge.Code())
	assert.Contains(t, ge.Fields(), entity.FieldStationIx)
	repo.AssertNotCalled(t, "UpdateMonitoringLocation", mock.Anything, mock.Anything)
}

func TestUpdateMonitoringLocation_WithoutStationIx(t *testing.T) {
	stored := wateringHole(id(1))

	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&stored, nil)
	repo.On("UpdateMonitoringLocation", mock.Anything, mock.Anything).Return(&stored, nil)

	uc := newUsecase(t, repo)
	_, err := uc.UpdateMonitoringLocation(context.Background(), usecase.UpdateInput{
		ID:          1,
		StationName: str("Watering Hole"),
		UpdatedBy:   "jdoe",
	})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetByNormalizedName", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "GetByAlternateKey", mock.Anything, mock.Anything)
}

func TestUpdateMonitoringLocation_InvalidID(t *testing.T) {
	repo := new(mockRepo)
	uc := newUsecase(t, repo)

	_, err := uc.UpdateMonitoringLocation(context.Background(), usecase.UpdateInput{UpdatedBy: "jdoe"})

	ge := requireGoError(t, err)
	assert.Contains(t, ge.Fields(), "id")
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUsecase_ExposesValidator(t *testing.T) {
	uc := newUsecase(t, new(mockRepo))
	assert.NotNil(t, uc.UniqueKeyValidator())
}
