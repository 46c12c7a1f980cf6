package exports

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/earthengine"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

type fakeSubmitter struct {
	got earthengine.ExportRequest
	op  string
	err error
}

func (f *fakeSubmitter) SubmitExport(_ context.Context, req earthengine.ExportRequest) (string, error) {
	f.got = req
	return f.op, f.err
}

type fakeJobRepo struct {
	created   []*entity.ExportJob
	submitted map[uuid.UUID]string
	failed    map[uuid.UUID]string
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		submitted: map[uuid.UUID]string{},
		failed:    map[uuid.UUID]string{},
	}
}

func (f *fakeJobRepo) CreateJob(_ context.Context, job *entity.ExportJob) error {
	f.created = append(f.created, job)
	return nil
}

func (f *fakeJobRepo) MarkSubmitted(_ context.Context, id uuid.UUID, op string) error {
	f.submitted[id] = op
	return nil
}

func (f *fakeJobRepo) MarkFailed(_ context.Context, id uuid.UUID, msg string) error {
	f.failed[id] = msg
	return nil
}

func (f *fakeJobRepo) ListJobs(_ context.Context, _ int) ([]*entity.ExportJob, error) {
	return f.created, nil
}

func testConfig() common.ExportConfig {
	return common.ExportConfig{
		Collection:     constants.Sentinel2Collection,
		Folder:         "EarthEngine_Exports",
		FilenamePrefix: "sf_bay_area_sentinel2_10m",
		ScaleMeters:    constants.ExportScaleMeters,
		CRS:            constants.ExportCRS,
		MaxPixels:      constants.ExportMaxPixels,
	}
}

func TestSubmitFillsDefaultsAndRecords(t *testing.T) {
	client := &fakeSubmitter{op: "projects/p/operations/OP1"}
	repo := newFakeJobRepo()
	svc := NewService(client, testConfig(), repo, nil)

	job, err := svc.Submit(context.Background(), earthengine.ExportRequest{
		StartDate: "2024-08-01",
		EndDate:   "2024-09-01",
	})
	require.NoError(t, err)

	// config defaults must reach the client
	assert.Equal(t, "EarthEngine_Exports", client.got.Folder)
	assert.Equal(t, "sf_bay_area_sentinel2_10m", client.got.FilenamePrefix)
	assert.Equal(t, "sf_bay_area_sentinel2_10m", client.got.Description)
	assert.Equal(t, constants.ExportScaleMeters, client.got.ScaleMeters)
	assert.Equal(t, constants.ExportCRS, client.got.CRS)

	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.Equal(t, constants.JobStatusSubmitted, job.Status)
	assert.Equal(t, "projects/p/operations/OP1", job.OperationName)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "projects/p/operations/OP1", repo.submitted[job.ID])
	assert.Empty(t, repo.failed)
}

func TestSubmitCallerValuesWin(t *testing.T) {
	client := &fakeSubmitter{op: "op"}
	svc := NewService(client, testConfig(), nil, nil)

	_, err := svc.Submit(context.Background(), earthengine.ExportRequest{
		StartDate:      "2024-08-01",
		EndDate:        "2024-09-01",
		Folder:         "MyFolder",
		FilenamePrefix: "custom_prefix",
		Description:    "custom description",
	})
	require.NoError(t, err)

	assert.Equal(t, "MyFolder", client.got.Folder)
	assert.Equal(t, "custom_prefix", client.got.FilenamePrefix)
	assert.Equal(t, "custom description", client.got.Description)
}

func TestSubmitFailureMarksJob(t *testing.T) {
	client := &fakeSubmitter{err: errors.New("backend unavailable")}
	repo := newFakeJobRepo()
	svc := NewService(client, testConfig(), repo, nil)

	_, err := svc.Submit(context.Background(), earthengine.ExportRequest{
		StartDate: "2024-08-01",
		EndDate:   "2024-09-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")

	require.Len(t, repo.created, 1)
	id := repo.created[0].ID
	assert.Equal(t, "backend unavailable", repo.failed[id])
	assert.Empty(t, repo.submitted)
}

func TestSubmitWithoutJobRepo(t *testing.T) {
	client := &fakeSubmitter{op: "op"}
	svc := NewService(client, testConfig(), nil, nil)

	job, err := svc.Submit(context.Background(), earthengine.ExportRequest{
		StartDate: "2024-08-01",
		EndDate:   "2024-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusSubmitted, job.Status)
	assert.NotEqual(t, uuid.Nil, job.ID)
}

func TestListJobsRequiresRepo(t *testing.T) {
	svc := NewService(&fakeSubmitter{}, testConfig(), nil, nil)
	_, err := svc.ListJobs(context.Background(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDatabase)
}
