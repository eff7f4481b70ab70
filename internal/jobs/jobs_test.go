package jobs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hostel-ledger-backend/internal/config"
	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) Summary(ctx context.Context, month domain.Month) (*domain.FleetSummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FleetSummary), args.Error(1)
}
func (m *MockDashboardService) Dashboard(ctx context.Context, month domain.Month) (*domain.Dashboard, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendDuesDigest(ctx context.Context, digest service.DuesDigest) error {
	return m.Called(ctx, digest).Error(0)
}

type MockSnapshotRepo struct{ mock.Mock }

func (m *MockSnapshotRepo) Upsert(ctx context.Context, snap *domain.MonthlySnapshot) error {
	return m.Called(ctx, snap).Error(0)
}
func (m *MockSnapshotRepo) GetByMonth(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}

type MockReportService struct{ mock.Mock }

func (m *MockReportService) ExportMonth(ctx context.Context, month domain.Month, w io.Writer) error {
	args := m.Called(ctx, month, w)
	if body := args.String(0); body != "" {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(1)
}
func (m *MockReportService) Workbook(ctx context.Context, month domain.Month, fresh bool, w io.Writer) error {
	args := m.Called(ctx, month, fresh, w)
	return args.Error(0)
}
func (m *MockReportService) Snapshot(ctx context.Context, month domain.Month) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}

type MockArchive struct {
	mock.Mock
	saved map[string]string
}

func (m *MockArchive) Save(ctx context.Context, key string, r io.Reader) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if m.saved == nil {
		m.saved = map[string]string{}
	}
	m.saved[key] = string(body)
	return m.Called(ctx, key).Error(0)
}

func (m *MockArchive) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockArchive) Exists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

var jobNow = time.Date(2024, 7, 1, 0, 5, 0, 0, time.UTC)

func newRunner() (*JobRunner, *MockDashboardService, *MockNotifier, *MockSnapshotRepo) {
	dash, notifier, snaps := new(MockDashboardService), new(MockNotifier), new(MockSnapshotRepo)
	cfg := &config.Config{Server: config.ServerConfig{Timezone: "UTC"}}
	jr := NewJobRunner(&Services{Dashboard: dash, Notifier: notifier}, snaps, nil, cfg)
	jr.now = func() time.Time { return jobNow }
	return jr, dash, notifier, snaps
}

func TestSendDuesDigest(t *testing.T) {
	july := domain.NewMonth(2024, 7)
	chitra := domain.Tenant{ID: "t3", Name: "Chitra"}

	t.Run("SendsWhenSomeoneOwes", func(t *testing.T) {
		jr, dash, notifier, _ := newRunner()
		dash.On("Summary", mock.Anything, july).Return(&domain.FleetSummary{
			Month: july, PendingRent: []domain.Tenant{chitra}, PendingMess: []domain.Tenant{},
		}, nil)
		notifier.On("SendDuesDigest", mock.Anything, service.DuesDigest{
			Month: july, PendingRent: []domain.Tenant{chitra}, PendingMess: []domain.Tenant{},
		}).Return(nil)

		require.NoError(t, jr.SendDuesDigest())
		notifier.AssertExpectations(t)
	})

	t.Run("SkipsWhenNobodyOwes", func(t *testing.T) {
		jr, dash, notifier, _ := newRunner()
		dash.On("Summary", mock.Anything, july).Return(&domain.FleetSummary{Month: july}, nil)

		require.NoError(t, jr.SendDuesDigest())
		notifier.AssertNotCalled(t, "SendDuesDigest", mock.Anything, mock.Anything)
	})

	t.Run("NotifierFailure", func(t *testing.T) {
		jr, dash, notifier, _ := newRunner()
		dash.On("Summary", mock.Anything, july).Return(&domain.FleetSummary{Month: july, PendingMess: []domain.Tenant{chitra}}, nil)
		notifier.On("SendDuesDigest", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		assert.ErrorContains(t, jr.SendDuesDigest(), "smtp down")
	})
}

func TestTakeMonthlySnapshot_PreviousMonth(t *testing.T) {
	jr, dash, _, snaps := newRunner()
	june := domain.NewMonth(2024, 6)
	dash.On("Summary", mock.Anything, june).Return(&domain.FleetSummary{
		Month: june, ActiveCount: 3, InactiveCount: 1,
		PendingRent: []domain.Tenant{{ID: "t2"}, {ID: "t3"}}, PendingMess: []domain.Tenant{{ID: "t1"}},
		TotalRentCollected: 12000, TotalMessCollected: 2400, TotalDepositsHeld: 13100,
	}, nil)
	snaps.On("Upsert", mock.Anything, &domain.MonthlySnapshot{
		Month: june, ActiveCount: 3, InactiveCount: 1, PendingRentCount: 2, PendingMessCount: 1,
		TotalRentCollected: 12000, TotalMessCollected: 2400, TotalDepositsHeld: 13100, TakenAt: jobNow,
	}).Return(nil)

	require.NoError(t, jr.TakeMonthlySnapshot())
	snaps.AssertExpectations(t)
}

func TestTakeSnapshotFor_ArchivesWorkbook(t *testing.T) {
	jr, dash, _, snaps := newRunner()
	reports, archive := new(MockReportService), new(MockArchive)
	jr.services.Reports = reports
	jr.archive = archive

	may := domain.NewMonth(2024, 5)
	dash.On("Summary", mock.Anything, may).Return(&domain.FleetSummary{Month: may}, nil)
	snaps.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	reports.On("ExportMonth", mock.Anything, may, mock.Anything).Return("xlsx-bytes", nil)
	archive.On("Save", mock.Anything, "reports/ledger_2024_05.xlsx").Return(nil)

	require.NoError(t, jr.TakeSnapshotFor(may))
	assert.Equal(t, "xlsx-bytes", archive.saved["reports/ledger_2024_05.xlsx"])
}

func TestTakeSnapshotFor_ExportFailure(t *testing.T) {
	jr, dash, _, snaps := newRunner()
	reports, archive := new(MockReportService), new(MockArchive)
	jr.services.Reports = reports
	jr.archive = archive

	may := domain.NewMonth(2024, 5)
	dash.On("Summary", mock.Anything, may).Return(&domain.FleetSummary{Month: may}, nil)
	snaps.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	reports.On("ExportMonth", mock.Anything, may, mock.Anything).Return("", errors.New("disk full"))

	err := jr.TakeSnapshotFor(may)
	assert.ErrorContains(t, err, "export report for May 2024")
	archive.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTakeSnapshotFor_StoreFailure(t *testing.T) {
	jr, dash, _, snaps := newRunner()
	march := domain.NewMonth(2024, 3)
	dash.On("Summary", mock.Anything, march).Return(nil, &domain.DataFetchError{Op: "list tenants", Err: assert.AnError})

	err := jr.TakeSnapshotFor(march)
	assert.True(t, domain.IsDataFetch(err))
	snaps.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRunWithRecovery_Panic(t *testing.T) {
	jr, _, _, _ := newRunner()
	err := jr.runWithRecovery("Explode", func(context.Context) error { panic("boom") })

	var pe *JobPanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Explode", pe.Job)
}
