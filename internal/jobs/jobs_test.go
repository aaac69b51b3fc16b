package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"checkout/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRelayer struct{ mock.Mock }

func (m *MockOutboxRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RelayOutboxResult), args.Error(1)
}

type MockStaleOrderCanceler struct{ mock.Mock }

func (m *MockStaleOrderCanceler) Handle(ctx context.Context, cmd commands.CancelStaleOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func counter(name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: name})
}

func TestOutboxRelayJob_RunOnce_CountsResults(t *testing.T) {
	relayer := &MockOutboxRelayer{}
	published, failed := counter("published"), counter("failed")
	job := NewOutboxRelayJob(relayer, 50, published, failed, testLogger())

	relayer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RelayOutboxCommand) bool {
		return cmd.BatchSize() == 50
	})).Return(commands.RelayOutboxResult{Published: 3}, nil).Once()
	relayer.On("Handle", mock.Anything, mock.Anything).
		Return(commands.RelayOutboxResult{Published: 1, Failed: 1}, errors.New("broker down")).Once()

	job.RunOnce(t.Context())
	job.RunOnce(t.Context())

	assert.InDelta(t, 4, testutil.ToFloat64(published), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(failed), 0)
	relayer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_InvalidBatchSize(t *testing.T) {
	relayer := &MockOutboxRelayer{}
	job := NewOutboxRelayJob(relayer, 0, counter("published"), counter("failed"), testLogger())

	job.RunOnce(t.Context())

	relayer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestStaleOrderJob_RunOnce_DrainsFullBatches(t *testing.T) {
	canceler := &MockStaleOrderCanceler{}
	canceled := counter("canceled")
	job := NewStaleOrderJob(canceler, 30*time.Minute, canceled, testLogger())

	isTTL := mock.MatchedBy(func(cmd commands.CancelStaleOrdersCommand) bool {
		return cmd.TTL() == 30*time.Minute && cmd.BatchSize() == staleOrderBatchSize
	})
	canceler.On("Handle", mock.Anything, isTTL).Return(staleOrderBatchSize, nil).Once()
	canceler.On("Handle", mock.Anything, isTTL).Return(7, nil).Once()

	job.RunOnce(t.Context())

	assert.InDelta(t, staleOrderBatchSize+7, testutil.ToFloat64(canceled), 0)
	canceler.AssertNumberOfCalls(t, "Handle", 2)
}

func TestStaleOrderJob_RunOnce_StopsOnError(t *testing.T) {
	canceler := &MockStaleOrderCanceler{}
	canceled := counter("canceled")
	job := NewStaleOrderJob(canceler, time.Hour, canceled, testLogger())

	canceler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()

	job.RunOnce(t.Context())

	assert.Zero(t, testutil.ToFloat64(canceled))
	canceler.AssertNumberOfCalls(t, "Handle", 1)
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeJob) Start() error {
	f.started = f.startErr == nil
	return f.startErr
}

func (f *fakeJob) Stop() { f.stopped = true }

func TestJobManager_StartAllRollsBackOnFailure(t *testing.T) {
	first := &fakeJob{}
	second := &fakeJob{startErr: errors.New("bad schedule")}
	jm := &JobManager{
		jobs:   []namedJob{{name: "first", job: first}, {name: "second", job: second}},
		logger: testLogger(),
	}

	err := jm.StartAll()
	require.ErrorContains(t, err, "failed to start second job")
	assert.True(t, first.stopped)
	assert.False(t, second.stopped)
}

func TestJobManager_SkipsDisabledJobs(t *testing.T) {
	staleJob := NewStaleOrderJob(&MockStaleOrderCanceler{}, time.Hour, counter("canceled"), testLogger())
	jm := NewJobManager(nil, staleJob, testLogger())

	require.Len(t, jm.jobs, 1)
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
