package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"drayage/internal/core/application/usecases/queries"
	"drayage/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusCounter struct {
	mock.Mock
}

func (m *MockStatusCounter) Handle(
	ctx context.Context,
	query queries.GetDispatchStatusCountsQuery,
) (queries.GetDispatchStatusCountsQueryResponse, error) {
	args := m.Called(ctx, query)
	counts, _ := args.Get(0).(queries.GetDispatchStatusCountsQueryResponse)
	return counts, args.Error(1)
}

type MockDispatchMetrics struct {
	mock.Mock
}

func (m *MockDispatchMetrics) ObserveTransition(action, outcome string) {
	m.Called(action, outcome)
}

func (m *MockDispatchMetrics) ObserveStartRollback() {
	m.Called()
}

func (m *MockDispatchMetrics) SetDispatchCounts(counts map[string]int) {
	m.Called(counts)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchStatusJob_Run(t *testing.T) {
	t.Run("should publish the counts", func(t *testing.T) {
		counter := &MockStatusCounter{}
		metrics := &MockDispatchMetrics{}
		counts := queries.GetDispatchStatusCountsQueryResponse{"DRAFT": 2, "IN_PROGRESS": 1}

		counter.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetDispatchStatusCountsQuery")).
			Return(counts, nil).Once()
		metrics.On("SetDispatchCounts", map[string]int{"DRAFT": 2, "IN_PROGRESS": 1}).Once()

		job := jobs.NewDispatchStatusJob(counter, metrics, "", discardLogger())
		err := job.Run(t.Context())

		require.NoError(t, err)
		counter.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})

	t.Run("should keep the gauge when the query fails", func(t *testing.T) {
		counter := &MockStatusCounter{}
		metrics := &MockDispatchMetrics{}
		counter.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		job := jobs.NewDispatchStatusJob(counter, metrics, "", discardLogger())
		err := job.Run(t.Context())

		require.EqualError(t, err, "connection refused")
		metrics.AssertNotCalled(t, "SetDispatchCounts", mock.Anything)
	})
}

func TestDispatchStatusJob_Start(t *testing.T) {
	t.Run("should refresh on schedule until stopped", func(t *testing.T) {
		counter := &MockStatusCounter{}
		metrics := &MockDispatchMetrics{}
		refreshed := make(chan struct{}, 10)

		counter.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetDispatchStatusCountsQueryResponse{"DRAFT": 1}, nil)
		metrics.On("SetDispatchCounts", mock.Anything).Run(func(mock.Arguments) {
			refreshed <- struct{}{}
		})

		job := jobs.NewDispatchStatusJob(counter, metrics, "* * * * * *", discardLogger())
		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-refreshed:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run within 3s")
		}
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewDispatchStatusJob(&MockStatusCounter{}, &MockDispatchMetrics{}, "every minute", discardLogger())

		assert.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should wrap a start failure", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockStatusCounter{}, &MockDispatchMetrics{}, "not a cron line", discardLogger())

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start dispatch status job")
	})

	t.Run("should start and stop every job", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockStatusCounter{}, &MockDispatchMetrics{}, "", discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
