// filepath: internal/maintenance/service_test.go
package maintenance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	noShows       int
	noShowsErr    error
	pruned        int
	prunedErr     error
	activities    int
	activitiesErr error
	noShowCalls   int
	pruneCalls    int
	activityCalls int
	lastToday     string
	lastDays      int
}

func (f *fakeDB) MarkOverdueNoShows(today string) (int, error) {
	f.noShowCalls++
	f.lastToday = today
	return f.noShows, f.noShowsErr
}

func (f *fakeDB) PruneExpiredRefreshTokens() (int, error) {
	f.pruneCalls++
	return f.pruned, f.prunedErr
}

func (f *fakeDB) PruneActivities(days int) (int, error) {
	f.activityCalls++
	f.lastDays = days
	return f.activities, f.activitiesErr
}

func TestRunReportsTaskResults(t *testing.T) {
	db := &fakeDB{noShows: 3, pruned: 7, activities: 12}

	report, err := Run(Dependencies{DB: db})
	require.NoError(t, err)
	assert.Equal(t, 3, report.NoShowsMarked)
	assert.Equal(t, 7, report.TokensPruned)
	assert.Equal(t, 12, report.ActivitiesPruned)
	assert.Equal(t, 1, db.noShowCalls)
	assert.Equal(t, 1, db.pruneCalls)
	assert.Equal(t, 1, db.activityCalls)
	assert.Equal(t, ActivityRetentionDays, db.lastDays)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, db.lastToday)
}

func TestRunContinuesAfterTaskFailure(t *testing.T) {
	db := &fakeDB{noShowsErr: errors.New("locked"), pruned: 2, activities: 4}

	report, err := Run(Dependencies{DB: db})
	require.NoError(t, err)
	assert.Zero(t, report.NoShowsMarked)
	assert.Equal(t, 2, report.TokensPruned, "token pruning still runs after a failed task")
	assert.Equal(t, 4, report.ActivitiesPruned, "activity pruning still runs after a failed task")
	assert.Equal(t, 1, db.pruneCalls)
	assert.Equal(t, 1, db.activityCalls)
}

func TestNewServiceEnforcesMinimumInterval(t *testing.T) {
	svc := NewService(Dependencies{DB: &fakeDB{}}, 0)
	assert.Equal(t, MinInterval, svc.interval)
}

func TestStartAndStop(t *testing.T) {
	db := &fakeDB{}
	svc := NewService(Dependencies{DB: db}, MinInterval)
	svc.Start()
	svc.Stop()
}
