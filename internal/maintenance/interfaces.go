// filepath: internal/maintenance/interfaces.go
package maintenance

// DBTX is the slice of the repository the maintenance tasks need.
type DBTX interface {
	MarkOverdueNoShows(today string) (int, error)
	PruneExpiredRefreshTokens() (int, error)
	PruneActivities(days int) (int, error)
}

// Dependencies bundles everything the worker needs to run its tasks.
type Dependencies struct {
	DB DBTX
}
