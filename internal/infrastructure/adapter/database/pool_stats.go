package database

import "time"

// ConnectionPoolMetrics is a snapshot of the connection pool
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// LogFields returns the metrics as structured log fields
func (p ConnectionPoolMetrics) LogFields() map[string]any {
	return map[string]any{
		"open_connections":     p.OpenConnections,
		"idle":                 p.IdleConnections,
		"max_open_connections": p.MaxOpenConnections,
		"in_use":               p.InUse,
		"wait_count":           p.WaitCount,
		"wait_duration_ms":     p.WaitDuration.Milliseconds(),
	}
}

// Stats returns the current pool metrics. With idle connections disabled,
// OpenConnections is zero whenever no operation is running.
func (m *Manager) Stats() ConnectionPoolMetrics {
	if m.db == nil {
		return ConnectionPoolMetrics{}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}
	}

	stats := sqlDB.Stats()
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
}
