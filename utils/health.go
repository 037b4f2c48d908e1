package utils

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pinger is satisfied by the store clients whose reachability is reported.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"` // nil when events are disabled
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest health snapshot.
type HealthMonitor struct {
	mongo Pinger
	redis Pinger

	mu      sync.RWMutex
	current HealthStatus
	cron    *cron.Cron
}

// NewHealthMonitor creates a monitor. redis may be nil.
func NewHealthMonitor(mongo, redis Pinger) *HealthMonitor {
	return &HealthMonitor{mongo: mongo, redis: redis}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.mongo.Ping(ctx) == nil,
		CheckedAt: time.Now(),
	}
	if m.redis != nil {
		ok := m.redis.Ping(ctx) == nil
		status.Redis = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start runs a check immediately and then on schedule (a cron spec such as
// "@every 60s").
func (m *HealthMonitor) Start(schedule string) error {
	m.Check(context.Background())

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		status := m.Check(context.Background())
		if !status.Mongo {
			GetLogger().Warn("health check: MongoDB unreachable")
		}
		if status.Redis != nil && !*status.Redis {
			GetLogger().Warn("health check: Redis unreachable")
		}
	}); err != nil {
		return err
	}
	c.Start()
	m.cron = c
	GetLogger().Debug("health monitor started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the schedule.
func (m *HealthMonitor) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}
