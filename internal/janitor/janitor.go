// Package janitor runs the periodic belt-and-suspenders sweep of empty,
// stale rooms, grounded on the teacher's utils.CronCleaner daily job
// built on robfig/cron/v3 — generalized from a GORM expiry sweep to the
// in-memory Registry's EvictEmpty, since this server persists nothing.
package janitor

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"doodleserver/internal/roomregistry"
)

// staleAfter is how long a zero-member room may linger before the
// janitor reclaims it. Under normal operation the Session Router already
// deletes a room synchronously the instant its last user disconnects
// (spec §4.4), so this sweep exists purely as a safety net against a
// missed reclamation.
const staleAfter = 10 * time.Minute

// schedule is a conservative cadence; an empty room lingering a few
// minutes costs nothing but a map entry.
const schedule = "@every 5m"

// Janitor periodically evicts empty rooms via a cron schedule.
type Janitor struct {
	registry *roomregistry.Registry
	clock    func() time.Time
	logger   *zap.Logger
	cron     *cron.Cron
}

// New builds a Janitor. clock is injectable for tests; production
// wiring passes time.Now.
func New(registry *roomregistry.Registry, clock func() time.Time, logger *zap.Logger) *Janitor {
	return &Janitor{registry: registry, clock: clock, logger: logger, cron: cron.New()}
}

// Start schedules the sweep and begins running it in the background.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(schedule, j.sweep)
	if err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for any in-flight sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) sweep() {
	evicted := j.registry.EvictEmpty(staleAfter, j.clock())
	if evicted > 0 {
		j.logger.Info("janitor evicted stale empty rooms", zap.Int("count", evicted))
	}
}
