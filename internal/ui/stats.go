package ui

import "sync/atomic"

// Stats counts web activity since process start.
type Stats struct {
	Generations atomic.Int64
	Fallbacks   atomic.Int64
	AIScripts   atomic.Int64
	Exports     atomic.Int64
	Failures    atomic.Int64
}

type StatsSnapshot struct {
	Generations int64 `json:"generations"`
	Fallbacks   int64 `json:"fallbacks"`
	AIScripts   int64 `json:"ai_scripts"`
	Exports     int64 `json:"exports"`
	Failures    int64 `json:"failures"`
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Generations: s.Generations.Load(),
		Fallbacks:   s.Fallbacks.Load(),
		AIScripts:   s.AIScripts.Load(),
		Exports:     s.Exports.Load(),
		Failures:    s.Failures.Load(),
	}
}
