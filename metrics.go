package fockspace

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting basis metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInit is called after each basis (re)initialization.
	// numStates is the number of single-species states, err is nil if successful.
	RecordInit(numSites, numStates int, duration time.Duration, err error)

	// RecordSector is called every time a BasisSector is built.
	RecordSector(f Fillings, size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInit(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSector(Fillings, int)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InitCount      atomic.Int64
	InitErrors     atomic.Int64
	InitTotalNanos atomic.Int64
	SpinStates     atomic.Int64
	SectorCount    atomic.Int64
	SectorStates   atomic.Int64
}

// RecordInit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInit(numSites, numStates int, duration time.Duration, err error) {
	b.InitCount.Add(1)
	b.InitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InitErrors.Add(1)
		return
	}
	b.SpinStates.Store(int64(numStates))
}

// RecordSector implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSector(_ Fillings, size int) {
	b.SectorCount.Add(1)
	b.SectorStates.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InitCount:    b.InitCount.Load(),
		InitErrors:   b.InitErrors.Load(),
		InitAvgNanos: b.getAvgInitNanos(),
		SpinStates:   b.SpinStates.Load(),
		SectorCount:  b.SectorCount.Load(),
		SectorStates: b.SectorStates.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInitNanos() int64 {
	count := b.InitCount.Load()
	if count == 0 {
		return 0
	}
	return b.InitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InitCount    int64
	InitErrors   int64
	InitAvgNanos int64
	SpinStates   int64
	SectorCount  int64
	SectorStates int64
}
