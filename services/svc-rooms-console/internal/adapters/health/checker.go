package health

import (
	"context"
	"time"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
)

// Checker answers liveness from the process itself and readiness from the
// registered dependency probes.
type Checker struct {
	version string
	probes  []ports.DependencyProbe
}

var _ ports.HealthChecker = (*Checker)(nil)

func NewChecker(version string, probes ...ports.DependencyProbe) *Checker {
	return &Checker{
		version: version,
		probes:  probes,
	}
}

func (c *Checker) Liveness(_ context.Context) (*model.LivenessReport, error) {
	return &model.LivenessReport{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Version:   c.version,
	}, nil
}

func (c *Checker) Readiness(ctx context.Context) (*model.ReadinessReport, error) {
	report := &model.ReadinessReport{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Version:   c.version,
		Checks:    make(map[string]model.DependencyCheck, len(c.probes)),
	}

	for _, probe := range c.probes {
		start := time.Now()
		check := probe.Probe(ctx)
		check.LatencyMs = uint64(time.Since(start).Milliseconds())

		report.Checks[probe.Name()] = check

		switch check.Status {
		case model.DependencyStatusDown:
			report.Status = model.HealthStatusDown
		case model.DependencyStatusDegraded:
			if report.Status == model.HealthStatusOK {
				report.Status = model.HealthStatusDegraded
			}
		}
	}

	return report, nil
}
