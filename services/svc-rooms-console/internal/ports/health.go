package ports

//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker

import (
	"context"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

type HealthChecker interface {
	Liveness(ctx context.Context) (*model.LivenessReport, error)
	Readiness(ctx context.Context) (*model.ReadinessReport, error)
}

// DependencyProbe reports the state of one upstream dependency.
type DependencyProbe interface {
	Name() string
	Probe(ctx context.Context) model.DependencyCheck
}
