package services

import (
	"context"
	"time"

	"rinkside_server/models"
)

// Version is the package version reported by /api/version.
const Version = "1.0.0"

// HealthStatus is the /api/health payload.
type HealthStatus struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitBranch string `json:"gitBranch,omitempty"`
	Database  string `json:"database"`
	Announcer string `json:"announcer"`
}

// HealthService answers liveness questions: static process metadata
// plus one best-effort store probe.
type HealthService struct {
	Dynamo           *DynamoService
	TablePrefix      string
	GitCommit        string
	GitBranch        string
	AnnouncerEnabled bool

	started time.Time
}

// NewHealthService records the process start time.
func NewHealthService(dynamo *DynamoService, tablePrefix, gitCommit, gitBranch string, announcerEnabled bool) *HealthService {
	return &HealthService{
		Dynamo:           dynamo,
		TablePrefix:      tablePrefix,
		GitCommit:        gitCommit,
		GitBranch:        gitBranch,
		AnnouncerEnabled: announcerEnabled,
		started:          time.Now(),
	}
}

// Check probes the store with a limit-1 scan and derives healthy vs
// degraded. A degraded report is not an error; the caller decides the
// status code.
func (hs *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Uptime:    time.Since(hs.started).Round(time.Second).String(),
		Version:   Version,
		GitCommit: hs.GitCommit,
		GitBranch: hs.GitBranch,
		Database:  "ok",
		Announcer: "disabled",
	}
	if hs.AnnouncerEnabled {
		status.Announcer = "enabled"
	}

	probe, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := hs.Dynamo.ScanItems(probe, hs.TablePrefix+models.ContainerGames, 1); err != nil {
		status.Status = "degraded"
		status.Database = "error"
	}
	return status
}
