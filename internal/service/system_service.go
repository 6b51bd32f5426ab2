package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/database"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB
	features map[string]bool
}

// NewSystemService creates a new SystemService. features is reported as-is
// by CheckVersion.
func NewSystemService(db *sql.DB, features map[string]bool) *SystemService {
	return &SystemService{
		db:       db,
		features: features,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the applied schema version
// and whether embedded migrations are still pending.
func (s *SystemService) CheckVersion(ctx context.Context) (*model.VersionInfo, error) {
	current, err := database.SchemaVersion(ctx, s.db)
	if err != nil {
		return nil, err
	}
	latest, err := database.LatestVersion()
	if err != nil {
		return nil, err
	}

	features := make(map[string]bool, len(s.features))
	for k, v := range s.features {
		features[k] = v
	}

	info := &model.VersionInfo{
		AppVersion:      version.Version,
		DbVersion:       strconv.FormatInt(current, 10),
		Features:        features,
		MigrationNeeded: current < latest,
	}
	if info.MigrationNeeded {
		msg := fmt.Sprintf("database is at version %d, latest is %d", current, latest)
		info.MigrationMessage = &msg
	}

	return info, nil
}
