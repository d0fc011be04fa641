package services

import (
	"context"
	"fmt"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/server/repositories/files"
	"github.com/ASLawan/alx-files-manager/internal/server/repositories/users"
	"github.com/ASLawan/alx-files-manager/internal/server/sessions"
)

// DBPinger reports reachability of the metadata store.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// Status reports liveness of the two external stores.
type Status struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Stats reports collection counts.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// AppService serves the operational endpoints: store liveness and record
// counts.
type AppService struct {
	sessions sessions.Store
	db       DBPinger
	users    users.Repository
	files    files.Repository
}

func NewAppService(s sessions.Store, db DBPinger, u users.Repository, f files.Repository) *AppService {
	return &AppService{sessions: s, db: db, users: u, files: f}
}

// Status pings both stores. A failed ping is reported as false, never as an
// error; the endpoint itself always succeeds.
func (s *AppService) Status(ctx context.Context) Status {
	return Status{
		Redis: s.sessions.Ping(ctx) == nil,
		DB:    s.db.Ping(ctx) == nil,
	}
}

// GetStats counts users and files.
func (s *AppService) GetStats(ctx context.Context) (Stats, error) {
	nUsers, err := s.users.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	nFiles, err := s.files.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return Stats{Users: nUsers, Files: nFiles}, nil
}
