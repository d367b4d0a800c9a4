// FilePath: server/stockkarte/internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itsatony/w4b_v3/server/stockkarte/api"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/cleanup"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/config"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/hubservice"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository/rediscache"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository/sqldb"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Server wires storage, services, monitoring and the HTTP router together.
// It does not listen; the embedding platform mounts Handler.
type Server struct {
	config     *config.Config
	db         database.DB
	redis      *redis.Client
	router     *api.Router
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
}

// New connects to the configured database and builds all services
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	s := &Server{config: cfg}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	inspections, err := s.initInspectionRepository(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.hubservice = hubservice.New(inspections)
	if err := s.hubservice.Validate(); err != nil {
		s.Close()
		return nil, err
	}

	s.monitoring, err = monitoring.NewService(cfg.Monitoring)
	if err != nil {
		s.Close()
		return nil, err
	}

	// Set up event handlers
	s.setupInspectionHandlers()
	s.setupCleanupHandlers()

	s.router = api.NewRouter(s.hubservice, s.monitoring.Handler(), cfg.Display.Tag())
	nuts.L.Infof("[Server] Ready (database %s, cache %t)", cfg.Database.Driver, s.redis != nil)
	return s, nil
}

func (s *Server) initInspectionRepository(ctx context.Context) (repository.InspectionRepository, error) {
	repo := sqldb.NewInspectionRepository(s.db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if !s.config.Redis.Enabled {
		return repo, nil
	}

	s.redis = rediscache.NewClient(s.config.Redis)
	if err := s.redis.Ping(ctx).Err(); err != nil {
		nuts.L.Warnf("[Server] Redis at %s not reachable, cache will fall back to the database: %v", s.config.Redis.Addr(), err)
	}
	return rediscache.New(repo, s.redis, s.config.Redis.TTL), nil
}

func (s *Server) setupInspectionHandlers() {
	s.hubservice.OnInspection(hubservice.EventInspectionRecorded, func(entry models.InspectionEntry) {
		s.monitoring.InspectionRecorded(entry.Record.Health().VarroaMites.String())
	})

	s.hubservice.OnInspection(hubservice.EventInspectionDeleted, func(entry models.InspectionEntry) {
		s.monitoring.InspectionsDeleted(1)
		s.monitoring.RecordEvent("inspection_deletion", map[string]string{
			"hive_id":       entry.HiveID,
			"inspection_id": entry.ID,
		})
	})
}

func (s *Server) setupCleanupHandlers() {
	// Handle hive-wide deletion events
	s.hubservice.Cleanup.OnCleanup(cleanup.EventHiveInspectionsDeleted, func(id string, count int64) {
		nuts.L.Infof("[Cleanup] All %d inspection(s) of hive %s deleted", count, id)
		s.monitoring.InspectionsDeleted(count)
		s.monitoring.RecordEvent("hive_inspections_deletion", map[string]string{
			"hive_id": id,
		})
	})

	// Handle retention purges
	s.hubservice.Cleanup.OnCleanup(cleanup.EventInspectionsPurged, func(id string, count int64) {
		nuts.L.Infof("[Cleanup] %d inspection(s) before %s purged", count, id)
		s.monitoring.InspectionsDeleted(count)
		s.monitoring.RecordEvent("inspections_purge", map[string]string{
			"before": id,
		})
	})
}

// Handler returns the HTTP API
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the service layer, for callers that bypass HTTP such as the CLI
func (s *Server) Hub() *hubservice.HubService {
	return s.hubservice
}

// Monitoring returns the metrics service
func (s *Server) Monitoring() *monitoring.Service {
	return s.monitoring
}

// Close releases the cache and database connections
func (s *Server) Close() error {
	var firstErr error
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			firstErr = err
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
