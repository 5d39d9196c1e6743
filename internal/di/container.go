package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aditya26raj01/status-app-backend/internal/changefeed"
	"github.com/aditya26raj01/status-app-backend/internal/handler"
	"github.com/aditya26raj01/status-app-backend/internal/realtime"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/database"
)

// Container holds all dependencies for the status-app server
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache *redis.Client
	Feed  *changefeed.Publisher
	Hub   *realtime.Hub

	// Repositories
	UserRepo      repository.UserRepository
	OrgRepo       repository.OrgRepository
	ServiceRepo   repository.ServiceRepository
	IncidentRepo  repository.IncidentRepository
	TeamRepo      repository.TeamRepository
	ChangeLogRepo repository.ChangeLogRepository
	StatusLogRepo repository.StatusLogRepository

	// Services
	Recorder        *service.Recorder
	OrgService      service.OrgService
	UserService     service.UserService
	TeamService     service.TeamService
	ServiceService  service.ServiceService
	IncidentService service.IncidentService
	StatusService   service.StatusService
	LogService      service.LogService

	// Handlers
	HealthHandler   *handler.HealthHandler
	OrgHandler      *handler.OrgHandler
	UserHandler     *handler.UserHandler
	TeamHandler     *handler.TeamHandler
	ServiceHandler  *handler.ServiceHandler
	IncidentHandler *handler.IncidentHandler
	StatusHandler   *handler.StatusHandler
	LogHandler      *handler.LogHandler
	WSHandler       *realtime.Handler
}

// ContainerConfig contains the infrastructure handles the container wires up.
// Cache and Feed may be nil when Redis/Kafka are disabled.
type ContainerConfig struct {
	DB             *database.PostgresDB
	Cache          *redis.Client
	StatusCacheTTL time.Duration
	Feed           *changefeed.Publisher
	WSOriginAllows []string
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Cache: cfg.Cache,
		Feed:  cfg.Feed,
		Hub:   realtime.NewHub(),
	}

	pool := cfg.DB.Pool()

	// Initialize repositories
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.OrgRepo = repository.NewPostgresOrgRepository(pool)
	c.ServiceRepo = repository.NewPostgresServiceRepository(pool)
	c.IncidentRepo = repository.NewPostgresIncidentRepository(pool)
	c.TeamRepo = repository.NewPostgresTeamRepository(pool)
	c.ChangeLogRepo = repository.NewPostgresChangeLogRepository(pool)
	c.StatusLogRepo = repository.NewPostgresStatusLogRepository(pool)

	// Initialize services
	c.Recorder = service.NewRecorder(c.ChangeLogRepo, c.Feed, c.Hub)
	c.OrgService = service.NewOrgService(c.OrgRepo, c.UserRepo, c.Recorder)
	c.UserService = service.NewUserService(c.UserRepo, c.OrgRepo)
	c.TeamService = service.NewTeamService(c.TeamRepo, c.UserRepo, c.Recorder)
	c.ServiceService = service.NewServiceService(c.ServiceRepo, c.StatusLogRepo, c.Recorder)
	c.IncidentService = service.NewIncidentService(c.IncidentRepo, c.ServiceRepo, c.StatusLogRepo, c.Recorder)
	c.StatusService = service.NewStatusService(c.OrgRepo, c.ServiceRepo, c.IncidentRepo, c.Cache, cfg.StatusCacheTTL)
	c.LogService = service.NewLogService(c.ChangeLogRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.OrgHandler = handler.NewOrgHandler(c.OrgService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.TeamHandler = handler.NewTeamHandler(c.TeamService)
	c.ServiceHandler = handler.NewServiceHandler(c.ServiceService)
	c.IncidentHandler = handler.NewIncidentHandler(c.IncidentService)
	c.StatusHandler = handler.NewStatusHandler(c.StatusService)
	c.LogHandler = handler.NewLogHandler(c.LogService)
	c.WSHandler = realtime.NewHandler(c.Hub, cfg.WSOriginAllows)

	return c
}
