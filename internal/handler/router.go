package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/realtime"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
)

// RouterConfig bundles everything the route table needs
type RouterConfig struct {
	Auth *middleware.AuthConfig
	CORS middleware.CORSConfig

	Health   *HealthHandler
	Org      *OrgHandler
	User     *UserHandler
	Team     *TeamHandler
	Service  *ServiceHandler
	Incident *IncidentHandler
	Status   *StatusHandler
	Log      *LogHandler
	WS       *realtime.Handler
}

// NewRouter builds the gin engine. Health and /ws are registered before the
// authorization gate so they never pass through it; the public org, user-sync
// and status endpoints pass through the gate but match its bypass prefixes.
func NewRouter(cfg *RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/", cfg.Health.Check)
	r.GET("/ws", cfg.WS.Serve)

	r.Use(middleware.AuthMiddleware(cfg.Auth))

	org := r.Group("/org")
	{
		org.POST("/create-org", cfg.Org.Create)
		org.GET("/get-all-orgs", cfg.Org.GetAll)
		org.GET("/get-org-by-domain", cfg.Org.GetByDomain)
	}

	user := r.Group("/user")
	{
		user.POST("/sync-user-to-db", cfg.User.Sync)
		user.POST("/update-current-org", cfg.User.UpdateCurrentOrg)
		user.GET("/:id", cfg.User.GetByID)
	}

	team := r.Group("/team")
	{
		team.POST("/create-team", cfg.Team.Create)
		team.GET("/get-all-teams", cfg.Team.GetAll)
		team.GET("/:id", cfg.Team.GetByID)
	}

	svc := r.Group("/service")
	{
		svc.POST("/create-service", cfg.Service.Create)
		svc.POST("/update-service", cfg.Service.Update)
		svc.GET("/get-all-services", cfg.Service.GetAll)
		svc.GET("/get-status-logs", cfg.Service.GetStatusLogs)
		svc.DELETE("/delete-service", cfg.Service.Delete)
		svc.GET("/:id", cfg.Service.GetByID)
	}

	incident := r.Group("/incident")
	{
		incident.POST("/create-incident", cfg.Incident.Create)
		incident.POST("/update-incident", cfg.Incident.Update)
		incident.GET("/get-all-incidents", cfg.Incident.GetAll)
		incident.DELETE("/delete-incident", cfg.Incident.Delete)
		incident.GET("/:id", cfg.Incident.GetByID)
	}

	r.GET("/status/get-org-status", cfg.Status.GetOrgStatus)

	logGroup := r.Group("/log")
	{
		logGroup.GET("/get-all-logs", cfg.Log.GetAll)
		logGroup.GET("/get-logs-by-org", cfg.Log.GetByOrg)
	}

	return r
}
