package controller

import (
	"civilprotection-backend/dal"
	"civilprotection-backend/middelware"
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/services"
	"civilprotection-backend/utils/logger"
	"civilprotection-backend/utils/swagger"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controller struct {
	Volunteer *VolunteerController
	Vehicle   *VehicleController
	Service   *ServiceController
	Role      *RoleController
	Group     *GroupController

	auth     *middelware.Authenticator
	db       dal.DatabaseClientInterface
	config   *models.Config
	logger   logger.Logger
	registry *prometheus.Registry
}

// NewController wires repositories, services and the token verifier over db
func NewController(cfg *models.Config, db dal.DatabaseClientInterface, log logger.Logger) *Controller {
	repoContainer := repository.NewRepository(db, log)
	serviceContainer := services.NewService(repoContainer, log, cfg)

	keys := middelware.NewJWKSClient(cfg.JWKSEndpoint(), cfg.JWKSTimeout, cfg.JWKSCacheTTL, log)
	verifier := middelware.NewTokenVerifier(cfg, keys, log)

	return &Controller{
		Volunteer: NewVolunteerController(serviceContainer.GetVolunteerService(), log),
		Vehicle:   NewVehicleController(serviceContainer.GetVehicleService(), log),
		Service:   NewServiceController(serviceContainer.GetServiceService(), log),
		Role:      NewRoleController(serviceContainer.GetRoleService(), log),
		Group:     NewGroupController(serviceContainer.GetGroupService(), log),
		auth:      middelware.NewAuthenticator(verifier, log),
		db:        db,
		config:    cfg,
		logger:    log,
		registry:  prometheus.NewRegistry(),
	}
}

// Router builds the gin engine with middleware and every route registered
func (c *Controller) Router() *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true

	logging := middelware.NewLoggingMiddleware(c.logger)
	r.Use(logging.Recovery(), logging.RequestID())
	if c.config.MetricsEnabled {
		c.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		r.Use(middelware.NewMetrics(c.registry).Instrument())
	}
	r.Use(logging.StructuredLogger(), middelware.NewCORSMiddleware(c.config.CORSOrigins).CORS())

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.ErrNotFound))
	})
	r.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, models.NewErrorResponse(models.ErrNotAllowed))
	})

	c.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers every endpoint on r
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "The server is up! :D",
		})
	})
	r.GET("/health", c.Health)

	if c.config.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})))
	}

	swaggerConfig := swagger.SwaggerConfig{
		Title:         c.config.AppName + " API",
		SwaggerDocURL: "/swagger/doc.json",
		Version:       c.config.AppVersion,
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/doc.json", swagger.ServeDoc(swaggerConfig))

	api := r.Group(c.config.BasePath)

	volunteers := api.Group("/volunteers")
	c.collection(volunteers, c.auth.OptionalAuth(""), c.Volunteer.ListVolunteers)
	c.collection(volunteers, c.auth.RequireAuth(models.PermPostVolunteers), c.Volunteer.CreateVolunteer, http.MethodPost)
	volunteers.GET("/:id", c.auth.OptionalAuth(""), c.Volunteer.GetVolunteer)
	volunteers.PATCH("/:id", protectID(models.VolunteerUpdateProtected, models.ErrForbiddenUpdate), c.auth.RequireAuth(models.PermPatchVolunteers), c.Volunteer.UpdateVolunteer)
	volunteers.DELETE("/:id", protectID(models.VolunteerDeleteProtected, models.ErrForbiddenDelete), c.auth.RequireAuth(models.PermDeleteVolunteers), c.Volunteer.DeleteVolunteer)

	vehicles := api.Group("/vehicles")
	c.collection(vehicles, c.auth.OptionalAuth(""), c.Vehicle.ListVehicles)
	c.collection(vehicles, c.auth.RequireAuth(models.PermPostVehicles), c.Vehicle.CreateVehicle, http.MethodPost)
	vehicles.GET("/:id", c.auth.OptionalAuth(""), c.Vehicle.GetVehicle)
	vehicles.PATCH("/:id", protectID(models.VehicleUpdateProtected, models.ErrForbiddenUpdate), c.auth.RequireAuth(models.PermPatchVehicles), c.Vehicle.UpdateVehicle)
	vehicles.DELETE("/:id", protectID(models.VehicleDeleteProtected, models.ErrForbiddenDelete), c.auth.RequireAuth(models.PermDeleteVehicles), c.Vehicle.DeleteVehicle)

	serviceRoutes := api.Group("/services")
	c.collection(serviceRoutes, c.auth.OptionalAuth(""), c.Service.ListServices)
	c.collection(serviceRoutes, c.auth.RequireAuth(models.PermPostServices), c.Service.CreateService, http.MethodPost)
	serviceRoutes.GET("/:id", c.auth.OptionalAuth(""), c.Service.GetService)
	serviceRoutes.PATCH("/:id", protectID(models.ServiceUpdateProtected, models.ErrForbiddenUpdate), c.auth.RequireAuth(models.PermPatchServices), c.Service.UpdateService)
	serviceRoutes.DELETE("/:id", protectID(models.ServiceDeleteProtected, models.ErrForbiddenDelete), c.auth.RequireAuth(models.PermDeleteServices), c.Service.DeleteService)

	roles := api.Group("/roles")
	c.collection(roles, nil, c.Role.GetRoles)
	roles.GET("/:id", c.Role.GetRole)

	groups := api.Group("/groups")
	c.collection(groups, nil, c.Group.GetGroups)
	groups.GET("/:id", c.Group.GetGroup)
}

// collection registers handler on the group root with and without a
// trailing slash. The method defaults to GET.
func (c *Controller) collection(g *gin.RouterGroup, auth gin.HandlerFunc, handler gin.HandlerFunc, method ...string) {
	m := http.MethodGet
	if len(method) > 0 {
		m = method[0]
	}
	handlers := []gin.HandlerFunc{handler}
	if auth != nil {
		handlers = []gin.HandlerFunc{auth, handler}
	}
	g.Handle(m, "", handlers...)
	g.Handle(m, "/", handlers...)
}

// Health handles GET /health
// @Summary Liveness and database check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (c *Controller) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status, code, database := "healthy", http.StatusOK, "up"
	if err := c.db.Ping(pingCtx); err != nil {
		c.logger.Errorf("Health check failed: %v", err)
		status, code, database = "unhealthy", http.StatusServiceUnavailable, "down"
	}

	ctx.JSON(code, gin.H{
		"success":  code == http.StatusOK,
		"status":   status,
		"database": database,
		"version":  c.config.AppVersion,
		"service":  c.config.AppName,
	})
}
