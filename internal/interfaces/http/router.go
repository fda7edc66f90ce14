// Package http assembles the gin engine: repositories, use cases, handlers
// and middleware, wired in one place.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "atende/internal/application/admin/usecases"
	authusecases "atende/internal/application/auth/usecases"
	ticketusecases "atende/internal/application/ticket/usecases"
	workspaceusecases "atende/internal/application/workspace/usecases"
	infraauth "atende/internal/infrastructure/auth"
	"atende/internal/infrastructure/cache"
	"atende/internal/infrastructure/config"
	"atende/internal/infrastructure/email"
	"atende/internal/infrastructure/repository"
	adminhandlers "atende/internal/interfaces/http/handlers/admin"
	authhandlers "atende/internal/interfaces/http/handlers/auth"
	tickethandlers "atende/internal/interfaces/http/handlers/ticket"
	workspacehandlers "atende/internal/interfaces/http/handlers/workspace"
	"atende/internal/interfaces/http/middleware"
	"atende/internal/interfaces/http/routes"
	"atende/internal/shared/db"
	"atende/internal/shared/logger"
	"atende/internal/shared/services/sanitize"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
	logger logger.Interface
}

func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	r := &Router{
		engine: engine,
		config: cfg,
		logger: log,
	}
	r.setupRoutes(database)

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupRoutes(database *gorm.DB) {
	cfg := r.config
	log := r.logger

	// Repositories.
	userRepo := repository.NewUserRepository(database, log)
	adminRepo := repository.NewAdminRepository(database)
	workspaceRepo := repository.NewWorkspaceRepository(database)
	permissionRepo := repository.NewWorkspacePermissionRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	historyRepo := repository.NewStatusHistoryRepository(database)

	txMgr := db.NewTransactionManager(database)
	sanitizer := sanitize.NewSanitizer()

	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	// Optional collaborators. A nil interface disables the feature.
	var flagsCache adminusecases.AdminFlagsCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := time.Duration(cfg.Redis.AdminCheckTTLSeconds) * time.Second
		flagsCache = cache.NewAdminFlagsStore(client, ttl)
	}

	var notifier ticketusecases.StatusChangeNotifier
	if cfg.Email.Enabled {
		notifier = email.NewStatusChangeNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		}, userRepo, log)
	}

	// Use cases.
	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	meUC := authusecases.NewGetCurrentUserUseCase(userRepo, log)

	checkAccessUC := adminusecases.NewCheckAccessUseCase(adminRepo, flagsCache, log)
	grantAdminUC := adminusecases.NewGrantAdminUseCase(adminRepo, userRepo, flagsCache, log)
	revokeAdminUC := adminusecases.NewRevokeAdminUseCase(adminRepo, flagsCache, log)
	listAdminsUC := adminusecases.NewListAdminsUseCase(adminRepo, userRepo, log)
	listUsersUC := adminusecases.NewListUsersUseCase(userRepo, adminRepo, log)

	createWorkspaceUC := workspaceusecases.NewCreateWorkspaceUseCase(workspaceRepo, log)
	updateWorkspaceUC := workspaceusecases.NewUpdateWorkspaceUseCase(workspaceRepo, log)
	deleteWorkspaceUC := workspaceusecases.NewDeleteWorkspaceUseCase(workspaceRepo, permissionRepo, txMgr, log)
	listWorkspacesUC := workspaceusecases.NewListWorkspacesUseCase(workspaceRepo, log)
	listUserWorkspacesUC := workspaceusecases.NewListUserWorkspacesUseCase(workspaceRepo, permissionRepo, log)
	getPermissionsUC := workspaceusecases.NewGetUserPermissionsUseCase(workspaceRepo, permissionRepo, userRepo, log)
	setPermissionsUC := workspaceusecases.NewSetUserPermissionsUseCase(workspaceRepo, permissionRepo, userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, sanitizer, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listMyTicketsUC := ticketusecases.NewListMyTicketsUseCase(ticketRepo, log)
	listAllTicketsUC := ticketusecases.NewListAllTicketsUseCase(ticketRepo, userRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, historyRepo, txMgr, notifier, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, sanitizer, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, log)
	listHistoryUC := ticketusecases.NewListHistoryUseCase(ticketRepo, historyRepo, log)

	// Handlers.
	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC, meUC, log)
	adminHandler := adminhandlers.NewAdminHandler(checkAccessUC, grantAdminUC, revokeAdminUC, listAdminsUC, listUsersUC, log)
	workspaceHandler := workspacehandlers.NewWorkspaceHandler(
		createWorkspaceUC, updateWorkspaceUC, deleteWorkspaceUC,
		listWorkspacesUC, listUserWorkspacesUC, getPermissionsUC, setPermissionsUC, log)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listMyTicketsUC, listAllTicketsUC,
		updateTicketUC, addCommentUC, listCommentsUC, listHistoryUC, log)

	authMw := middleware.NewAuthMiddleware(jwtService, log)
	adminMw := middleware.NewAdminMiddleware(adminRepo, log)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMw,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:   ticketHandler,
		AuthMiddleware:  authMw,
		AdminMiddleware: adminMw,
	})
	routes.SetupWorkspaceRoutes(r.engine, &routes.WorkspaceRouteConfig{
		WorkspaceHandler: workspaceHandler,
		AuthMiddleware:   authMw,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:     adminHandler,
		TicketHandler:    ticketHandler,
		WorkspaceHandler: workspaceHandler,
		AuthMiddleware:   authMw,
		AdminMiddleware:  adminMw,
	})
}
