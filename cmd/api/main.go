package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"oficina/internal/config"
	"oficina/internal/database"
	"oficina/internal/domain"
	"oficina/internal/middleware"
	"oficina/internal/modules/admin"
	"oficina/internal/modules/auth"
	"oficina/internal/modules/clients"
	"oficina/internal/modules/machines"
	"oficina/internal/modules/materials"
	"oficina/internal/modules/projects"
	"oficina/internal/modules/quotes"
	"oficina/internal/modules/settings"
	"oficina/internal/modules/team"
	jwtsvc "oficina/internal/pkg/jwt"
	"oficina/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Machine{},
		&domain.Material{},
		&domain.Client{},
		&domain.Project{},
		&domain.TeamMember{},
		&domain.ShopSettings{},
		&domain.Quote{},
		&domain.QuoteItem{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := auth.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	machineRepo := repository.NewMachineRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(
		userRepo,
		j,
		auth.NewDevConsoleMailer(cfg.DevMailerEnabled),
		cfg.ResetCodePepper,
		cfg.ResetCodeTTL,
		cfg.ResetCodeCooldown,
	)
	authHandler := auth.NewHandler(authService)

	adminHandler := admin.NewHandler(admin.NewService(userRepo))
	machinesHandler := machines.NewHandler(machines.NewService(machineRepo, settingsRepo))
	materialsHandler := materials.NewHandler(materials.NewService(materialRepo))
	clientsHandler := clients.NewHandler(clients.NewService(clientRepo))
	projectsHandler := projects.NewHandler(projects.NewService(projectRepo, clientRepo))
	teamHandler := team.NewHandler(team.NewService(teamRepo))
	settingsHandler := settings.NewHandler(settings.NewService(settingsRepo))
	quotesHandler := quotes.NewHandler(quotes.NewService(
		quoteRepo,
		machineRepo,
		materialRepo,
		clientRepo,
		projectRepo,
		settingsRepo,
	))

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			machinesHandler.RegisterRoutes(protected)
			materialsHandler.RegisterRoutes(protected)
			clientsHandler.RegisterRoutes(protected)
			projectsHandler.RegisterRoutes(protected)
			teamHandler.RegisterRoutes(protected)
			quotesHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}

			settingsHandler.RegisterRoutes(protected, adminGroup)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
