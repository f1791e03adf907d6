package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelbook/internal/cache"
	"travelbook/internal/config"
	"travelbook/internal/database"
	"travelbook/internal/middleware"
	"travelbook/internal/modules/auth"
	"travelbook/internal/modules/genimage"
	"travelbook/internal/modules/geo"
	"travelbook/internal/modules/hotels"
	"travelbook/internal/modules/packages"
	"travelbook/internal/modules/tours"
	"travelbook/internal/modules/upload"
	jwtsvc "travelbook/internal/pkg/jwt"
	"travelbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	listCache, err := cache.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	tourRepo := repository.NewTourRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	geoRepo := repository.NewGeoRepository(db)
	uploadRepo := upload.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	packageService := packages.NewService(packageRepo, roomRepo, listCache, cfg.CacheTTL, cfg.Placeholder)
	packageHandler := packages.NewHandler(packageService)

	tourService := tours.NewService(tourRepo)
	tourHandler := tours.NewHandler(tourService)

	hotelService := hotels.NewService(hotelRepo, roomRepo)
	hotelHandler := hotels.NewHandler(hotelService)

	geoHandler := geo.NewHandler(geoRepo)

	uploadService := upload.NewService(uploadRepo, cfg.UploadDir, cfg.StaticBase, cfg.MaxUploadSize)
	uploadHandler := upload.NewHandler(uploadService)

	genimageService := genimage.NewService(cfg.GeminiAPIKey, cfg.GeminiModel, uploadService)
	genimageHandler := genimage.NewHandler(genimageService)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		packageHandler.RegisterPublicRoutes(api)
		geoHandler.RegisterPublicRoutes(api)

		// any authenticated user can upload gallery images
		authed := api.Group("")
		authed.Use(middleware.Auth(j))
		{
			uploadHandler.RegisterRoutes(authed)
		}

		// admin
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			packageHandler.RegisterAdminRoutes(admin)
			tourHandler.RegisterAdminRoutes(admin)
			hotelHandler.RegisterAdminRoutes(admin)
			genimageHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on %s (env=%s)", cfg.ListenAddr, cfg.AppEnv)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
