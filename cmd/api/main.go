package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infrarepo "storefront/internal/infra/repository"
	"storefront/internal/infra/shipping/binderbyte"
	"storefront/internal/infra/storage/localfs"
	"storefront/internal/usecase"
	"storefront/internal/validator"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("GO_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Wishlist{},
		&model.ProductReview{},
		&model.Province{},
		&model.Regency{},
		&model.District{},
		&model.Village{},
		&model.ProfileStore{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	storage, err := localfs.New(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir init failed")
	}

	// Repositories
	userRepo := infrarepo.NewUserGormRepository(gormDB)
	productRepo := infrarepo.NewProductGormRepository(gormDB)
	categoryRepo := infrarepo.NewCategoryGormRepository(gormDB)
	cartRepo := infrarepo.NewCartGormRepository(gormDB)
	orderRepo := infrarepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infrarepo.NewOrderItemGormRepository(gormDB)
	wishlistRepo := infrarepo.NewWishlistGormRepository(gormDB)
	reviewRepo := infrarepo.NewReviewGormRepository(gormDB)
	regionRepo := infrarepo.NewRegionGormRepository(gormDB)
	profileRepo := infrarepo.NewProfileStoreGormRepository(gormDB)
	statsRepo := infrarepo.NewStatsGormRepository(gormDB)
	txManager := infrarepo.NewTxManagerGorm(gormDB)

	shippingGateway := binderbyte.NewClient(cfg.BinderByteAPIKey, cfg.BinderByteBaseURL)
	regionCache := cache.New(12 * time.Hour)

	// Usecases
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, reviewRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, shippingGateway)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, orderRepo, orderItemRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	regionUC := usecase.NewRegionUsecase(regionRepo, regionCache)
	shippingUC := usecase.NewShippingUsecase(shippingGateway)
	dashboardUC := usecase.NewDashboardUsecase(statsRepo, productRepo)
	profileUC := usecase.NewProfileStoreUsecase(profileRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echomw.Recover())
	e.Use(requestLogger())

	e.Static("/uploads", storage.Root())

	handler.NewAuthHandler(authUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewProductHandler(productUC, reviewUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewOrderHandler(orderUC, storage, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewWishlistHandler(wishlistUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewReviewHandler(reviewUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewRegionHandler(regionUC).RegisterRoutes(e)
	handler.NewShippingHandler(shippingUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewDashboardHandler(dashboardUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewAdminProductHandler(productUC, storage, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewAdminOrderHandler(adminOrderUC, cfg.JWTSecret).RegisterRoutes(e)
	handler.NewProfileStoreHandler(profileUC, storage, cfg.JWTSecret).RegisterRoutes(e)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
