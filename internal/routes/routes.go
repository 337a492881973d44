package routes

import (
	"fmt"
	"os"

	"github.com/Miguel123456css/Zeraty.gym/internal/config"
	"github.com/Miguel123456css/Zeraty.gym/internal/handlers"
	"github.com/Miguel123456css/Zeraty.gym/internal/middleware"
	"github.com/Miguel123456css/Zeraty.gym/internal/repository"
	"github.com/Miguel123456css/Zeraty.gym/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	if err := os.MkdirAll(cfg.PhotosDir, 0o755); err != nil {
		return fmt.Errorf("create photos directory: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	supplementRepo := repository.NewSupplementRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	photoStorage := services.NewPhotoStorage(cfg.PhotosDir)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	supplementHandler := handlers.NewSupplementHandler(supplementRepo)
	checkinHandler := handlers.NewCheckinHandler(checkinRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo)
	photoHandler := handlers.NewPhotoHandler(photoRepo, photoStorage)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	authProtected.Post("/profile", profileHandler.SaveProfile)
	authProtected.Get("/profile", profileHandler.GetProfile)

	supplements := authProtected.Group("/supplements")
	supplements.Post("/add", supplementHandler.AddSupplement)
	supplements.Get("", supplementHandler.ListSupplements)

	checkins := authProtected.Group("/checkins")
	checkins.Post("", checkinHandler.SetCheckin)
	checkins.Post("/supplement", checkinHandler.SetSupplementCheckin)
	checkins.Get("", checkinHandler.GetMonth)

	workouts := authProtected.Group("/workouts")
	workouts.Post("", workoutHandler.SaveWorkout)
	workouts.Get("", workoutHandler.ListWorkouts)
	workouts.Get("/:id", workoutHandler.GetWorkout)

	photos := authProtected.Group("/photos")
	photos.Post("", photoHandler.UploadPhoto)
	photos.Get("", photoHandler.ListPhotos)
	photos.Get("/file/:filename", photoHandler.GetPhotoFile)

	return nil
}
