package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	dbadapter "postboard/internal/adapters/database"
	"postboard/internal/adapters/httpapi"
	redisadapter "postboard/internal/adapters/redis"
	"postboard/internal/config"
	"postboard/internal/core/category"
	categoryapp "postboard/internal/core/category/service"
	"postboard/internal/core/comment"
	commentapp "postboard/internal/core/comment/service"
	"postboard/internal/core/location"
	locationapp "postboard/internal/core/location/service"
	"postboard/internal/core/post"
	postapp "postboard/internal/core/post/service"
	"postboard/internal/core/user"
	userapp "postboard/internal/core/user/service"
	"postboard/internal/workers"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()
	if err := config.DB.AutoMigrate(
		&user.User{},
		&category.Category{},
		&location.Location{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	userRepo := dbadapter.NewUserRepositoryDatabase()
	categoryRepo := dbadapter.NewCategoryRepositoryDatabase()
	locationRepo := dbadapter.NewLocationRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	viewRepo := redisadapter.NewViewRepositoryRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")), config.Logger)
	postSvc := postapp.NewPostService(postRepo, categoryRepo, userRepo, commentRepo, viewRepo, config.Logger)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, config.Logger)
	categorySvc := categoryapp.NewCategoryService(categoryRepo, userRepo, config.Logger)
	locationSvc := locationapp.NewLocationService(locationRepo, userRepo, config.Logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, commentSvc, categorySvc, locationSvc)

	batchSize, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}
	syncSeconds, err := strconv.Atoi(os.Getenv("VIEW_SYNC_SECONDS"))
	if err != nil || syncSeconds <= 0 {
		syncSeconds = 30
	}

	viewWorker := workers.NewViewSyncWorker(viewRepo, postRepo,
		time.Duration(syncSeconds)*time.Second, batchSize, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go viewWorker.Run(ctx)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
