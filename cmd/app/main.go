package main

import (
	"fmt"
	"log/slog"
	"os"

	"radiopharm/cmd"
	"radiopharm/internal/adapters/out/postgres/clinicrepo"
	"radiopharm/internal/adapters/out/postgres/cyclerepo"
	"radiopharm/internal/adapters/out/postgres/orderrepo"
	"radiopharm/internal/adapters/out/postgres/reactorrepo"
	"radiopharm/internal/adapters/out/queue"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	eventSink, err := queue.NewRedisEventSink(
		configs.RedisURL, configs.RedisNotificationQueue, configs.RedisEmailQueue)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer func() {
		_ = eventSink.Close()
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, eventSink, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		RedisURL:               goDotEnvVariable("REDIS_URL"),
		RedisNotificationQueue: goDotEnvVariable("REDIS_NOTIFICATION_QUEUE"),
		RedisEmailQueue:        goDotEnvVariable("REDIS_EMAIL_QUEUE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the repositories map to Conflict errors.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&clinicrepo.ClinicDTO{},
		&reactorrepo.ReactorDTO{},
		&cyclerepo.ReactorCycleDTO{},
		&orderrepo.OrderDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
