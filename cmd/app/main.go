package main

import (
	"fmt"
	"log/slog"
	"os"

	"tracking/cmd"
	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/orderclient"
	"tracking/internal/adapters/out/postgres/checkpointrepo"
	"tracking/internal/adapters/out/postgres/trackedorderrepo"
	"tracking/internal/adapters/out/rabbitmq"
	"tracking/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustOpenDatabase(configs)

	gateway, err := rabbitmq.NewNotificationPublisher(configs.AmqpURL, logger)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer gateway.Close()

	lookup := orderclient.NewClient(configs.OrdersBaseURL)

	app := cmd.NewCompositionRoot(configs, db, lookup, gateway, logger)

	overdueJob := jobs.NewOverdueOrdersJob(app.CreateGetOverdueOrdersQueryHandler(), logger)
	if err := overdueJob.Start(); err != nil {
		log.Fatalf("Error starting overdue orders job: %v", err)
	}
	defer overdueJob.Stop()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:           goDotEnvVariable("AMQP_URL"),
		OrdersBaseURL:     goDotEnvVariable("ORDERS_BASE_URL"),
		SerializePerOrder: goDotEnvVariable("SERIALIZE_PER_ORDER"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&trackedorderrepo.TrackedOrderDTO{}, &checkpointrepo.CheckpointDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateTrackedOrderCommandHandler(),
		app.CreateUpdateTrackedOrderCommandHandler(),
		app.CreateUpdateTrackedOrderForOrderCommandHandler(),
		app.CreateDeleteTrackedOrderCommandHandler(),
		app.CreateAddCheckpointCommandHandler(),
		app.CreateUpdateCheckpointCommandHandler(),
		app.CreateUpdateCheckpointForOrderCommandHandler(),
		app.CreateDeleteCheckpointCommandHandler(),
		app.CreateRevertToPreviousCheckpointCommandHandler(),
		app.CreateRevertToLastCheckpointCommandHandler(),
		app.CreateGetTrackedOrderQueryHandler(),
		app.CreateGetTrackedOrdersQueryHandler(),
		app.CreateGetCheckpointHistoryQueryHandler(),
		app.CreateGetLastCheckpointQueryHandler(),
		app.CreateGetCheckpointCountQueryHandler(),
	)
	server.RegisterRoutes(e)

	doc, err := httpin.LoadOpenAPISpec()
	if err != nil {
		log.Fatalf("Error loading OpenAPI spec: %v", err)
	}
	httpin.RegisterDocsRoutes(e, doc)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
