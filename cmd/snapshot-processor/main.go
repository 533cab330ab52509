package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	awsclient "github.com/h2grid/h2grid-api/internal/client/aws"
	"github.com/h2grid/h2grid-api/internal/db"
	"github.com/h2grid/h2grid-api/internal/helpers"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/services"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Application holds all dependencies for the snapshot processor Lambda handler
type Application struct {
	listener *services.SnapshotListener
}

// storePublisher persists snapshots. The processor has no open views, so
// nothing is delivered and a bare reload notification is a no-op.
type storePublisher struct {
	store db.SnapshotStore
}

func (p storePublisher) PublishSnapshot(ctx context.Context, projectID uuid.UUID, data *business.DashboardData) (int, error) {
	if err := p.store.PutSnapshot(ctx, projectID, data); err != nil {
		return 0, err
	}
	logger.Info("Snapshot stored", zap.String("project_id", projectID.String()))
	return 0, nil
}

func (p storePublisher) ReloadSnapshot(_ context.Context, projectID uuid.UUID) (int, error) {
	logger.Debug("Ignoring reload notification", zap.String("project_id", projectID.String()))
	return 0, nil
}

// HandleSQSEvent stores the snapshots carried by a batch of SQS records
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	return app.listener.HandleSQSEvent(ctx, event)
}

func main() {
	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing snapshot processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	awsCfg, err := awsclient.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load AWS configuration", zap.Error(err))
	}
	secretsClient := awsclient.NewSecretsManagerClient(awsCfg)

	dsn, err := db.ResolveDSN(ctx, stage, secretsClient)
	if err != nil {
		logger.Fatal("Failed to resolve database connection string", zap.Error(err))
	}
	if dsn == "" {
		logger.Fatal("DATABASE_URL is required for the snapshot processor")
	}

	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	defer pool.Close()

	store := db.NewPostgresStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Unable to create snapshot table", zap.Error(err))
	}

	app := &Application{
		listener: services.NewSnapshotListener(nil, storePublisher{store: store}, logger.Log),
	}

	logger.Info("Snapshot processor initialized, starting Lambda handler")
	lambda.Start(app.HandleSQSEvent)
}
