package db

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/h2grid/h2grid-api/internal/helpers"
	"github.com/h2grid/h2grid-api/internal/logger"
)

// SecretSource resolves secrets by the name of the environment variable
// holding their ARN
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResolveDSN returns the connection string for the stage. Deployed stages
// build it from DB_HOST, DB_NAME and the RDS credentials secret. The local
// stage reads DATABASE_URL and returns "" with a nil error when it is unset.
func ResolveDSN(ctx context.Context, stage string, secrets SecretSource) (string, error) {
	if stage == helpers.StageProd || stage == helpers.StageDev {
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		if dbEndpoint == "" || dbName == "" {
			return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}
		dbSSLMode := os.Getenv("DB_SSLMODE")
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		var secretData rdsSecret
		if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secretData); err != nil {
			return "", err
		}
		if secretData.Username == "" || secretData.Password == "" {
			return "", fmt.Errorf("username or password not found in RDS secret data")
		}

		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username),
			url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode), nil
	}

	if os.Getenv("DATABASE_URL_ARN") == "" && os.Getenv("DATABASE_URL") == "" {
		return "", nil
	}
	return secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
}
