package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const defaultLocalRegion = "us-east-1"

// LoadConfig loads the default AWS configuration chain. When
// AWS_ENDPOINT_URL_SQS points at a local emulator, static credentials from
// AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY are used and the region defaults
// to us-east-1.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if os.Getenv("AWS_ENDPOINT_URL_SQS") != "" {
		key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
		if key == "" || secret == "" {
			key, secret = "local", "local"
		}
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")))
		if os.Getenv("AWS_REGION") == "" {
			opts = append(opts, config.WithRegion(defaultLocalRegion))
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return cfg, nil
}
