package database

import (
	"context"
	"fmt"

	"salesops/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client.
//
// Local-friendly settings:
//   - static credentials (DynamoDB Local does not validate them, the SDK requires them)
//   - Endpoint overrides the service URL, e.g. http://dynamodb:8000
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func newAWSConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
