package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBConfig carries the connection settings of the drafts table.
// Endpoint is only set for DynamoDB Local (e.g. http://dynamodb:8000).
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client. Missing keys fall back to the
// default AWS credential chain.
func ConnectDynamoDB(ctx context.Context, cfg DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg DynamoDBConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	accessKey, secretKey := cfg.AccessKeyID, cfg.SecretAccessKey
	// DynamoDB Local does not validate credentials, but the SDK requires them.
	if cfg.Endpoint != "" && accessKey == "" {
		accessKey, secretKey = "local", "local"
	}
	if accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
