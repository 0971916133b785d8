package database

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kelseyhightower/envconfig"
)

// AWSConfig holds the DynamoDB connection settings.
//
// Local development runs against dynamodb-local, which accepts any
// credentials; the defaults keep the SDK happy without real keys. Set
// DYNAMODB_ENDPOINT to point at it (e.g. http://dynamodb:8000), leave it
// empty for the real service.
type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"ap-southeast-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
}

// ConnectDynamoDB creates the DynamoDB client the repositories share.
func ConnectDynamoDB(ctx context.Context) *dynamodb.Client {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		log.Fatalf("[database] failed to load aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	var env AWSConfig
	if err := envconfig.Process("", &env); err != nil {
		return aws.Config{}, err
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(env.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(env.AccessKeyID, env.SecretAccessKey, "")),
	}

	if env.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: env.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
