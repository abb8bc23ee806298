package storage

import (
	"context"
	"io"
	"log"
	"os"

	"Nutrition-Catalog/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type (
	// AwsS3 fetches import datasets from the configured bucket so the
	// importer can run against remotely published workbooks.
	AwsS3 interface {
		DownloadFile(ctx context.Context, bucket, key, dest string) error
	}

	awsS3 struct {
		client *s3.Client
	}
)

func NewAwsS3() AwsS3 {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS configuration: %v", err)
	}
	return &awsS3{client: s3.NewFromConfig(cfg)}
}

func (a *awsS3) DownloadFile(ctx context.Context, bucket, key, dest string) error {
	object, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer object.Body.Close()

	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, object.Body)
	return err
}
