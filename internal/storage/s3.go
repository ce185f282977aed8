package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MamuzaD/cal-hacks/internal/util"
)

// Company logo assets live in a single bucket under logos/<public_id>.<ext>.
// The bucket is optional; without AWS configuration the logo endpoint is
// simply absent.

func NewS3Client(ctx context.Context) *s3.Client {
	region := util.GetEnv("AWS_REGION")
	endpoint := util.GetEnv("AWS_ENDPOINT")
	accessKey := util.GetEnv("AWS_ACCESS_KEY")
	secretKey := util.GetEnv("AWS_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		return nil
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithBaseEndpoint(endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
	)
	if err != nil {
		return nil
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return client
}

// logoObjectKey derives the bucket key and content type for a company
// logo from the source filename's extension.
func logoObjectKey(companyID string, filename string) (string, string) {
	splitExt := strings.Split(filename, ".")
	ext := splitExt[len(splitExt)-1]
	mimeType := mime.TypeByExtension("." + ext)
	return fmt.Sprintf("logos/%s.%s", companyID, ext), mimeType
}

// PutLogo uploads a logo asset for a company and returns the stored key.
func PutLogo(ctx context.Context, client *s3.Client, companyID string, filename string, file io.Reader) (string, error) {
	bucket := util.GetEnv("AWS_BUCKET")

	key, mimeType := logoObjectKey(companyID, filename)
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload logo to S3: %w", err)
	}

	return key, nil
}

// GenerateDownloadLink presigns a time-limited GET URL for a stored
// asset. Presigning runs against the public endpoint so the signature
// matches the Host header clients will send.
func GenerateDownloadLink(ctx context.Context, baseClient *s3.Client, key string) (string, error) {
	bucket := util.GetEnv("AWS_BUCKET")
	publicEndpoint := util.GetEnv("AWS_PUBLIC_ENDPOINT")

	publicURL, err := url.Parse(publicEndpoint)
	if err != nil || publicURL.Scheme == "" || publicURL.Host == "" {
		return "", fmt.Errorf("invalid AWS_PUBLIC_ENDPOINT: %s", publicEndpoint)
	}
	prefix := strings.TrimSuffix(publicURL.Path, "/")
	publicBaseEndpoint := fmt.Sprintf("%s://%s", publicURL.Scheme, publicURL.Host)

	presignClientS3 := s3.NewFromConfig(
		aws.Config{
			Region:      baseClient.Options().Region,
			Credentials: baseClient.Options().Credentials,
			HTTPClient:  baseClient.Options().HTTPClient,
		},
		func(o *s3.Options) {
			o.BaseEndpoint = aws.String(publicBaseEndpoint)
			o.UsePathStyle = true
		},
	)

	presigner := s3.NewPresignClient(presignClientS3)

	out, err := presigner.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		},
		s3.WithPresignExpires(15*time.Minute),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate download link: %w", err)
	}

	if prefix != "" {
		signedURL, parseErr := url.Parse(out.URL)
		if parseErr != nil {
			return "", fmt.Errorf("failed to parse presigned url: %w", parseErr)
		}
		signedURL.Path = prefix + signedURL.Path
		return signedURL.String(), nil
	}

	return out.URL, nil
}
