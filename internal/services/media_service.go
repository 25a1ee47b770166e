package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"foodcourt/internal/common"
	"foodcourt/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const presignedURLExpiry = 15 * time.Minute

// MediaService stores restaurant and food images in object storage and keeps
// the owning row's image column pointing at the stored object.
type MediaService interface {
	UploadRestaurantImage(ctx context.Context, resID int64, filename string, reader io.Reader, size int64, contentType string) (object string, url string, err error)
	UploadFoodImage(ctx context.Context, foodID int64, filename string, reader io.Reader, size int64, contentType string) (object string, url string, err error)
	PresignedURL(object string) (string, error)
	EnsureBucket(ctx context.Context) error
}

type mediaService struct {
	client      *minio.Client
	bucket      string
	restaurants repositories.RestaurantRepository
	foods       repositories.FoodRepository
}

func NewMediaService(endpoint, accessKey, secretKey string, useSSL bool, bucket string,
	restaurants repositories.RestaurantRepository, foods repositories.FoodRepository) (MediaService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &mediaService{
		client:      client,
		bucket:      bucket,
		restaurants: restaurants,
		foods:       foods,
	}, nil
}

func (m *mediaService) UploadRestaurantImage(ctx context.Context, resID int64, filename string, reader io.Reader, size int64, contentType string) (string, string, error) {
	object := objectName("restaurants", filename)
	if err := m.put(ctx, object, reader, size, contentType); err != nil {
		return "", "", err
	}
	if err := m.restaurants.SetImage(ctx, resID, object); err != nil {
		if err == pgx.ErrNoRows {
			return "", "", common.NotFoundf("restaurant %d not found", resID)
		}
		return "", "", err
	}
	url, err := m.PresignedURL(object)
	if err != nil {
		return "", "", err
	}
	return object, url, nil
}

func (m *mediaService) UploadFoodImage(ctx context.Context, foodID int64, filename string, reader io.Reader, size int64, contentType string) (string, string, error) {
	object := objectName("foods", filename)
	if err := m.put(ctx, object, reader, size, contentType); err != nil {
		return "", "", err
	}
	if err := m.foods.SetImage(ctx, foodID, object); err != nil {
		if err == pgx.ErrNoRows {
			return "", "", common.NotFoundf("food %d not found", foodID)
		}
		return "", "", err
	}
	url, err := m.PresignedURL(object)
	if err != nil {
		return "", "", err
	}
	return object, url, nil
}

func (m *mediaService) put(ctx context.Context, object string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.client.PutObject(ctx, m.bucket, object, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (m *mediaService) PresignedURL(object string) (string, error) {
	url, err := m.client.PresignedGetObject(context.Background(), m.bucket, object, presignedURLExpiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (m *mediaService) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func objectName(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))
}
