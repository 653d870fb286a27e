package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrStorageDisabled nesne deposu yapılandırılmamışken döner.
var ErrStorageDisabled = errors.New("dosya deposu yapılandırılmamış")

// Upload depoya yazılacak tek bir dosya.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// StoredObject depoya yazılmış dosyanın tanıtıcısı.
type StoredObject struct {
	Bucket      string
	Key         string
	FileName    string
	ContentType string
	Size        int64
}

// FileStorage yüklenen gönderim dosyalarını saklayan bileşen.
type FileStorage interface {
	Store(ctx context.Context, upload Upload) (StoredObject, error)
	Remove(ctx context.Context, bucket, key string) error
	PresignedURL(ctx context.Context, bucket, key, fileName string, expiry time.Duration) (*url.URL, error)
}

// Config MinIO / S3 uyumlu depo ayarları.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStorage FileStorage'ın MinIO uygulaması.
type MinioStorage struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// NewMinioStorage istemciyi oluşturur ve bucket yoksa yaratır.
func NewMinioStorage(ctx context.Context, cfg Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio istemcisi oluşturulamadı: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket kontrol edilemedi: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("bucket oluşturulamadı: %w", err)
		}
	}
	return &MinioStorage{client: client, bucket: cfg.Bucket, now: time.Now}, nil
}

func (s *MinioStorage) Store(ctx context.Context, upload Upload) (StoredObject, error) {
	key := ObjectKey(s.now(), upload.FileName)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, upload.Reader, upload.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return StoredObject{}, fmt.Errorf("dosya yüklenemedi (%s): %w", upload.FileName, err)
	}
	return StoredObject{
		Bucket:      s.bucket,
		Key:         key,
		FileName:    upload.FileName,
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, bucket, key string) error {
	return s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

// PresignedURL admin indirmesi için süreli bağlantı üretir.
func (s *MinioStorage) PresignedURL(ctx context.Context, bucket, key, fileName string, expiry time.Duration) (*url.URL, error) {
	params := url.Values{}
	if fileName != "" {
		params.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, strings.ReplaceAll(fileName, `"`, "")))
	}
	return s.client.PresignedGetObject(ctx, bucket, key, expiry, params)
}

// ObjectKey "submissions/2024/05/<uuid>.pdf" biçiminde çakışmasız anahtar üretir.
func ObjectKey(now time.Time, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if len(ext) > 10 {
		ext = ""
	}
	return fmt.Sprintf("submissions/%s/%s%s", now.UTC().Format("2006/01"), uuid.NewString(), ext)
}

// DisabledStorage depo ayarlanmamışken kullanılır.
type DisabledStorage struct{}

func (DisabledStorage) Store(ctx context.Context, upload Upload) (StoredObject, error) {
	return StoredObject{}, ErrStorageDisabled
}

func (DisabledStorage) Remove(ctx context.Context, bucket, key string) error {
	return ErrStorageDisabled
}

func (DisabledStorage) PresignedURL(ctx context.Context, bucket, key, fileName string, expiry time.Duration) (*url.URL, error) {
	return nil, ErrStorageDisabled
}

var (
	_ FileStorage = (*MinioStorage)(nil)
	_ FileStorage = DisabledStorage{}
)
