// Package storage 提供菜谱图片的对象存储访问
// 图片不经过应用服务器中转：客户端通过预签名 URL 直接上传/下载
package storage

import (
	"context"
	"net/url"

	"github.com/seblyng/foodie/internal/config"
	"github.com/seblyng/foodie/pkg/constants"
	"github.com/seblyng/foodie/pkg/errorx"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage MinIO 对象存储客户端封装
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage 创建对象存储客户端，bucket 不存在时自动创建
func NewMinioStorage(cfg *config.MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "连接对象存储失败")
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeServerBusy, "检查 bucket %s 失败", cfg.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errorx.Wrapf(err, errorx.CodeServerBusy, "创建 bucket %s 失败", cfg.Bucket)
		}
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// PresignedUpload 生成上传预签名 URL，客户端用 PUT 直传
func (s *MinioStorage) PresignedUpload(objectName string) (string, error) {
	u, err := s.client.PresignedPutObject(context.Background(),
		s.bucket, objectName, constants.PRESIGN_UPLOAD_EXPIRY)
	if err != nil {
		return "", errorx.Wrapf(err, errorx.CodeServerBusy, "生成上传链接 object=%s", objectName)
	}
	return u.String(), nil
}

// PresignedDownload 生成下载预签名 URL
func (s *MinioStorage) PresignedDownload(objectName string) (string, error) {
	u, err := s.client.PresignedGetObject(context.Background(),
		s.bucket, objectName, constants.PRESIGN_DOWNLOAD_EXPIRY, url.Values{})
	if err != nil {
		return "", errorx.Wrapf(err, errorx.CodeServerBusy, "生成下载链接 object=%s", objectName)
	}
	return u.String(), nil
}

// Remove 删除图片对象，菜谱删除或换图时调用
func (s *MinioStorage) Remove(objectName string) error {
	err := s.client.RemoveObject(context.Background(),
		s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "删除图片 object=%s", objectName)
	}
	return nil
}
