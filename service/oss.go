package service

import (
	"Plume/config"
	"Plume/pkg/response"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 上传图片到指定目录，返回可访问 URL
	UploadImage(ctx context.Context, folder string, header *multipart.FileHeader) (string, error)

	// DeleteByURL 按 URL 删除对象，不属于本桶的 URL 直接忽略
	DeleteByURL(ctx context.Context, imageURL string) error
}

type OssService struct {
	Client   *oss.Client
	Bucket   string
	Endpoint string
}

func NewOssService(client *oss.Client, conf *config.OssConfig) *OssService {
	return &OssService{
		Client:   client,
		Bucket:   conf.Bucket,
		Endpoint: conf.Endpoint,
	}
}

func (s *OssService) UploadImage(ctx context.Context, folder string, header *multipart.FileHeader) (string, error) {

	const maxSize int64 = 5 << 20 // 5MB

	if header == nil || header.Size <= 0 {
		return "", response.BadRequest("missing image")
	}
	if header.Size > maxSize {
		return "", response.BadRequest("image size exceeds 5MB")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	contentType, err := sniffImageType(seeker)
	if err != nil {
		return "", err
	}
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return "", response.BadRequest("unsupported image type: " + contentType)
	}

	objectKey := fmt.Sprintf("%s/%s/%s%s",
		folder,
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		path.Ext(header.Filename),
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return "", err
	}

	return s.publicURL(objectKey), nil
}

func (s *OssService) DeleteByURL(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return nil
	}
	prefix := fmt.Sprintf("https://%s.%s/", s.Bucket, s.Endpoint)
	if !strings.HasPrefix(imageURL, prefix) {
		return nil
	}
	objectKey := strings.TrimPrefix(imageURL, prefix)

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// sniffImageType 读前 512 字节做 MIME 嗅探。
// 单次 Read 可能读不满，要用 ReadFull 循环读；读完把游标拨回开头
func sniffImageType(f io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func (s *OssService) publicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.Bucket, s.Endpoint, objectKey)
}
