// internals/helpers/oss/oss_zip_upload.go
package oss

import (
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// MaxZipUploadSize caps closure archive uploads at 10 MB.
const MaxZipUploadSize = int64(10 * 1024 * 1024)

// ValidateZipUpload checks the closure archive contract: .zip extension,
// size at most MaxZipUploadSize.
func ValidateZipUpload(filename string, size int64) error {
	if !strings.EqualFold(path.Ext(filename), ".zip") {
		return fmt.Errorf("file must be a .zip archive")
	}
	if size > MaxZipUploadSize {
		return fmt.Errorf("file exceeds the 10MB limit")
	}
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	return nil
}

// UploadZip stores a closure archive under <dir>/<uuid>.zip and returns the
// public URL.
func UploadZip(dir string, fh *multipart.FileHeader) (string, error) {
	if err := ValidateZipUpload(fh.Filename, fh.Size); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	bucket, err := getBucket()
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%s.zip", strings.Trim(dir, "/"), uuid.NewString())
	if err := bucket.PutObject(objectKey, src,
		oss.ContentType("application/zip"),
		oss.ContentDisposition(fmt.Sprintf("attachment; filename=%q", path.Base(fh.Filename))),
	); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return PublicURL(objectKey), nil
}
