// internals/helpers/oss/oss_client.go
package oss

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

var (
	clientOnce sync.Once
	client     *oss.Client
	clientErr  error
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func getClient() (*oss.Client, error) {
	clientOnce.Do(func() {
		endpoint := getEnv("OSS_ENDPOINT")
		keyID := getEnv("OSS_ACCESS_KEY_ID")
		keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
		if endpoint == "" || keyID == "" || keySecret == "" {
			clientErr = fmt.Errorf("oss: OSS_ENDPOINT / OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET not configured")
			return
		}
		client, clientErr = oss.New(endpoint, keyID, keySecret)
	})
	return client, clientErr
}

func getBucket() (*oss.Bucket, error) {
	cli, err := getClient()
	if err != nil {
		return nil, err
	}
	name := getEnv("OSS_BUCKET_NAME")
	if name == "" {
		return nil, fmt.Errorf("oss: OSS_BUCKET_NAME not configured")
	}
	return cli.Bucket(name)
}

// PublicURL builds the public object URL for a stored key.
func PublicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.%s/%s", getEnv("OSS_BUCKET_NAME"), getEnv("OSS_ENDPOINT"), objectKey)
}

// ExtractObjectKey recovers the object key from a public URL produced by
// PublicURL. Returns an error for URLs outside the configured bucket.
func ExtractObjectKey(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	wantHost := getEnv("OSS_BUCKET_NAME") + "." + getEnv("OSS_ENDPOINT")
	if !strings.EqualFold(u.Host, wantHost) {
		return "", fmt.Errorf("oss: url %q is not in the configured bucket", raw)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// DeleteObject removes an object (best effort at call sites).
func DeleteObject(objectKey string) error {
	bucket, err := getBucket()
	if err != nil {
		return err
	}
	return bucket.DeleteObject(objectKey)
}
