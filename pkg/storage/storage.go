// Package storage 托管对象存储客户端，按 bucket + 目录约定存放站点图片和文件。
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ErrUnknownURL 无法从URL中解析出对象路径
var ErrUnknownURL = errors.New("url does not belong to this bucket")

// Client 对象存储客户端
type Client struct {
	baseURL    string
	bucket     string
	serviceKey string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient 创建对象存储客户端
func NewClient(baseURL, bucket, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		bucket:     bucket,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		now:        time.Now,
	}
}

type errorResponse struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// ObjectPath 生成对象路径 {folder}/{毫秒时间戳}-{文件名}
func (c *Client) ObjectPath(folder, filename string) string {
	name := unsafeNameChars.ReplaceAllString(path.Base(filename), "-")
	if name == "" || name == "." || name == "-" {
		name = "file"
	}
	folder = strings.Trim(folder, "/")
	object := fmt.Sprintf("%d-%s", c.now().UnixMilli(), name)
	if folder == "" {
		return object
	}
	return folder + "/" + object
}

// PublicURL 返回对象的公开访问地址
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}

// PathFromURL 通过字符串切分从公开地址反推对象路径
func (c *Client) PathFromURL(publicURL string) (string, error) {
	marker := "/object/public/" + c.bucket + "/"
	parts := strings.SplitN(publicURL, marker, 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrUnknownURL
	}
	objectPath := parts[1]
	if i := strings.IndexAny(objectPath, "?#"); i >= 0 {
		objectPath = objectPath[:i]
	}
	return objectPath, nil
}

// Upload 上传文件并返回公开地址
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	objectPath := c.ObjectPath(folder, filename)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")
	req.Header.Set("Cache-Control", "max-age=3600")
	c.authorize(req)

	if err := c.do(req); err != nil {
		return "", fmt.Errorf("上传文件失败: %w", err)
	}
	return c.PublicURL(objectPath), nil
}

// Delete 删除公开地址对应的对象
func (c *Client) Delete(ctx context.Context, publicURL string) error {
	objectPath, err := c.PathFromURL(publicURL)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string][]string{"prefixes": {objectPath}})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	if err := c.do(req); err != nil {
		return fmt.Errorf("删除文件失败: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
}

// do 发送请求，非2xx响应转换为错误
func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return fmt.Errorf("storage responded %d: %s", resp.StatusCode, e.Message)
		}
		return fmt.Errorf("storage responded %d", resp.StatusCode)
	}
	return nil
}
