package imagehost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

// Client 图床函数端点客户端，所有操作都通过同一个POST端点完成
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient 创建图床客户端
func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type request struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type uploadData struct {
	File        string `json:"file"`
	Filename    string `json:"filename"`
	Folder      string `json:"folder"`
	ContentType string `json:"contentType"`
}

type deleteData struct {
	PublicID string `json:"publicId"`
}

// Response 函数端点响应
type Response struct {
	PublicURL string `json:"publicUrl"`
	PublicID  string `json:"publicId"`
	Error     string `json:"error"`
}

// Upload 上传图片，返回公开地址
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	resp, err := c.call(ctx, "upload", uploadData{
		File:        base64.StdEncoding.EncodeToString(raw),
		Filename:    filename,
		Folder:      strings.Trim(folder, "/"),
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("上传图片失败: %w", err)
	}
	if resp.PublicURL == "" {
		return "", errors.New("上传图片失败: empty publicUrl")
	}
	return resp.PublicURL, nil
}

// Delete 根据公开地址删除图片
func (c *Client) Delete(ctx context.Context, publicURL string) error {
	publicID, err := PublicIDFromURL(publicURL)
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, "delete", deleteData{PublicID: publicID}); err != nil {
		return fmt.Errorf("删除图片失败: %w", err)
	}
	return nil
}

// PublicIDFromURL 从地址中取出 {folder}/{文件名去扩展名}，与上传时的 publicId 对应
func PublicIDFromURL(publicURL string) (string, error) {
	if i := strings.IndexAny(publicURL, "?#"); i >= 0 {
		publicURL = publicURL[:i]
	}
	segments := strings.Split(strings.TrimRight(publicURL, "/"), "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("cannot derive publicId from %q", publicURL)
	}
	file := segments[len(segments)-1]
	folder := segments[len(segments)-2]
	name := strings.TrimSuffix(file, path.Ext(file))
	if name == "" || folder == "" || strings.Contains(folder, ":") {
		return "", fmt.Errorf("cannot derive publicId from %q", publicURL)
	}
	return folder + "/" + name, nil
}

func (c *Client) call(ctx context.Context, action string, data interface{}) (*Response, error) {
	payload, err := json.Marshal(request{Action: action, Data: data})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("invalid response (status %d): %w", httpResp.StatusCode, err)
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("function responded %d", httpResp.StatusCode)
	}
	return &resp, nil
}
