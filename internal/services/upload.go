package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"inkwell/internal/apperr"
)

// Uploader pushes binary content to an external asset host and returns its
// public URL. The folder hint groups related assets on hosts that support it.
type Uploader interface {
	Upload(ctx context.Context, content io.Reader, filename, folder string) (string, error)
}

// ImgurResponse mirrors the Imgur API response envelope.
type ImgurResponse struct {
	Data struct {
		ID         string `json:"id"`
		Link       string `json:"link"`
		DeleteHash string `json:"deletehash"`
		Type       string `json:"type"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// ImgurUploader uploads images to Imgur. Imgur has no folder concept, so the
// hint is recorded as the image title only.
type ImgurUploader struct {
	ClientID string
	Client   *http.Client
}

func NewImgurUploader(clientID string) *ImgurUploader {
	return &ImgurUploader{
		ClientID: clientID,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *ImgurUploader) Upload(ctx context.Context, content io.Reader, filename, folder string) (string, error) {
	if u.ClientID == "" {
		return "", fmt.Errorf("%w: IMGUR_CLIENT_ID not configured", apperr.ErrUpload)
	}

	fileBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", apperr.ErrUpload, filename, err)
	}

	base64Image := base64.StdEncoding.EncodeToString(fileBytes)

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	if err := writer.WriteField("image", base64Image); err != nil {
		return "", fmt.Errorf("%w: build request: %v", apperr.ErrUpload, err)
	}
	if err := writer.WriteField("type", "base64"); err != nil {
		return "", fmt.Errorf("%w: build request: %v", apperr.ErrUpload, err)
	}
	if folder != "" {
		if err := writer.WriteField("title", folder); err != nil {
			return "", fmt.Errorf("%w: build request: %v", apperr.ErrUpload, err)
		}
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.imgur.com/3/image", &requestBody)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", apperr.ErrUpload, err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.ClientID)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: send request: %v", apperr.ErrUpload, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", apperr.ErrUpload, err)
	}

	var imgurResp ImgurResponse
	if err := json.Unmarshal(body, &imgurResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", apperr.ErrUpload, err)
	}

	if !imgurResp.Success {
		return "", fmt.Errorf("%w: imgur status %d", apperr.ErrUpload, imgurResp.Status)
	}

	return imgurResp.Data.Link, nil
}
