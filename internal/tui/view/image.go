package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
)

const (
	imagePreviewRows  = 14
	maxImagePreviewSz = 5 * 1024 * 1024
)

// RenderImagePreview downloads a recipe image and draws it with chafa as
// terminal symbols.
func RenderImagePreview(ctx context.Context, client *http.Client, imageURL string, width int) (string, error) {
	chafaPath, err := exec.LookPath("chafa")
	if err != nil {
		return "", fmt.Errorf("chafa is not installed")
	}
	data, err := downloadImage(ctx, client, imageURL)
	if err != nil {
		return "", err
	}
	cmd := exec.CommandContext(ctx, chafaPath, chafaArgs(width)...)
	cmd.Stdin = bytes.NewReader(data)
	output, err := cmd.CombinedOutput()
	trimmed := strings.TrimSpace(string(output))
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w: %s", err, trimmed)
	}
	if trimmed == "" {
		return "", fmt.Errorf("empty output")
	}
	return trimmed, nil
}

func chafaArgs(width int) []string {
	if width < 30 {
		width = 40
	}
	size := fmt.Sprintf("%dx%d", width, imagePreviewRows)
	return []string{
		"--size", size,
		"--view-size", size,
		"--align", "top,center",
		"--format", "symbols",
		"-",
	}
}

func downloadImage(ctx context.Context, client *http.Client, imageURL string) ([]byte, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("recipe has no image")
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImagePreviewSz+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImagePreviewSz {
		return nil, fmt.Errorf("image larger than %d bytes", maxImagePreviewSz)
	}
	return data, nil
}
