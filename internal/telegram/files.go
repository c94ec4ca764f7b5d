package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// DownloadPhoto downloads the highest-resolution size of a photo message.
// Telegram orders PhotoSize entries smallest first.
func DownloadPhoto(ctx context.Context, b *bot.Bot, photo []models.PhotoSize) ([]byte, error) {
	if len(photo) == 0 {
		return nil, fmt.Errorf("message has no photo sizes")
	}
	return DownloadFile(ctx, b, photo[len(photo)-1].FileID)
}

// DownloadFile downloads a file from Telegram by file ID.
func DownloadFile(ctx context.Context, b *bot.Bot, fileID string) ([]byte, error) {
	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := b.FileDownloadLink(file)

	req, err := http.NewRequestWithContext(ctx, "GET", fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file data: %w", err)
	}

	return data, nil
}
