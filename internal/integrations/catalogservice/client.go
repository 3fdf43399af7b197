package catalogservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент каталога мастер-классов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetWorkshop получает мастер-класс по ID
func (c *Client) GetWorkshop(ctx context.Context, workshopID int64) (*Workshop, error) {
	url := fmt.Sprintf("%s/internal/workshops/%d", c.baseURL, workshopID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Catalog request failed for workshop_id=%d: %v", workshopID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrWorkshopNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Catalog returned %d for workshop_id=%d", resp.StatusCode, workshopID)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrServiceUnavailable, resp.StatusCode, errorMessage(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(body))
	}

	var workshop Workshop
	if err := json.NewDecoder(resp.Body).Decode(&workshop); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if workshop.ID != workshopID {
		return nil, fmt.Errorf("%w: requested workshop %d, got %d", ErrInvalidResponse, workshopID, workshop.ID)
	}

	return &workshop, nil
}

// GetPublishedWorkshop получает мастер-класс и проверяет, что он опубликован
// Черновики и отмененные мастер-классы для бронирования не существуют
func (c *Client) GetPublishedWorkshop(ctx context.Context, workshopID int64) (*Workshop, error) {
	workshop, err := c.GetWorkshop(ctx, workshopID)
	if err != nil {
		if !errors.Is(err, ErrWorkshopNotFound) {
			c.log.Warn("Failed to fetch workshop_id=%d: %v", workshopID, err)
		}
		return nil, err
	}

	if !workshop.IsPublished() {
		c.log.Info("Workshop workshop_id=%d is not published (status=%s)", workshopID, workshop.Status)
		return nil, ErrWorkshopNotFound
	}

	return workshop, nil
}

// errorMessage достает message из ErrorResponse, иначе возвращает тело как есть
func errorMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
