package campusservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CampusService
// CampusService владеет справочником помещений и каталогом регулярных занятий
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CampusService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSpace получает помещение по ID
func (c *Client) GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error) {
	endpoint := fmt.Sprintf("%s/internal/spaces/%d", c.baseURL, spaceID)

	var dto Space
	if err := c.getJSON(ctx, endpoint, &dto); err != nil {
		return nil, err
	}

	return dto.toDomain(), nil
}

// ListSpaces получает список всех помещений
func (c *Client) ListSpaces(ctx context.Context) ([]*domain.Space, error) {
	endpoint := fmt.Sprintf("%s/internal/spaces", c.baseURL)

	var dtos []Space
	if err := c.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	spaces := make([]*domain.Space, 0, len(dtos))
	for i := range dtos {
		spaces = append(spaces, dtos[i].toDomain())
	}

	return spaces, nil
}

// ListSessions получает занятия каталога расписания с фильтрацией
// Неизвестный spaceId дает пустой список, а не ошибку:
// помещение без занятий легитимно свободно
func (c *Client) ListSessions(ctx context.Context, filter domain.SessionsFilter) ([]*domain.ScheduledSession, error) {
	query := url.Values{}
	if filter.SpaceID != nil {
		query.Set("spaceId", fmt.Sprintf("%d", *filter.SpaceID))
	}
	if filter.Weekday != nil {
		query.Set("weekday", string(*filter.Weekday))
	}

	endpoint := fmt.Sprintf("%s/internal/sessions", c.baseURL)
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var dtos []Session
	if err := c.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	sessions := make([]*domain.ScheduledSession, 0, len(dtos))
	for i := range dtos {
		session, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed session id=%d: %v", ErrInvalidResponse, dtos[i].ID, err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrSpaceNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
