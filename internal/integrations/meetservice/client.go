package meetservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса создания видеовстреч
// Сервис по диапазону времени и email участника возвращает ссылку
// на видеовстречу
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса видеовстреч
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateMeeting создает видеовстречу и возвращает ссылку на неё
// Любой неуспешный статус или некорректное тело ответа мапится в
// ErrMeetingNotCreated - вызывающая сторона трактует это как
// деградацию (сессия подтверждена, ссылка не сгенерирована)
func (c *Client) CreateMeeting(ctx context.Context, patientEmail string, start, end time.Time) (string, error) {
	url := c.baseURL + "/create-meeting"

	payload := CreateMeetingRequest{
		PatientEmail:  patientEmail,
		StartDateTime: start.UTC().Format(time.RFC3339),
		EndDateTime:   end.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrMeetingNotCreated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)

		// Пытаемся вытащить структурированную ошибку сервиса для лога
		var svcErr ErrorResponse
		if err := json.Unmarshal(respBody, &svcErr); err == nil && svcErr.Message != "" {
			c.log.Warn("MeetService returned status %d: code=%d, message=%s",
				resp.StatusCode, svcErr.Code, svcErr.Message)
		} else {
			c.log.Warn("MeetService returned status %d: %s", resp.StatusCode, string(respBody))
		}

		return "", fmt.Errorf("%w: unexpected status code %d", ErrMeetingNotCreated, resp.StatusCode)
	}

	var result CreateMeetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrMeetingNotCreated, err)
	}

	if result.MeetLink == "" {
		return "", fmt.Errorf("%w: empty meet link in response", ErrMeetingNotCreated)
	}

	return result.MeetLink, nil
}
