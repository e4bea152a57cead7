package clubservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/GCC-TeeSheetService/pkg/credentials"
)

// Client клиент бэкенда клуба (ти-лист, тарифы, справочник членов)
// Все запросы выполняются с bearer-токеном оператора из контекста
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда клуба
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTeeTimeRange получает сырые ти-таймы с бронированиями за период
// GET /tsheet/range?start=<ISO>&end=<ISO> (start включительно, end исключительно)
func (c *Client) GetTeeTimeRange(ctx context.Context, start, end time.Time) ([]TeeTimeRecord, error) {
	c.log.Info("Fetching tee time range: start=%s, end=%s",
		start.Format("2006-01-02T15:04:05"), end.Format("2006-01-02T15:04:05"))

	u := fmt.Sprintf("%s/tsheet/range?start=%s&end=%s",
		c.baseURL,
		url.QueryEscape(start.Format("2006-01-02T15:04:05")),
		url.QueryEscape(end.Format("2006-01-02T15:04:05")),
	)

	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrTeeTimeNotFound
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var records []TeeTimeRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode tee time range: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d tee time records", len(records))
	return records, nil
}

// GenerateTeeSheet запрашивает генерацию ти-таймов на дату
// POST /tsheet/generate -> {created}
func (c *Client) GenerateTeeSheet(ctx context.Context, genReq GenerateRequest) (int, error) {
	c.log.Info("Generating tee sheet: date=%s, start=%s, end=%s", genReq.Date, genReq.StartTime, genReq.EndTime)

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/tsheet/generate", genReq)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return 0, ErrUnauthorized
	case http.StatusForbidden:
		return 0, ErrSheetClosed
	default:
		return 0, c.unexpectedStatus(resp)
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return 0, fmt.Errorf("%w: failed to decode generate response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Generated %d tee times for date=%s", genResp.Created, genReq.Date)
	return genResp.Created, nil
}

// CreateBooking создает одно бронирование на бэкенде клуба
// POST /tsheet/booking
// Отказ сервера возвращается как ErrBookingRejected с текстом причины
func (c *Client) CreateBooking(ctx context.Context, bookReq CreateBookingRequest) (*BookingRecord, error) {
	c.log.Info("Creating booking: tee_time_id=%d, player=%s", bookReq.TeeTimeID, bookReq.PlayerName)

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/tsheet/booking", bookReq)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrTeeTimeNotFound
	default:
		return nil, fmt.Errorf("%w: %s", ErrBookingRejected, c.errorDetail(resp))
	}

	var booking BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Created booking id=%d for tee_time_id=%d", booking.ID, bookReq.TeeTimeID)
	return &booking, nil
}

// SuggestGolfFee запрашивает автоподбор тарифа на гольф
// POST /fees/suggest/golf
// Любой не-2xx ответ трактуется как "тариф недоступен"
func (c *Client) SuggestGolfFee(ctx context.Context, sugReq GolfFeeSuggestRequest) (*FeeSuggestion, error) {
	return c.suggestFee(ctx, c.baseURL+"/fees/suggest/golf", sugReq)
}

// SuggestCartFee запрашивает автоподбор тарифа на кар
// POST /fees/suggest/cart
func (c *Client) SuggestCartFee(ctx context.Context, sugReq CartFeeSuggestRequest) (*FeeSuggestion, error) {
	return c.suggestFee(ctx, c.baseURL+"/fees/suggest/cart", sugReq)
}

func (c *Client) suggestFee(ctx context.Context, u string, body interface{}) (*FeeSuggestion, error) {
	req, err := c.newRequest(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		// Сервер различает "ти-тайм не найден" и "тариф не найден" только
		// текстом detail; для подсказки цены оба случая - "недоступно"
		return nil, ErrNoMatchingFee
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNoMatchingFee, resp.StatusCode)
	}

	var fee FeeSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&fee); err != nil {
		return nil, fmt.Errorf("%w: failed to decode fee suggestion: %v", ErrInvalidResponse, err)
	}

	return &fee, nil
}

// ListGolfFees получает все активные тарифы на гольф
// GET /fees/golf
func (c *Client) ListGolfFees(ctx context.Context) ([]FeeCategoryRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/fees/golf", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var fees []FeeCategoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&fees); err != nil {
		return nil, fmt.Errorf("%w: failed to decode fee categories: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d golf fee categories", len(fees))
	return fees, nil
}

// SearchMembers ищет членов клуба для привязки к строке брони
// GET /members/search?q=<text>&limit=<n>
func (c *Client) SearchMembers(ctx context.Context, query string, limit int) ([]MemberRecord, error) {
	c.log.Info("Searching members: q=%q, limit=%d", query, limit)

	u := fmt.Sprintf("%s/members/search?q=%s&limit=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(limit))

	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var members []MemberRecord
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, fmt.Errorf("%w: failed to decode members: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Found %d members for q=%q", len(members), query)
	return members, nil
}

func (c *Client) newRequest(ctx context.Context, method, u string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token, ok := credentials.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *Client) unexpectedStatus(resp *http.Response) error {
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, c.errorDetail(resp))
}

// errorDetail извлекает текст ошибки из тела ответа
// Бэкенд клуба отвечает {"detail": "..."}; иначе возвращается сырой фрагмент тела
func (c *Client) errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}

	return string(body)
}
