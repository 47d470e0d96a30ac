package toyota

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"toyota-tracker/internal/common/httpx"
	"toyota-tracker/internal/domain"
)

const (
	defaultAuthURL        = "https://ssoms.toyota-europe.com/authenticate"
	defaultOrdersURL      = "https://weblos.toyota-europe.com/leads/ordered"
	defaultOrderStatusURL = "https://cpb2cs.toyota-europe.com/api/orderTracker/user/%s/orderStatus/%s"

	defaultBrand   = "TOYOTA"
	defaultLocale  = "en-gb"
	defaultTimeout = 10 * time.Second
)

// Config carries endpoints and transport settings. The zero value resolves
// to the production API.
type Config struct {
	AuthURL        string
	OrdersURL      string
	OrderStatusURL string // two %s verbs: customer uuid, order id
	Brand          string
	Locale         string
	Timeout        time.Duration
}

func (c Config) withDefaults() Config {
	if c.AuthURL == "" {
		c.AuthURL = defaultAuthURL
	}
	if c.OrdersURL == "" {
		c.OrdersURL = defaultOrdersURL
	}
	if c.OrderStatusURL == "" {
		c.OrderStatusURL = defaultOrderStatusURL
	}
	if c.Brand == "" {
		c.Brand = defaultBrand
	}
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// Client is an authenticated session against the vendor API. Login must
// succeed before Orders or OrderStatus may be called; the token travels in
// the x-tme-token header on every later request.
type Client struct {
	cfg   Config
	http  *resty.Client
	token string
	uuid  string
}

func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		http: httpx.NewClient(cfg.Timeout, map[string]string{
			"Content-Type":   "application/json;charset=UTF-8",
			"Accept":         "application/json, text/plain, */*",
			"Sec-Fetch-Dest": "empty",
			"X-TME-BRAND":    cfg.Brand,
			"X-TME-LC":       cfg.Locale,
		}),
	}
}

// Login exchanges the credentials for a session token and customer uuid.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		Post(c.cfg.AuthURL)
	if err != nil {
		return &domain.AuthError{Err: err}
	}
	if resp.IsError() {
		return &domain.AuthError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	var auth domain.AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return &domain.AuthError{Err: fmt.Errorf("decode auth response: %w", err)}
	}
	if auth.Token == "" || auth.CustomerProfile.UUID == "" {
		return &domain.AuthError{Err: fmt.Errorf("auth response missing token or uuid")}
	}
	c.token = auth.Token
	c.uuid = auth.CustomerProfile.UUID
	c.http.SetHeader("x-tme-token", c.token)
	return nil
}

// Orders returns the IDs of every order on the account.
func (c *Client) Orders(ctx context.Context) ([]string, error) {
	if c.token == "" {
		return nil, &domain.AuthError{Err: fmt.Errorf("not logged in")}
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"displayPreApprovedCars": "true",
			"displayVOTCars":         "true",
		}).
		Get(c.cfg.OrdersURL)
	if err != nil {
		return nil, &domain.FetchError{Op: "orders", Err: err}
	}
	if resp.IsError() {
		return nil, &domain.FetchError{Op: "orders", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	var leads []domain.LeadOrder
	if err := json.Unmarshal(resp.Body(), &leads); err != nil {
		return nil, &domain.FetchError{Op: "orders", Err: fmt.Errorf("decode orders: %w", err)}
	}
	ids := make([]string, 0, len(leads))
	for _, lead := range leads {
		ids = append(ids, lead.ID)
	}
	return ids, nil
}

// OrderStatus fetches the tracking snapshot for one order.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	if c.token == "" {
		return domain.OrderStatus{}, &domain.AuthError{Err: fmt.Errorf("not logged in")}
	}
	statusURL := fmt.Sprintf(c.cfg.OrderStatusURL, url.PathEscape(c.uuid), url.PathEscape(orderID))
	resp, err := c.http.R().SetContext(ctx).Get(statusURL)
	if err != nil {
		return domain.OrderStatus{}, &domain.FetchError{Op: "order status", Err: err}
	}
	if resp.IsError() {
		return domain.OrderStatus{}, &domain.FetchError{Op: "order status", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	var payload domain.OrderStatusResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return domain.OrderStatus{}, &domain.FetchError{Op: "order status", Err: fmt.Errorf("decode order status: %w", err)}
	}
	return payload.ToModel(), nil
}
