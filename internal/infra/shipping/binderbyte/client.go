package binderbyte

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"storefront/internal/usecase"
)

const defaultBaseURL = "https://api.binderbyte.com"

var ErrMissingAPIKey = errors.New("binderbyte: API key not configured")

// Client talks to the BinderByte courier API for shipping rates and
// waybill tracking.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type costResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Courier string `json:"courier"`
		Costs   []struct {
			Service     string      `json:"service"`
			Description string      `json:"description"`
			Price       json.Number `json:"price"`
			Etd         string      `json:"etd"`
		} `json:"costs"`
	} `json:"data"`
}

func (c *Client) Cost(ctx context.Context, in usecase.ShippingCostInput) (usecase.ShippingCostResult, error) {
	if c.apiKey == "" {
		return usecase.ShippingCostResult{}, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("courier", in.Courier)
	q.Set("origin", in.Origin)
	q.Set("destination", in.Destination)
	q.Set("weight", strconv.FormatInt(in.Weight, 10))
	volume := in.Volume
	if volume == "" {
		volume = "100x100x100"
	}
	q.Set("volume", volume)

	var resp costResponse
	if err := c.get(ctx, "/v1/cost", q, &resp); err != nil {
		return usecase.ShippingCostResult{}, err
	}
	if resp.Status != http.StatusOK {
		return usecase.ShippingCostResult{}, fmt.Errorf("binderbyte: cost lookup failed: %s", resp.Message)
	}

	out := usecase.ShippingCostResult{Courier: resp.Data.Courier}
	for _, s := range resp.Data.Costs {
		price, _ := s.Price.Int64()
		out.Services = append(out.Services, usecase.ShippingService{
			Service:     s.Service,
			Description: s.Description,
			Price:       price,
			Etd:         s.Etd,
		})
	}
	return out, nil
}

type trackResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Summary struct {
			Awb      string `json:"awb"`
			Courier  string `json:"courier"`
			Status   string `json:"status"`
			Date     string `json:"date"`
			Desc     string `json:"desc"`
			Amount   string `json:"amount"`
			Weight   string `json:"weight"`
			Receiver string `json:"receiver"`
		} `json:"summary"`
		History []struct {
			Date string `json:"date"`
			Desc string `json:"desc"`
		} `json:"history"`
	} `json:"data"`
}

func (c *Client) Track(ctx context.Context, courier string, awb string) (usecase.TrackingResult, error) {
	if c.apiKey == "" {
		return usecase.TrackingResult{}, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("courier", courier)
	q.Set("awb", awb)

	var resp trackResponse
	if err := c.get(ctx, "/v1/track", q, &resp); err != nil {
		return usecase.TrackingResult{}, err
	}
	if resp.Status != http.StatusOK {
		return usecase.TrackingResult{}, fmt.Errorf("binderbyte: tracking lookup failed: %s", resp.Message)
	}

	out := usecase.TrackingResult{
		Awb:     resp.Data.Summary.Awb,
		Courier: resp.Data.Summary.Courier,
		Status:  strings.ToLower(resp.Data.Summary.Status),
	}
	for _, h := range resp.Data.History {
		out.History = append(out.History, usecase.TrackingEvent{
			Date:        h.Date,
			Description: h.Desc,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("binderbyte request failed")
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("binderbyte response decode failed")
		return err
	}
	return nil
}
