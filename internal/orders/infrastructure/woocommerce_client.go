package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wooreport/internal/orders/domain"
	shareddomain "wooreport/internal/shared/domain"
)

// Taille de page fixe de l'endpoint orders de l'API wc/v3
const ordersPerPage = 100

// Statuts de commande inclus dans le rapport quotidien
const DefaultStatusFilter = "completed,processing"

// Client est le client de l'endpoint orders de l'API WooCommerce
// Authentification par paire consumer_key / consumer_secret en query string
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
	logger         zerolog.Logger
}

// NewClient crée un client WooCommerce avec validation des identifiants
func NewClient(baseURL, consumerKey, consumerSecret string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" || consumerKey == "" || consumerSecret == "" {
		return nil, fmt.Errorf("missing WooCommerce credentials")
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     &http.Client{Timeout: 60 * time.Second},
		logger:         logger,
	}, nil
}

// FetchOrders récupère toutes les commandes de la fenêtre, page par page
// La pagination s'arrête sur une page vide; toute erreur de transport,
// d'authentification ou de décodage est fatale pour la totalité du run
func (c *Client) FetchOrders(ctx context.Context, statuses string, window shareddomain.ReportWindow) ([]domain.RawOrder, error) {
	var all []domain.RawOrder

	for page := 1; ; page++ {
		orders, err := c.fetchPage(ctx, statuses, window, page)
		if err != nil {
			return nil, fmt.Errorf("fetching orders page %d: %w", page, err)
		}
		if len(orders) == 0 {
			break
		}
		all = append(all, orders...)
	}

	if len(all) == 0 {
		c.logger.Info().Str("after", window.AfterParam()).Msg("no matching orders found for the window")
		return all, nil
	}

	counts := make(map[string]int)
	for _, o := range all {
		counts[o.Status]++
	}
	c.logger.Info().
		Int("total", len(all)).
		Int("completed", counts["completed"]).
		Int("processing", counts["processing"]).
		Msg("orders fetched")

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, statuses string, window shareddomain.ReportWindow, page int) ([]domain.RawOrder, error) {
	params := url.Values{}
	params.Set("status", statuses)
	params.Set("after", window.AfterParam())
	params.Set("before", window.BeforeParam())
	params.Set("per_page", strconv.Itoa(ordersPerPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("consumer_key", c.consumerKey)
	params.Set("consumer_secret", c.consumerSecret)

	endpoint := c.baseURL + "/wp-json/wc/v3/orders?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var orders []domain.RawOrder
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("unexpected payload shape: %w", err)
	}
	return orders, nil
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max])
}
