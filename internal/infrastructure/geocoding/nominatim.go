package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"refrigeracao_os/internal/usecase/interfaces"
)

var ErrAddressNotFound = errors.New("no address found for coordinates")

// NominatimClient resolves coordinates with a Nominatim compatible /reverse endpoint.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var _ interfaces.ILocationProvider = (*NominatimClient)(nil)

func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		Suburb      string `json:"suburb"`
		City        string `json:"city"`
		Town        string `json:"town"`
		State       string `json:"state"`
	} `json:"address"`
}

func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating geocoder request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "pt-BR")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading geocoder response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder HTTP %d: %s", resp.StatusCode, string(body))
	}

	var raw reverseResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("parsing geocoder response: %w", err)
	}
	if raw.Error != "" {
		return "", ErrAddressNotFound
	}

	if addr := shortAddress(raw); addr != "" {
		return addr, nil
	}
	if raw.DisplayName == "" {
		return "", ErrAddressNotFound
	}
	return raw.DisplayName, nil
}

// shortAddress builds "Rua X, 10 - Bairro, Cidade - UF" from the structured
// fields; it returns "" when the street is unknown.
func shortAddress(r reverseResponse) string {
	a := r.Address
	if a.Road == "" {
		return ""
	}
	street := a.Road
	if a.HouseNumber != "" {
		street += ", " + a.HouseNumber
	}
	if a.Suburb != "" {
		street += " - " + a.Suburb
	}
	city := a.City
	if city == "" {
		city = a.Town
	}
	parts := []string{street}
	if city != "" {
		if a.State != "" {
			city += " - " + a.State
		}
		parts = append(parts, city)
	}
	return strings.Join(parts, ", ")
}
