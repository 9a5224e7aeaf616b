package geocode

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/platform/obs"
	"ambulance-dispatch-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Number of leading display_name components kept as the address.
const addressParts = 4

var ErrNoAddress = errors.New("no address for coordinate")

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NominatimResolver implements AddressResolver against an OpenStreetMap
// Nominatim /reverse endpoint. Safe for concurrent use.
type NominatimResolver struct {
	session   *http.Client
	baseURL   string
	userAgent string
	language  string
}

func NewNominatimResolver(baseURL, userAgent string, timeout time.Duration) (*NominatimResolver, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("nominatim base url is empty")
	}
	if userAgent == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	return &NominatimResolver{
		session:   &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
		language:  "en",
	}, nil
}

func (n *NominatimResolver) ResolveAddress(ctx context.Context, c domain.LatLng) ports.AddressResult {
	addr, err := n.reverse(ctx, c)
	if err != nil {
		return ports.FallbackAddress(c, err)
	}
	return ports.ResolvedAddress(addr)
}

func (n *NominatimResolver) reverse(ctx context.Context, c domain.LatLng) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.reverse")(&err)

	req, err := n.newRequest(ctx, n.baseURL+"/reverse")
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	q := req.URL.Query()
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Lng, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("zoom", "14")
	req.URL.RawQuery = q.Encode()

	resp, err := n.do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("reverse geocode: decode response: %w", err)
	}
	if decoded.Error != "" {
		log.Printf("op=nominatim.reverse coord=%q upstream_err=%q", c.String(), decoded.Error)
		return "", fmt.Errorf("reverse geocode %s: %w", c, ErrNoAddress)
	}

	addr := shortenDisplayName(decoded.DisplayName)
	if addr == "" {
		return "", fmt.Errorf("reverse geocode %s: %w", c, ErrNoAddress)
	}
	return addr, nil
}

// shortenDisplayName keeps the most specific components of a Nominatim
// display name, e.g. "Anna Salai, Teynampet, Chennai, Tamil Nadu".
func shortenDisplayName(name string) string {
	parts := strings.Split(name, ",")
	if len(parts) > addressParts {
		parts = parts[:addressParts]
	}
	return strings.TrimSpace(strings.Join(parts, ","))
}
