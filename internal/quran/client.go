package quran

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client is a thin client for the alquran.cloud text API. It is used only to
// decorate passage messages with the opening ayah; every caller must degrade
// gracefully when the API is unreachable.
type Client struct {
	baseURL string
	edition string
	http    *http.Client
}

// NewClient creates a new Quran API client. The base URL can be overridden
// with the QURAN_API_URL environment variable.
func NewClient() *Client {
	baseURL := os.Getenv("QURAN_API_URL")
	if baseURL == "" {
		baseURL = "https://api.alquran.cloud/v1"
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		edition: "quran-uthmani",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ayahResponse represents a response from the ayah endpoint
type ayahResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Text string `json:"text"`
	} `json:"data"`
}

// GetAyahText fetches the Arabic text of a single ayah.
func (c *Client) GetAyahText(surah, ayah int) (string, error) {
	url := fmt.Sprintf("%s/ayah/%d:%d/%s", c.baseURL, surah, ayah, c.edition)

	resp, err := c.http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var response ayahResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Code != http.StatusOK {
		return "", fmt.Errorf("API error: %s", response.Status)
	}

	return strings.TrimSpace(response.Data.Text), nil
}
