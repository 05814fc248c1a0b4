package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// Load reads the configuration from a local path or an HTTP(S) URL. An
// empty source yields the built-in default. Callers substitute Default()
// themselves when Load fails, so a broken source never blocks startup.
func Load(source string) (Config, error) {
	if source == "" {
		return Default(), nil
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

func fetch(url string) (Config, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	req, err := retryablehttp.NewRequest("GET", url, nil)
	if err != nil {
		return Config{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := retryClient.Do(req)
	if err != nil {
		return Config{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Config{}, fmt.Errorf("config fetch: unexpected status %d from %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Config{}, err
	}
	return Parse(body)
}
