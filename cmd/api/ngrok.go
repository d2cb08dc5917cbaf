package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	tunnelAttempts = 10
	tunnelWait     = 3 * time.Second
	webhookPath    = "/webhook/telegram"
)

// ngrokTunnels matches the /api/tunnels response from the ngrok local API.
type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// resolveWebhookURL returns the configured webhook URL, or discovers an https
// tunnel through the local ngrok API when none is configured. Telegram only
// accepts https webhooks, so plain http tunnels are skipped.
func resolveWebhookURL(ctx context.Context, configured, tunnelAPI string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if tunnelAPI == "" {
		return "", nil
	}

	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := strings.TrimRight(tunnelAPI, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= tunnelAttempts; attempt++ {
		publicURL, err := fetchHTTPSTunnel(ctx, client, endpoint)
		if err == nil && publicURL != "" {
			return strings.TrimRight(publicURL, "/") + webhookPath, nil
		}
		lastErr = err

		if attempt == tunnelAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(tunnelWait):
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not usable after %d attempts: %w", tunnelAttempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no https tunnel after %d attempts", tunnelAttempts)
}

func fetchHTTPSTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	for _, t := range out.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	return "", nil
}
