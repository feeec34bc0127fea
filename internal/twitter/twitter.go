// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package twitter fetches public posts through the X/Twitter syndication
// endpoint (the one embedded tweets use), which requires no API key.
// Used by the admin panel to import prompts shared on X.
package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://cdn.syndication.twimg.com"

// statusURLPattern matches x.com / twitter.com status URLs and captures
// the numeric post ID.
var statusURLPattern = regexp.MustCompile(`(?:twitter\.com|x\.com)/[^/]+/status/(\d+)`)

// Tweet is the subset of the syndication payload the importer needs.
type Tweet struct {
	Text   string  `json:"text"`
	User   User    `json:"user"`
	Photos []Photo `json:"photos"`
}

// User identifies the post's author.
type User struct {
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	ProfileImageURL string `json:"profile_image_url_https"`
}

// Photo is an image attached to the post.
type Photo struct {
	URL string `json:"url"`
}

// Client fetches posts from the syndication endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a syndication client. baseURL overrides the endpoint
// for testing; pass "" for the production default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ExtractID parses a post ID out of an x.com or twitter.com status URL.
// A bare numeric ID is accepted as-is.
func ExtractID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("twitter: empty post URL")
	}

	// Bare numeric ID.
	if isDigits(input) {
		return input, nil
	}

	if m := statusURLPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("twitter: %q is not a post URL or ID", input)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Fetch retrieves a post by ID.
func (c *Client) Fetch(ctx context.Context, id string) (*Tweet, error) {
	endpoint := fmt.Sprintf("%s/tweet-result?id=%s&lang=en", c.baseURL, url.QueryEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("twitter request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("twitter read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("twitter: post %s not found (deleted or private)", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter API error (status %d): %s", resp.StatusCode, string(body))
	}

	var tweet Tweet
	if err := json.Unmarshal(body, &tweet); err != nil {
		return nil, fmt.Errorf("twitter unmarshal: %w", err)
	}

	if tweet.Text == "" {
		return nil, fmt.Errorf("twitter: post %s has no text", id)
	}
	return &tweet, nil
}

// FetchByURL is a convenience wrapper combining ExtractID and Fetch.
func (c *Client) FetchByURL(ctx context.Context, postURL string) (*Tweet, error) {
	id, err := ExtractID(postURL)
	if err != nil {
		return nil, err
	}
	return c.Fetch(ctx, id)
}
