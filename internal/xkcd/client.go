// Package xkcd — клиент JSON API xkcd.com для бота totallyxkcd.
package xkcd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://xkcd.com"

type Comic struct {
	Num   int    `json:"num"`
	Title string `json:"title"`
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Img   string `json:"img"`
	Alt   string `json:"alt"`
}

type Client struct {
	http    *http.Client
	baseURL string
	intn    func(n int) int
}

// NewClient создаёт клиента; пустой baseURL — https://xkcd.com.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		intn:    rand.Intn,
	}
}

// Latest — последний выпуск.
func (c *Client) Latest(ctx context.Context) (*Comic, error) {
	return c.fetch(ctx, c.baseURL+"/info.0.json")
}

// Get — выпуск номер num.
func (c *Client) Get(ctx context.Context, num int) (*Comic, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/%d/info.0.json", c.baseURL, num))
}

// Random — случайный выпуск от 1 до последнего.
func (c *Client) Random(ctx context.Context) (*Comic, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if latest.Num < 1 {
		return nil, fmt.Errorf("xkcd: bad latest comic number %d", latest.Num)
	}
	return c.Get(ctx, c.intn(latest.Num)+1)
}

func (c *Client) fetch(ctx context.Context, url string) (*Comic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("xkcd: %s: %s", url, resp.Status)
	}

	var comic Comic
	if err := json.NewDecoder(resp.Body).Decode(&comic); err != nil {
		return nil, fmt.Errorf("xkcd: decode %s: %w", url, err)
	}
	return &comic, nil
}

// Format превращает выпуск в два сообщения: описание с картинкой и alt-текст.
func Format(c *Comic) []string {
	month, _ := strconv.Atoi(c.Month)
	day, _ := strconv.Atoi(c.Day)
	details := fmt.Sprintf("xkcd #%d; \"%s\" (%s-%02d-%02d, xkcd.com/%d)\n%s",
		c.Num, c.Title, c.Year, month, day, c.Num, c.Img)

	alt := "(no alt text)"
	if c.Alt != "" {
		alt = "Alt text: " + c.Alt
	}
	return []string{details, alt}
}
