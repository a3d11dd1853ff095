package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

// Client reads a remote feed.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for base, e.g. http://127.0.0.1:8080.
func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// Today fetches today's pair as the server sees it.
func (c *Client) Today() (Day, error) {
	var out Day
	if err := c.getJSON("/pair", &out); err != nil {
		return Day{}, err
	}
	return out, nil
}

// Pair fetches the pair for d.
func (c *Client) Pair(d time.Time) (Day, error) {
	var out Day
	if err := c.getJSON("/pair/"+url.PathEscape(calendar.FormatDate(d)), &out); err != nil {
		return Day{}, err
	}
	return out, nil
}

// Upcoming fetches n working days from the server's today.
func (c *Client) Upcoming(n int) ([]Day, error) {
	var out []Day
	if err := c.getJSON("/upcoming?n="+strconv.Itoa(n), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Debtors fetches the debtor queue.
func (c *Client) Debtors() ([]domain.Debtor, error) {
	var out []domain.Debtor
	if err := c.getJSON("/debtors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var e errorBody
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("feed get %s: %s: %s", path, resp.Status, e.Error)
		}
		return fmt.Errorf("feed get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
