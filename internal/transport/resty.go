package transport

import (
	"context"
	"time"

	"brickset/client/internal/config"
	"brickset/client/internal/proxy"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// RestyTransport is the default Transport. Requests are never retried.
type RestyTransport struct {
	httpClient *resty.Client
}

func NewRestyTransport(cfg config.BricksetConfig, proxySupplier proxy.ProxySupplier) *RestyTransport {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using proxy: %s", proxyURL)
		}
	}

	return &RestyTransport{httpClient: client}
}

func (t *RestyTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := t.httpClient.R().
		SetContext(ctx).
		SetHeaders(req.Header).
		SetBody(req.Body).
		Post(req.URL)

	if err != nil {
		return nil, &TransportError{URL: req.URL, Err: err}
	}

	log.Debugf("POST %s -> %d", req.URL, resp.StatusCode())

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       []byte(resp.String()),
	}, nil
}

func (t *RestyTransport) Close() error {
	return t.httpClient.Close()
}
