package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

const (
	probeTimeout     = 5 * time.Second
	probeConcurrency = 16
)

// ProxySupplier hands out outbound proxies in round-robin order.
type ProxySupplier interface {
	Get() string
	Len() int
}

type proxySupplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// NewStaticSupplier skips probing and serves the given proxies as is.
func NewStaticSupplier(proxies []string) ProxySupplier {
	return &proxySupplier{proxies: append([]string(nil), proxies...)}
}

// NewProxySupplier probes every proxy against endpoint and keeps the ones that
// answered. Any HTTP response counts: the endpoint rejects bare GETs.
func NewProxySupplier(ctx context.Context, proxies []string, endpoint string) ProxySupplier {
	if len(proxies) == 0 {
		return &proxySupplier{}
	}

	log.Infof("🔄 Probing %d proxies against %s...", len(proxies), endpoint)

	reachable := make([]bool, len(proxies))

	g := new(errgroup.Group)
	g.SetLimit(probeConcurrency)

	for i, proxyURL := range proxies {
		g.Go(func() error {
			reachable[i] = probe(ctx, proxyURL, endpoint)
			return nil
		})
	}
	_ = g.Wait()

	valid := make([]string, 0, len(proxies))
	for i, ok := range reachable {
		if ok {
			valid = append(valid, proxies[i])
			log.Infof("✅ Proxy %s is reachable", proxies[i])
		} else {
			log.Infof("❌ Proxy %s is not reachable, skipping", proxies[i])
		}
	}

	log.Infof("✅ ProxySupplier initialized with %d of %d proxies", len(valid), len(proxies))

	return &proxySupplier{proxies: valid}
}

// Get returns the next proxy URL, or "" when the pool is empty.
func (p *proxySupplier) Get() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxy := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)

	return proxy
}

func (p *proxySupplier) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.proxies)
}

func probe(ctx context.Context, proxyURL, endpoint string) bool {
	client := resty.New().
		SetTimeout(probeTimeout).
		SetRetryCount(0).
		SetProxy(proxyURL)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		log.Debugf("Proxy probe failed for %s: %v", proxyURL, err)
		return false
	}

	log.Debugf("Proxy probe for %s answered %s", proxyURL, resp.Status())
	return true
}
