package source

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/shanehull/icchain/internal/model"
)

const (
	DefaultBaseURL   = "https://ic.tpex.org.tw"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultTimeout   = 60 * time.Second
	DefaultDelay     = 2 * time.Second
)

type TPExOptions struct {
	BaseURL string
	Timeout time.Duration
	// Delay is the pause held after every page request.
	Delay time.Duration
}

func (o TPExOptions) withDefaults() TPExOptions {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// TPExScraper reads industry chain pages from the TPEx industry chain
// directory. Requests are strictly sequential.
type TPExScraper struct {
	logger    *slog.Logger
	baseURL   string
	collector *colly.Collector
}

func NewTPExScraper(logger *slog.Logger, opts TPExOptions) (*TPExScraper, error) {
	opts = opts.withDefaults()
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(base.Hostname()),
		colly.UserAgent(DefaultUserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(opts.Timeout)
	// ic.tpex.org.tw serves an incomplete certificate chain
	c.WithTransport(&http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	})
	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       opts.Delay,
	}); err != nil {
		return nil, fmt.Errorf("set limit rule: %w", err)
	}

	return &TPExScraper{
		logger:    logger,
		baseURL:   opts.BaseURL,
		collector: c,
	}, nil
}

func (s *TPExScraper) Name() string { return "TPEx" }

func (s *TPExScraper) pageURL(code string) string {
	return fmt.Sprintf("%s/introduce.php?ic=%s", s.baseURL, url.QueryEscape(code))
}

func (s *TPExScraper) Fetch(ctx context.Context, chain model.Chain) (*ChainPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// clones share the HTTP backend, so the limit rule spans every fetch
	c := s.collector.Clone()

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	var scrapeErr error
	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
	})

	target := s.pageURL(chain.Code)
	s.logger.Info("Downloading chain page", "chain", chain.Code, "label", chain.Label, "url", target)
	if err := c.Visit(target); err != nil {
		if scrapeErr != nil {
			return nil, scrapeErr
		}
		return nil, err
	}

	page, err := ParsePage(chain.Code, body)
	if err != nil {
		return nil, err
	}
	if page.TwoWaySplit {
		s.logger.Warn("No midstream marker, positions split upstream/downstream only", "chain", chain.Code)
	}
	s.logger.Info("Parsed chain page",
		"chain", chain.Code,
		"name", page.Name,
		"subcategories", len(page.Subcategories),
		"records", len(page.Records))
	return page, nil
}
