// Package iovnredlist scrapes conservation status of species from the
// Vietnam Red List website, one page per species.
package iovnredlist

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/sciname"
	"github.com/gnames/conslaw/pkg/status"
	"github.com/go-resty/resty/v2"
)

// Source is the label of Vietnam Red List results.
const Source = "Vietnam Red List"

type vnredlist struct {
	baseURL string
	client  *resty.Client
	names   *sciname.Normalizer
	cache   *status.Cache
}

// New creates a status.Fetcher for the Vietnam Red List website. Results
// of every outcome are kept in cache, so each name reaches the website at
// most once during the cache lifetime.
func New(cfg *config.Config, cache *status.Cache) status.Fetcher {
	client := resty.New()
	client.SetHeader("user-agent", cfg.VNRedList.UserAgent)
	client.SetTimeout(cfg.VNRedList.Timeout)
	client.OnAfterResponse(logResponse)

	if cache == nil {
		cache = status.NewCache()
	}

	res := vnredlist{
		baseURL: strings.TrimRight(cfg.VNRedList.BaseURL, "/"),
		client:  client,
		names:   sciname.New(),
		cache:   cache,
	}
	return &res
}

func (v *vnredlist) Source() string {
	return Source
}

// Fetch returns the status of a species from the cache, or downloads its
// page. Names are converted to slugs, for example "Elephas maximus" is
// found at "{base}/elephas-maximus/". When the page does not exist,
// the slug made of the first two words of the name is tried.
func (v *vnredlist) Fetch(ctx context.Context, name string) status.Result {
	if res, ok := v.cache.Get(name); ok {
		slog.Debug("Cache hit", "name", name)
		return res
	}

	res := v.fetch(ctx, name)
	v.cache.Set(name, res)
	return res
}

// pageURL returns the address of a species page.
func (v *vnredlist) pageURL(slug string) string {
	return v.baseURL + "/" + slug + "/"
}

func (v *vnredlist) fetch(ctx context.Context, name string) status.Result {
	slug := v.names.Slug(name)
	if slug == "" {
		return status.NewError(name, status.InvalidName, "empty scientific name")
	}

	url := v.pageURL(slug)
	resp, err := v.get(ctx, url)
	if err != nil {
		return status.NewError(name, status.NetworkError, err.Error())
	}

	if resp.StatusCode() == http.StatusNotFound {
		if retry := retrySlug(name); retry != "" && retry != slug {
			url = v.pageURL(retry)
			slog.Debug("Retry", "name", name, "url", url)
			resp, err = v.get(ctx, url)
			if err != nil {
				return status.NewError(name, status.NetworkError, err.Error())
			}
		}
	}

	var res status.Result
	switch resp.StatusCode() {
	case http.StatusOK:
		res = v.parse(name, resp.Body())
	case http.StatusNotFound:
		res = status.NewNotFound(name)
	default:
		res = status.NewHTTPError(name, resp.StatusCode())
	}
	res.URL = url
	return res
}

func (v *vnredlist) get(ctx context.Context, url string) (*resty.Response, error) {
	return v.client.R().SetContext(ctx).Get(url)
}

func (v *vnredlist) parse(name string, body []byte) status.Result {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return status.NewError(name, status.ParseError, err.Error())
	}

	code, ok := extractCategory(doc)
	if !ok {
		return status.NewNotFound(name)
	}
	return status.NewSuccess(name, code)
}

// retrySlug uses only the first two words of the raw name.
func retrySlug(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return ""
	}
	return sciname.Slugify(words[0] + " " + words[1])
}

func logResponse(_ *resty.Client, resp *resty.Response) error {
	slog.Debug("Vietnam Red List response",
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"time", resp.Time(),
	)
	return nil
}
