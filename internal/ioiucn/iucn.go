// Package ioiucn queries the IUCN Red List API v4 for conservation status
// of species.
package ioiucn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/sciname"
	"github.com/gnames/conslaw/pkg/status"
	"github.com/gnames/gnfmt"
	"github.com/go-resty/resty/v2"
)

// Source is the label of IUCN results.
const Source = "IUCN"

const unauthorizedMsg = "Unauthorized - check your API token"

type iucn struct {
	client *resty.Client
	names  *sciname.Normalizer
}

// New creates a status.Fetcher for the IUCN Red List API.
func New(cfg *config.Config) status.Fetcher {
	client := resty.New()
	client.SetBaseURL(cfg.IUCN.BaseURL)
	client.SetAuthToken(cfg.IUCN.Token)
	client.SetHeader("accept", "application/json")
	client.SetTimeout(cfg.IUCN.Timeout)
	client.OnAfterResponse(logResponse)

	res := iucn{
		client: client,
		names:  sciname.New(),
	}
	return &res
}

func (i *iucn) Source() string {
	return Source
}

// Fetch queries the API about one scientific name. Names are split into
// genus, species and infraspecific epithet of their canonical form.
func (i *iucn) Fetch(ctx context.Context, name string) status.Result {
	tokens, err := i.names.Split(name)
	if err != nil {
		return status.NewError(name, status.InvalidName, err.Error())
	}

	params := map[string]string{
		"genus_name":   tokens.Genus,
		"species_name": tokens.Species,
	}
	if tokens.Infra != "" {
		params["infra_name"] = tokens.Infra
	}

	resp, err := i.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/taxa/scientific_name")
	if err != nil {
		return status.NewError(name, status.NetworkError, err.Error())
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return i.parse(name, resp.Body())
	case http.StatusUnauthorized:
		return status.NewError(name, status.Unauthorized, unauthorizedMsg)
	case http.StatusNotFound:
		return status.NewNotFound(name)
	default:
		return status.NewHTTPError(name, resp.StatusCode())
	}
}

func (i *iucn) parse(name string, body []byte) status.Result {
	var data taxaResponse
	enc := gnfmt.GNjson{}
	if err := enc.Decode(body, &data); err != nil {
		return status.NewError(name, status.ParseError, err.Error())
	}

	if len(data.Assessments) == 0 {
		return status.NewNotFound(name)
	}

	latest := data.latest()
	res := status.NewSuccess(name, latest.CategoryCode)
	res.AssessmentID = string(latest.AssessmentID)
	res.YearPublished = string(latest.YearPublished)
	res.URL = latest.URL
	res.Scope = latest.scope()
	res.SISID = string(data.Taxon.SISID)
	res.CommonName = data.Taxon.commonName()
	res.Taxonomy = status.Taxonomy{
		Kingdom: data.Taxon.KingdomName,
		Phylum:  data.Taxon.PhylumName,
		Class:   data.Taxon.ClassName,
		Order:   data.Taxon.OrderName,
		Family:  data.Taxon.FamilyName,
		Genus:   data.Taxon.GenusName,
		Species: data.Taxon.SpeciesName,
	}
	return res
}

func logResponse(_ *resty.Client, resp *resty.Response) error {
	slog.Debug("IUCN response",
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"time", resp.Time(),
	)
	return nil
}
