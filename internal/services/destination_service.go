package services

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"tripline/internal/models"
	"tripline/internal/providers"
	"tripline/internal/structures"
)

type DestinationServiceInterface interface {
	Lookup(ctx context.Context, country string) (models.DestinationInfo, error)
}

// DestinationService resolves a country name to its currency code and flag
// glyph via the REST Countries API. Results go through the cache so repeated
// lookups for the same country skip the network.
type DestinationService struct {
	conf   *structures.Config
	cache  providers.CacheProviderInterface
	logger providers.Logger
	client *http.Client
}

func NewDestinationService(conf *structures.Config, cache providers.CacheProviderInterface, logger providers.Logger) DestinationServiceInterface {
	return &DestinationService{
		conf:   conf,
		cache:  cache,
		logger: logger,
		client: &http.Client{
			Timeout: conf.Lookup.Timeout,
		},
	}
}

// Lookup fails with the single generic models.ErrLookupFailed for every
// failure mode; callers are not meant to distinguish an unknown country
// from an unreachable service. The underlying cause is logged instead.
func (ds *DestinationService) Lookup(ctx context.Context, country string) (models.DestinationInfo, error) {
	key := "dest:" + strings.ToLower(strings.TrimSpace(country))
	if data, ok := ds.cache.Get(key); ok {
		var info models.DestinationInfo
		if err := json.Unmarshal(data, &info); err == nil {
			return info, nil
		}
	}

	u := ds.conf.Lookup.BaseURL + "/name/" + url.PathEscape(country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		ds.logger.Warnf(providers.TypeLookup, "Lookup %q: bad request: %s", country, err)
		return models.DestinationInfo{}, models.ErrLookupFailed
	}

	res, err := ds.client.Do(req)
	if err != nil {
		ds.logger.Warnf(providers.TypeLookup, "Lookup %q: %s", country, err)
		return models.DestinationInfo{}, models.ErrLookupFailed
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		ds.logger.Warnf(providers.TypeLookup, "Lookup %q: status %d", country, res.StatusCode)
		return models.DestinationInfo{}, models.ErrLookupFailed
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		ds.logger.Warnf(providers.TypeLookup, "Lookup %q: read body: %s", country, err)
		return models.DestinationInfo{}, models.ErrLookupFailed
	}

	info, ok := extractDestinationInfo(body)
	if !ok {
		ds.logger.Warnf(providers.TypeLookup, "Lookup %q: unexpected response shape", country)
		return models.DestinationInfo{}, models.ErrLookupFailed
	}

	if data, err := json.Marshal(&info); err == nil {
		ds.cache.Set(key, data)
	}
	return info, nil
}

// extractDestinationInfo plucks the first matching country out of the REST
// Countries response: the first key of its currencies object and its flag
// glyph. Key order follows the document, matching what the original API
// consumers see.
func extractDestinationInfo(body []byte) (models.DestinationInfo, bool) {
	first := gjson.GetBytes(body, "0")
	if !first.Exists() {
		return models.DestinationInfo{}, false
	}

	var currency string
	first.Get("currencies").ForEach(func(key, _ gjson.Result) bool {
		currency = key.String()
		return false
	})
	flag := first.Get("flag").String()

	if currency == "" || flag == "" {
		return models.DestinationInfo{}, false
	}
	return models.DestinationInfo{Currency: currency, Flag: flag}, true
}
