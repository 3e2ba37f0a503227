package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripline/internal/models"
	"tripline/internal/structures"
	"tripline/internal/testutil"
)

// trimmed REST Countries v3.1 response for "japan"
const japanResponse = `[
  {
    "name": {"common": "Japan", "official": "Japan"},
    "currencies": {"JPY": {"name": "Japanese yen", "symbol": "¥"}},
    "flag": "🇯🇵"
  }
]`

func lookupConfig(baseURL string) *structures.Config {
	return &structures.Config{
		Lookup: structures.LookupConfig{
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
	}
}

func TestDestinationService_Lookup_ExtractsCurrencyAndFlag(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(japanResponse))
	}))
	defer server.Close()

	ds := NewDestinationService(lookupConfig(server.URL), testutil.NewMockCache(), &testutil.MockLogger{})

	info, err := ds.Lookup(context.Background(), "japan")
	require.NoError(t, err)
	assert.Equal(t, "JPY", info.Currency)
	assert.Equal(t, "🇯🇵", info.Flag)
	assert.Equal(t, "/name/japan", requestedPath)
}

func TestDestinationService_Lookup_CachesResult(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(japanResponse))
	}))
	defer server.Close()

	ds := NewDestinationService(lookupConfig(server.URL), testutil.NewMockCache(), &testutil.MockLogger{})

	_, err := ds.Lookup(context.Background(), "Japan")
	require.NoError(t, err)
	info, err := ds.Lookup(context.Background(), "japan")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup should be served from cache")
	assert.Equal(t, "JPY", info.Currency)
}

func TestDestinationService_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	ds := NewDestinationService(lookupConfig(server.URL), testutil.NewMockCache(), &testutil.MockLogger{})

	_, err := ds.Lookup(context.Background(), "atlantis")
	assert.ErrorIs(t, err, models.ErrLookupFailed)
}

func TestDestinationService_Lookup_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":{"common":"Nowhere"}}]`))
	}))
	defer server.Close()

	ds := NewDestinationService(lookupConfig(server.URL), testutil.NewMockCache(), &testutil.MockLogger{})

	_, err := ds.Lookup(context.Background(), "nowhere")
	assert.ErrorIs(t, err, models.ErrLookupFailed)
}

func TestDestinationService_Lookup_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	ds := NewDestinationService(lookupConfig(server.URL), testutil.NewMockCache(), &testutil.MockLogger{})

	_, err := ds.Lookup(context.Background(), "japan")
	assert.ErrorIs(t, err, models.ErrLookupFailed)
}

func TestExtractDestinationInfo_EmptyArray(t *testing.T) {
	_, ok := extractDestinationInfo([]byte(`[]`))
	assert.False(t, ok)
}

func TestExtractDestinationInfo_FirstResultWins(t *testing.T) {
	body := `[
	  {"currencies": {"EUR": {}}, "flag": "🇮🇹"},
	  {"currencies": {"CHF": {}}, "flag": "🇨🇭"}
	]`
	info, ok := extractDestinationInfo([]byte(body))
	require.True(t, ok)
	assert.Equal(t, "EUR", info.Currency)
	assert.Equal(t, "🇮🇹", info.Flag)
}
