package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

const (
	pubmedSearchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	pubmedFetchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
	nominatimURL    = "https://nominatim.openstreetmap.org/search"

	geoUserAgent = "omnibot/1.0"
)

// defaultTools assembles the credential-free lookup tools the assistant
// ships with.
func defaultTools(client *http.Client) ([]tool.BaseTool, error) {
	pubmed, err := newPubMedTool(client, pubmedSearchURL, pubmedFetchURL)
	if err != nil {
		return nil, err
	}

	geocode, err := newGeocodeTool(client, nominatimURL)
	if err != nil {
		return nil, err
	}

	return []tool.BaseTool{pubmed, geocode}, nil
}

type pubmedArgs struct {
	Query string `json:"query" jsonschema:"description=search keywords such as symptoms like 'fever headache'"`
}

// newPubMedTool searches PubMed and returns abstracts for the top hits.
func newPubMedTool(client *http.Client, searchURL, fetchURL string) (tool.InvokableTool, error) {
	return utils.InferTool(
		"pubmed_search",
		"Search PubMed for medical articles related to the given symptoms or keywords and return their abstracts.",
		func(ctx context.Context, args *pubmedArgs) (string, error) {
			ids, err := pubmedIDs(ctx, client, searchURL, args.Query)
			if err != nil {
				return "", err
			}
			if len(ids) == 0 {
				return "No articles found for your query.", nil
			}
			return pubmedAbstracts(ctx, client, fetchURL, ids)
		},
	)
}

func pubmedIDs(ctx context.Context, client *http.Client, searchURL, query string) ([]string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {"5"},
		"retmode": {"json"},
	}

	body, err := getBody(ctx, client, searchURL+"?"+params.Encode(), "")
	if err != nil {
		return nil, fmt.Errorf("pubmed search failed: %w", err)
	}

	var payload struct {
		ESearchResult struct {
			IDList []string `json:"idlist"`
		} `json:"esearchresult"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode pubmed search result: %w", err)
	}

	return payload.ESearchResult.IDList, nil
}

func pubmedAbstracts(ctx context.Context, client *http.Client, fetchURL string, ids []string) (string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"rettype": {"abstract"},
		"retmode": {"text"},
	}

	body, err := getBody(ctx, client, fetchURL+"?"+params.Encode(), "")
	if err != nil {
		return "", fmt.Errorf("pubmed fetch failed: %w", err)
	}

	return string(body), nil
}

type geocodeArgs struct {
	Address string `json:"address" jsonschema:"description=human-readable location to resolve"`
}

// newGeocodeTool resolves a place name to coordinates via Nominatim.
func newGeocodeTool(client *http.Client, baseURL string) (tool.InvokableTool, error) {
	return utils.InferTool(
		"geocode",
		"Resolve a human-readable address or place name to its latitude and longitude.",
		func(ctx context.Context, args *geocodeArgs) (string, error) {
			params := url.Values{
				"q":      {args.Address},
				"format": {"json"},
				"limit":  {"1"},
			}

			body, err := getBody(ctx, client, baseURL+"?"+params.Encode(), geoUserAgent)
			if err != nil {
				return "", fmt.Errorf("geocode lookup failed: %w", err)
			}

			var places []struct {
				Lat         string `json:"lat"`
				Lon         string `json:"lon"`
				DisplayName string `json:"display_name"`
			}
			if err := json.Unmarshal(body, &places); err != nil {
				return "", fmt.Errorf("failed to decode geocode result: %w", err)
			}
			if len(places) == 0 {
				return "", fmt.Errorf("location not found, try a different address")
			}

			place := places[0]
			return fmt.Sprintf("%s is at latitude %s, longitude %s", place.DisplayName, place.Lat, place.Lon), nil
		},
	)
}

func getBody(ctx context.Context, client *http.Client, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
