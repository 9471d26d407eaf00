// Command districts dumps the district code list that the upstream dataset
// actually uses for the supported state. It exists because the published data
// dictionary and the codes embedded in responses have diverged before; run it
// whenever a district query unexpectedly returns no data, and diff the output
// against the catalog in internal/domain.
//
// Usage:
//
//	go run ./cmd/districts -api-key $DATA_GOV_API_KEY -resource-id $DATA_GOV_RESOURCE_ID
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/axomdata/nrega-dashboard/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	apiKey := flag.String("api-key", "", "data.gov.in API key")
	resourceID := flag.String("resource-id", "", "data.gov.in resource ID")
	baseURL := flag.String("base-url", "https://api.data.gov.in/resource", "resource API base URL")
	codePrefix := flag.String("code-prefix", "04", "district code prefix for the supported state")
	limit := flag.Int("limit", 500, "record limit")
	flag.Parse()

	if *apiKey == "" || *resourceID == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -api-key, -resource-id")
	}

	params := url.Values{
		"api-key": {*apiKey},
		"format":  {"json"},
		"limit":   {fmt.Sprint(*limit)},
	}
	fullURL := fmt.Sprintf("%s/%s?%s", *baseURL, *resourceID, params.Encode())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch districts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var envelope struct {
		Records []domain.RawRecord `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	seen := map[string]string{}
	for _, raw := range envelope.Records {
		rec := domain.NormalizeRecord(raw)
		if strings.HasPrefix(rec.DistrictCode, *codePrefix) {
			seen[rec.DistrictCode] = rec.DistrictName
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("%d districts with code prefix %q:\n", len(codes), *codePrefix)
	for _, code := range codes {
		fmt.Printf("%s -> %s\n", code, seen[code])
	}
	return nil
}
