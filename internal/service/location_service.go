package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/cache"
	"github.com/sariops/sariops/pkg/logger"
)

// errUpstreamNotFound marks a 404 from the geographic API so barangay
// lookups can fall through to the municipality sub-resource.
var errUpstreamNotFound = fmt.Errorf("upstream resource not found")

// LocationService serves Philippine geographic divisions through a two-tier
// cache: an in-process map first, then the persistent key/value tier, then
// the upstream PSGC API. Entries older than LocationCacheTTL are refetched.
type LocationService struct {
	memCache   cache.Cache
	kvRepo     domain.KVCacheRepository
	httpClient domain.HTTPClient
	logger     logger.Logger
	endpoint   string
}

// NewLocationService creates a new location cache service.
func NewLocationService(
	memCache cache.Cache,
	kvRepo domain.KVCacheRepository,
	httpClient domain.HTTPClient,
	logger logger.Logger,
	endpoint string,
) *LocationService {
	return &LocationService{
		memCache:   memCache,
		kvRepo:     kvRepo,
		httpClient: httpClient,
		logger:     logger,
		endpoint:   strings.TrimSuffix(endpoint, "/"),
	}
}

// fetch performs one upstream GET and returns the raw body.
func (s *LocationService) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create location request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errUpstreamNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read location response: %w", err)
	}
	return body, nil
}

// cachedJSON resolves a key through both cache tiers, calling fetch only
// when neither tier has a fresh entry. Fresh upstream data is written back
// to both tiers.
func (s *LocationService) cachedJSON(ctx context.Context, key string, fetch func() ([]byte, error)) ([]byte, error) {
	if value, ok := s.memCache.Get(key); ok {
		if data, ok := value.([]byte); ok {
			return data, nil
		}
	}

	entry, err := s.kvRepo.Get(ctx, key)
	if err != nil {
		s.logger.WithField("key", key).Warn("Persistent location cache read failed: " + err.Error())
	}
	if entry != nil && time.Since(entry.CachedAt) < domain.LocationCacheTTL {
		s.memCache.Set(key, entry.Value, domain.LocationCacheTTL)
		return entry.Value, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := s.kvRepo.Set(ctx, key, data); err != nil {
		s.logger.WithField("key", key).Warn("Persistent location cache write failed: " + err.Error())
	}
	s.memCache.Set(key, data, domain.LocationCacheTTL)

	return data, nil
}

// GetLocations returns the full region/province/city hierarchy. Cities and
// municipalities are merged into one list, tagged by origin.
func (s *LocationService) GetLocations(ctx context.Context) (*domain.LocationSet, error) {
	var regions []*domain.Region
	data, err := s.cachedJSON(ctx, "psgc:regions", func() ([]byte, error) {
		return s.fetch(ctx, "/regions.json")
	})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("failed to decode regions: %w", err)
	}

	var provinces []*domain.Province
	data, err = s.cachedJSON(ctx, "psgc:provinces", func() ([]byte, error) {
		return s.fetch(ctx, "/provinces.json")
	})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &provinces); err != nil {
		return nil, fmt.Errorf("failed to decode provinces: %w", err)
	}

	cities, err := s.getCities(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.LocationSet{
		Regions:   regions,
		Provinces: provinces,
		Cities:    cities,
	}, nil
}

// getCities merges the cities and municipalities resources. The merged list
// is cached as one entry so both tiers hold the tagged records.
func (s *LocationService) getCities(ctx context.Context) ([]*domain.City, error) {
	data, err := s.cachedJSON(ctx, "psgc:cities", func() ([]byte, error) {
		cityData, err := s.fetch(ctx, "/cities.json")
		if err != nil {
			return nil, err
		}
		var cities []*domain.City
		if err := json.Unmarshal(cityData, &cities); err != nil {
			return nil, fmt.Errorf("failed to decode cities: %w", err)
		}
		for _, c := range cities {
			c.IsCity = true
		}

		muniData, err := s.fetch(ctx, "/municipalities.json")
		if err != nil {
			return nil, err
		}
		var municipalities []*domain.City
		if err := json.Unmarshal(muniData, &municipalities); err != nil {
			return nil, fmt.Errorf("failed to decode municipalities: %w", err)
		}

		return json.Marshal(append(cities, municipalities...))
	})
	if err != nil {
		return nil, err
	}

	var cities []*domain.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to decode merged cities: %w", err)
	}
	return cities, nil
}

// GetBarangays returns the barangays under a city or municipality code. The
// upstream partitions the sub-resource by parent type, so the city endpoint
// is tried first with a municipality fallback. A miss on both means the code
// has no barangays, which is an empty result rather than an error.
func (s *LocationService) GetBarangays(ctx context.Context, cityCode string) ([]*domain.Barangay, error) {
	if cityCode == "" {
		return nil, domain.NewValidationError("city code is required")
	}

	data, err := s.cachedJSON(ctx, "psgc:barangays:"+cityCode, func() ([]byte, error) {
		data, err := s.fetch(ctx, "/cities/"+cityCode+"/barangays.json")
		if err == nil {
			return data, nil
		}
		if err != errUpstreamNotFound {
			return nil, err
		}

		data, err = s.fetch(ctx, "/municipalities/"+cityCode+"/barangays.json")
		if err == nil {
			return data, nil
		}
		if err != errUpstreamNotFound {
			return nil, err
		}

		return []byte("[]"), nil
	})
	if err != nil {
		return nil, err
	}

	barangays := []*domain.Barangay{}
	if err := json.Unmarshal(data, &barangays); err != nil {
		return nil, fmt.Errorf("failed to decode barangays: %w", err)
	}
	return barangays, nil
}

// SearchLocations filters the cached hierarchy by a case-insensitive
// substring match on division names.
func (s *LocationService) SearchLocations(ctx context.Context, query string) (*domain.LocationSet, error) {
	locations, err := s.GetLocations(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return locations, nil
	}

	result := &domain.LocationSet{
		Regions:   []*domain.Region{},
		Provinces: []*domain.Province{},
		Cities:    []*domain.City{},
	}
	for _, r := range locations.Regions {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			result.Regions = append(result.Regions, r)
		}
	}
	for _, p := range locations.Provinces {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			result.Provinces = append(result.Provinces, p)
		}
	}
	for _, c := range locations.Cities {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			result.Cities = append(result.Cities, c)
		}
	}

	return result, nil
}
