package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_location_service.go -package mocks github.com/sariops/sariops/internal/domain LocationService
//go:generate mockgen -destination mocks/mock_kv_cache_repository.go -package mocks github.com/sariops/sariops/internal/domain KVCacheRepository

// LocationCacheTTL is how long geographic data stays fresh in either cache
// tier before it is evicted and refetched.
const LocationCacheTTL = 7 * 24 * time.Hour

// Region is a top-level PSGC division.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Province is a second-level PSGC division.
type Province struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	RegionCode string `json:"regionCode"`
}

// City is a city or municipality. IsCity decides which barangay
// sub-resource endpoint applies.
type City struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"provinceCode"`
	IsCity       bool   `json:"isCity"`
}

// Barangay is the smallest PSGC division.
type Barangay struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode"`
}

// LocationSet is the full cached hierarchy below barangay level.
type LocationSet struct {
	Regions   []*Region   `json:"regions"`
	Provinces []*Province `json:"provinces"`
	Cities    []*City     `json:"cities"`
}

// LocationService serves cached geographic data.
type LocationService interface {
	GetLocations(ctx context.Context) (*LocationSet, error)

	// GetBarangays tries the city sub-resource first and falls back to the
	// municipality sub-resource. A miss on both is "no barangays", not an
	// error.
	GetBarangays(ctx context.Context, cityCode string) ([]*Barangay, error)

	SearchLocations(ctx context.Context, query string) (*LocationSet, error)
}

// KVCacheEntry is one row of the persistent cache tier.
type KVCacheEntry struct {
	Key      string
	Value    []byte
	CachedAt time.Time
}

// KVCacheRepository is the persistent tier of the two-tier location cache.
// Entries are advisory and may be dropped at any time.
type KVCacheRepository interface {
	Get(ctx context.Context, key string) (*KVCacheEntry, error)
	Set(ctx context.Context, key string, value []byte) error
	DeleteExpired(ctx context.Context, olderThan time.Time) error
}
