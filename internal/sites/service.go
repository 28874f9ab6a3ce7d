package sites

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"camply/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Service interface defines the contract for site catalog logic
type Service interface {
	CreateSite(ctx context.Context, req SiteRequest) (*Site, error)
	GetSite(ctx context.Context, id uuid.UUID) (*Site, error)
	ListSites(ctx context.Context) ([]Site, error)
	UpdateSite(ctx context.Context, id uuid.UUID, req SiteRequest) (*Site, error)
	CountSites(ctx context.Context) (int64, error)
}

type service struct {
	repo  Repository
	redis *redis.Client
}

// NewService creates a new sites service instance
func NewService(repo Repository, redisClient *redis.Client) Service {
	return &service{repo: repo, redis: redisClient}
}

func (s *service) CreateSite(ctx context.Context, req SiteRequest) (*Site, error) {
	site := &Site{Active: true}
	site.applyRequest(req)

	if err := s.repo.Create(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	s.invalidateListCache(ctx)
	return site, nil
}

// GetSite returns one site, read through the Redis cache.
func (s *service) GetSite(ctx context.Context, id uuid.UUID) (*Site, error) {
	cacheKey := constants.CACHE_KEY_SITE_BY_ID + id.String()
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var site Site
			if err := json.Unmarshal(data, &site); err == nil {
				return &site, nil
			}
		}
	}

	site, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheJSON(ctx, cacheKey, site, constants.TTL_SITE_DETAIL)
	return site, nil
}

// ListSites returns the active site catalog, read through the Redis cache.
func (s *service) ListSites(ctx context.Context) ([]Site, error) {
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, constants.CACHE_KEY_SITES_LIST).Bytes(); err == nil {
			var sites []Site
			if err := json.Unmarshal(data, &sites); err == nil {
				return sites, nil
			}
		}
	}

	sites, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	s.cacheJSON(ctx, constants.CACHE_KEY_SITES_LIST, sites, constants.TTL_SITES_LIST)
	return sites, nil
}

func (s *service) UpdateSite(ctx context.Context, id uuid.UUID, req SiteRequest) (*Site, error) {
	site, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	site.applyRequest(req)
	if err := s.repo.Update(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}

	s.invalidateListCache(ctx)
	if s.redis != nil {
		if err := s.redis.Del(ctx, constants.CACHE_KEY_SITE_BY_ID+id.String()).Err(); err != nil {
			log.Printf("Warning: failed to invalidate site cache: %v", err)
		}
	}
	return site, nil
}

// CountSites returns the number of active sites. Used for camp-wide
// occupancy checks, so it bypasses the cache.
func (s *service) CountSites(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

func (st *Site) applyRequest(req SiteRequest) {
	st.Name = req.Name
	st.Description = req.Description
	st.Zone = req.Zone
	st.BasePrice = req.BasePrice
	st.Price = req.Price
	st.MaxOccupancy = req.MaxOccupancy
	if req.Active != nil {
		st.Active = *req.Active
	}
}

func (s *service) cacheJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Warning: failed to cache %s: %v", key, err)
	}
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, constants.CACHE_KEY_SITES_LIST).Err(); err != nil {
		log.Printf("Warning: failed to invalidate sites list cache: %v", err)
	}
}
