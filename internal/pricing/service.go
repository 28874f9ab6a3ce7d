package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"camply/internal/shared/constants"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Service interface defines the contract for pricing business logic
type Service interface {
	GetConfig(ctx context.Context) (*PricingConfig, error)
	UpdateConfig(ctx context.Context, req ConfigRequest) (*PricingConfig, error)
	Quote(ctx context.Context, checkIn, checkOut time.Time, familyCount, visitorCount int) (*Breakdown, error)
}

// service implements the Service interface
type service struct {
	repo     Repository
	redis    *redis.Client
	validate *validator.Validate
}

// NewService creates a new pricing service instance
func NewService(repo Repository, redisClient *redis.Client) Service {
	return &service{
		repo:     repo,
		redis:    redisClient,
		validate: validator.New(),
	}
}

// GetConfig returns the active pricing config, read through the Redis cache.
func (s *service) GetConfig(ctx context.Context) (*PricingConfig, error) {
	if cfg := s.getCachedConfig(ctx); cfg != nil {
		return cfg, nil
	}

	cfg, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheConfig(ctx, cfg)
	return cfg, nil
}

// UpdateConfig validates and persists a new rate table, replacing the
// season set and invalidating the cache.
func (s *service) UpdateConfig(ctx context.Context, req ConfigRequest) (*PricingConfig, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	seasons := make([]Season, 0, len(req.Seasons))
	for _, sr := range req.Seasons {
		season := Season{
			Name:       sr.Name,
			StartMonth: sr.StartMonth,
			StartDay:   sr.StartDay,
			EndMonth:   sr.EndMonth,
			EndDay:     sr.EndDay,
		}
		// The (month, day) comparison cannot express windows that wrap
		// past December, so those are rejected rather than silently
		// misclassified.
		if season.SpansYearBoundary() {
			return nil, fmt.Errorf("season %q spans a year boundary; split it into two windows", sr.Name)
		}
		seasons = append(seasons, season)
	}

	cfg, err := s.repo.GetActive(ctx)
	if err == ErrMissingConfig {
		cfg = &PricingConfig{Active: true}
		cfg.ApplyRequest(req)
		cfg.Seasons = seasons
		if createErr := s.repo.Create(ctx, cfg); createErr != nil {
			return nil, fmt.Errorf("failed to create pricing config: %w", createErr)
		}
		s.invalidateCache(ctx)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyRequest(req)
	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to update pricing config: %w", err)
	}
	if err := s.repo.ReplaceSeasons(ctx, cfg.ID, seasons); err != nil {
		return nil, fmt.Errorf("failed to replace seasons: %w", err)
	}
	cfg.Seasons = seasons

	s.invalidateCache(ctx)
	return cfg, nil
}

// Quote computes a price breakdown for a stay using the active config.
// ErrMissingConfig is returned unchanged so callers can surface the
// data-setup problem without retrying.
func (s *service) Quote(ctx context.Context, checkIn, checkOut time.Time, familyCount, visitorCount int) (*Breakdown, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := Calculate(cfg, checkIn, checkOut, familyCount, visitorCount)
	return &breakdown, nil
}

// ApplyRequest copies the rate fields of a request onto the config.
func (c *PricingConfig) ApplyRequest(req ConfigRequest) {
	c.Weekday = req.Weekday
	c.Weekend = req.Weekend
	c.PeakWeekday = req.PeakWeekday
	c.PeakWeekend = req.PeakWeekend
	c.ExtraFamily = req.ExtraFamily
	c.Visitor = req.Visitor
	c.LongStayDiscount = req.LongStayDiscount
}

func (s *service) getCachedConfig(ctx context.Context) *PricingConfig {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, constants.CACHE_KEY_PRICING_ACTIVE).Bytes()
	if err != nil {
		return nil
	}

	var cfg PricingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	return &cfg
}

func (s *service) cacheConfig(ctx context.Context, cfg *PricingConfig) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, constants.CACHE_KEY_PRICING_ACTIVE, data, constants.TTL_PRICING_ACTIVE).Err(); err != nil {
		log.Printf("Warning: failed to cache pricing config: %v", err)
	}
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, constants.CACHE_KEY_PRICING_ACTIVE).Err(); err != nil {
		log.Printf("Warning: failed to invalidate pricing config cache: %v", err)
	}
}
