package blockeddates

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"camply/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const dateLayout = "2006-01-02"

// Service interface defines the contract for blocked-date administration
type Service interface {
	Block(ctx context.Context, req BlockedDateRequest) (*BlockedDate, error)
	Unblock(ctx context.Context, id uuid.UUID) error
	ListRange(ctx context.Context, from, to time.Time) ([]BlockedDate, error)
	IsBlocked(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error)
}

type service struct {
	repo  Repository
	redis *redis.Client
}

// NewService creates a new blocked-dates service instance
func NewService(repo Repository, redisClient *redis.Client) Service {
	return &service{repo: repo, redis: redisClient}
}

func (s *service) Block(ctx context.Context, req BlockedDateRequest) (*BlockedDate, error) {
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	blocked := &BlockedDate{Date: date, Memo: req.Memo}
	if req.SiteID != nil {
		siteID, err := uuid.Parse(*req.SiteID)
		if err != nil {
			return nil, fmt.Errorf("invalid site id: %w", err)
		}
		blocked.SiteID = &siteID
	}

	if err := s.repo.Create(ctx, blocked); err != nil {
		return nil, fmt.Errorf("failed to create blocked date: %w", err)
	}

	s.invalidateDate(ctx, blocked.SiteID, date)
	return blocked, nil
}

func (s *service) Unblock(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Deleting without the row in hand, so drop every cached verdict for
	// the prefix rather than one key.
	s.flushCache(ctx)
	return nil
}

func (s *service) ListRange(ctx context.Context, from, to time.Time) ([]BlockedDate, error) {
	return s.repo.ListByRange(ctx, from, to)
}

// IsBlocked reports whether the night is closed for the site, read
// through a short-lived Redis cache.
func (s *service) IsBlocked(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error) {
	cacheKey := s.cacheKey(siteID, date)
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			blocked, parseErr := strconv.ParseBool(val)
			if parseErr == nil {
				return blocked, nil
			}
		}
	}

	blocked, err := s.repo.ExistsFor(ctx, siteID, date)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked date: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, strconv.FormatBool(blocked), constants.TTL_BLOCKED_DATE).Err(); err != nil {
			log.Printf("Warning: failed to cache blocked-date verdict: %v", err)
		}
	}
	return blocked, nil
}

func (s *service) cacheKey(siteID uuid.UUID, date time.Time) string {
	return constants.CACHE_KEY_BLOCKED_DATE + siteID.String() + ":" + date.Format(dateLayout)
}

func (s *service) invalidateDate(ctx context.Context, siteID *uuid.UUID, date time.Time) {
	if s.redis == nil {
		return
	}

	// A camp-wide block changes the verdict for every site, so fall back
	// to flushing the prefix.
	if siteID == nil {
		s.flushCache(ctx)
		return
	}

	if err := s.redis.Del(ctx, s.cacheKey(*siteID, date)).Err(); err != nil {
		log.Printf("Warning: failed to invalidate blocked-date cache: %v", err)
	}
}

func (s *service) flushCache(ctx context.Context) {
	if s.redis == nil {
		return
	}

	iter := s.redis.Scan(ctx, 0, constants.CACHE_KEY_BLOCKED_DATE+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Warning: failed to invalidate blocked-date cache: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Warning: blocked-date cache scan failed: %v", err)
	}
}
