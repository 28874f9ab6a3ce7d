package constants

import "time"

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Camply application
// Pattern: camply:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_SHORT = 6 * time.Hour  // 6 hours - for the site catalog
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for the pricing config
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for blocked-date lookups
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "camply"
)

// ================== PRICING MODULE ==================

const (
	CACHE_KEY_PRICING_ACTIVE = CACHE_PREFIX + ":pricing:config:active"
)

const (
	TTL_PRICING_ACTIVE = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== SITES MODULE ==================

const (
	CACHE_KEY_SITES_LIST = CACHE_PREFIX + ":sites:list:all"
	CACHE_KEY_SITE_BY_ID = CACHE_PREFIX + ":sites:detail:uuid:" // + site-id
)

const (
	TTL_SITES_LIST  = TTL_STATIC_SHORT // 6 hours
	TTL_SITE_DETAIL = TTL_STATIC_LONG  // 24 hours
)

// ================== BLOCKED DATES MODULE ==================

const (
	CACHE_KEY_BLOCKED_DATE = CACHE_PREFIX + ":blockeddates:check:" // + site-id:date or ALL:date
)

const (
	TTL_BLOCKED_DATE = TTL_SEMI_STATIC_QUICK // 15 minutes
)
