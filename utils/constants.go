// File: utils/constants.go
package utils

import "time"

// AccessCachePrefix is the prefix used for Redis access-decision cache keys.
const AccessCachePrefix = "access:"

// AccessCacheTTL is the time-to-live for access-decision cache entries.
const AccessCacheTTL = 10 * time.Minute

// BookingSessionTTL is how long an in-flight booking session survives in Redis.
const BookingSessionTTL = 10 * time.Minute

// ConsultantCachePrefix is the prefix used for cached consultant catalog reads.
const ConsultantCachePrefix = "consultants:"

// ConsultantCacheTTL is how long cached catalog reads stay fresh. Profile
// edits are rare, so a short TTL is the only invalidation.
const ConsultantCacheTTL = 5 * time.Minute
