// File: utils/constants.go
package utils

import "time"

// AuthSessionPrefix is the Redis key prefix for pending OAuth flows.
const AuthSessionPrefix = "authSession:"

// AuthSessionTTL bounds how long an OAuth state value stays redeemable.
const AuthSessionTTL = 10 * time.Minute

// SessionPrefix is the Redis key prefix for login session records.
const SessionPrefix = "session:"

// FeedCachePrefix prefixes each generation of the cached homepage feed.
const FeedCachePrefix = "feed:answered:"

// FeedGenerationKey holds the current feed generation counter.
const FeedGenerationKey = "feed:generation"
