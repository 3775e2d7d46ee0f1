// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SettingsCachePrefix is the prefix used for cached singleton settings documents.
const SettingsCachePrefix = "settings:"

// SettingsCacheTTL is the time-to-live for cached settings documents.
const SettingsCacheTTL = 5 * time.Minute
