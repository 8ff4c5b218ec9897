package visa

import (
	"encoding/json"
	"time"
)

// CacheEntry is one memoized visa-rule lookup, keyed by the passport and
// destination codes. The payload is stored verbatim; its internal shape
// belongs to the external rules feed and is never interpreted here.
type CacheEntry struct {
	PassportCode    string          `json:"passport_code"`
	DestinationCode string          `json:"destination_code"`
	Payload         json.RawMessage `json:"payload"`
	CachedAt        time.Time       `json:"cached_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
}

// CheckResult is what the gateway hands back to callers.
type CheckResult struct {
	PassportCode    string          `json:"passport_code"`
	DestinationCode string          `json:"destination_code"`
	Rules           json.RawMessage `json:"rules"`
	FromCache       bool            `json:"from_cache"`
}
