package visa

import (
	"context"
	"time"

	"github.com/Trenton-Brown/Visa-Stay/internal/countries"
)

// Service resolves country names and answers visa-rule checks, serving
// from the cache store while it is fresh and refreshing from the external
// lookup when it is not.
type Service struct {
	store  Store
	lookup Lookup
	now    func() time.Time
}

func NewService(store Store, lookup Lookup) *Service {
	return &Service{
		store:  store,
		lookup: lookup,
		now:    time.Now,
	}
}

// Check returns the visa rules for traveling from the passport country to
// the destination country, both given as free-form names.
//
// An expired entry observed on read is deleted on the spot and treated as
// a miss. Two concurrent misses for the same pair may both hit the
// external lookup and both write; the store's upsert is last-write-wins
// per key, which is harmless for pure lookup data.
func (s *Service) Check(ctx context.Context, passportName, destinationName string) (CheckResult, error) {
	passportCode, _ := countries.Resolve(passportName)
	destinationCode, _ := countries.Resolve(destinationName)

	entry, err := s.store.Get(ctx, passportCode, destinationCode)
	if err != nil {
		return CheckResult{}, err
	}

	if entry != nil {
		if s.now().Before(entry.ExpiresAt) {
			return CheckResult{
				PassportCode:    passportCode,
				DestinationCode: destinationCode,
				Rules:           entry.Payload,
				FromCache:       true,
			}, nil
		}
		// Stale row: evict eagerly so the next reader misses fast even
		// if our refetch below fails.
		if err := s.store.Delete(ctx, passportCode, destinationCode); err != nil {
			return CheckResult{}, err
		}
	}

	payload, err := s.lookup.Fetch(ctx, passportCode, destinationCode)
	if err != nil {
		return CheckResult{}, err
	}

	if err := s.store.Upsert(ctx, passportCode, destinationCode, payload, s.now()); err != nil {
		return CheckResult{}, err
	}

	return CheckResult{
		PassportCode:    passportCode,
		DestinationCode: destinationCode,
		Rules:           payload,
		FromCache:       false,
	}, nil
}
