package visa

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Trenton-Brown/Visa-Stay/internal/db"

	"github.com/jackc/pgx/v5"
)

// CacheTTL is how long a stored lookup stays fresh. The store stamps the
// expiry on every write; the gateway only compares against it.
const CacheTTL = 30 * 24 * time.Hour

// Store is the cache collaborator. Get returns nil without error when the
// key is absent. Upsert is last-write-wins on the compound key.
type Store interface {
	Get(ctx context.Context, passportCode, destinationCode string) (*CacheEntry, error)
	Upsert(ctx context.Context, passportCode, destinationCode string, payload json.RawMessage, cachedAt time.Time) error
	Delete(ctx context.Context, passportCode, destinationCode string) error
}

// PGStore keeps cache entries in the visa_cache table.
type PGStore struct {
	db db.Querier
}

func NewPGStore(db db.Querier) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Get(ctx context.Context, passportCode, destinationCode string) (*CacheEntry, error) {
	row := s.db.QueryRow(ctx, `
		SELECT payload, cached_at, expires_at
		FROM visa_cache
		WHERE passport_code=$1 AND destination_code=$2
	`, passportCode, destinationCode)

	entry := CacheEntry{PassportCode: passportCode, DestinationCode: destinationCode}
	if err := row.Scan(&entry.Payload, &entry.CachedAt, &entry.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *PGStore) Upsert(ctx context.Context, passportCode, destinationCode string, payload json.RawMessage, cachedAt time.Time) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO visa_cache (passport_code, destination_code, payload, cached_at, expires_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (passport_code, destination_code)
		DO UPDATE SET payload=EXCLUDED.payload, cached_at=EXCLUDED.cached_at, expires_at=EXCLUDED.expires_at
	`, passportCode, destinationCode, payload, cachedAt, cachedAt.Add(CacheTTL))
	return err
}

func (s *PGStore) Delete(ctx context.Context, passportCode, destinationCode string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM visa_cache WHERE passport_code=$1 AND destination_code=$2
	`, passportCode, destinationCode)
	return err
}
