package trip

import (
	"context"
	"time"

	"github.com/Trenton-Brown/Visa-Stay/internal/countries"
	"github.com/Trenton-Brown/Visa-Stay/internal/db"
	"github.com/Trenton-Brown/Visa-Stay/internal/schengen"
	"github.com/Trenton-Brown/Visa-Stay/internal/shared/dateutil"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateTrip(ctx context.Context, input Trip) (Trip, error) {
	input.ID = uuid.NewString()
	if input.CountryCode == "" {
		input.CountryCode, _ = countries.Resolve(input.CountryName)
	}
	if input.CountryName == "" {
		input.CountryName, _ = countries.Name(input.CountryCode)
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO trips (id, user_id, country_code, country_name, start_date, end_date, visa_duration)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.UserID, input.CountryCode, input.CountryName, input.StartDate, timePtr(input.EndDate), input.VisaDuration)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Trip{}, err
	}
	return input, nil
}

func (s *Service) GetTrip(ctx context.Context, id string) (Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, country_code, country_name, start_date, end_date, visa_duration, created_at
		FROM trips WHERE id=$1
	`, id)
	return scanTrip(row)
}

func (s *Service) UpdateTrip(ctx context.Context, id string, patch Trip) (Trip, error) {
	trip, err := s.GetTrip(ctx, id)
	if err != nil {
		return Trip{}, err
	}
	if patch.CountryName != "" {
		trip.CountryName = patch.CountryName
		trip.CountryCode, _ = countries.Resolve(patch.CountryName)
	}
	if patch.CountryCode != "" {
		trip.CountryCode = patch.CountryCode
	}
	if !patch.StartDate.IsZero() {
		trip.StartDate = patch.StartDate
	}
	if !patch.EndDate.IsZero() {
		trip.EndDate = patch.EndDate
	}
	if patch.VisaDuration != "" {
		trip.VisaDuration = patch.VisaDuration
	}

	_, err = s.db.Exec(ctx, `
		UPDATE trips
		SET country_code=$2, country_name=$3, start_date=$4, end_date=$5, visa_duration=$6
		WHERE id=$1
	`, trip.ID, trip.CountryCode, trip.CountryName, trip.StartDate, timePtr(trip.EndDate), trip.VisaDuration)
	if err != nil {
		return Trip{}, err
	}
	return trip, nil
}

func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id=$1`, id)
	return err
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, country_code, country_name, start_date, end_date, visa_duration, created_at
		FROM trips WHERE user_id=$1
		ORDER BY start_date
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// Usage computes the Schengen 90/180 summary plus the per-trip
// visa-allowance standing for a user's trips as of ref.
func (s *Service) Usage(ctx context.Context, userID string, ref time.Time) (Usage, error) {
	trips, err := s.ListByUser(ctx, userID)
	if err != nil {
		return Usage{}, err
	}

	stays := make([]schengen.Stay, 0, len(trips))
	statuses := make([]TripStatus, 0, len(trips))
	for _, trip := range trips {
		inZone := countries.IsSchengen(trip.CountryCode)
		stays = append(stays, schengen.Stay{
			Start:    trip.StartDate,
			End:      trip.EndDate,
			Schengen: inZone,
		})

		status := TripStatus{
			TripID:      trip.ID,
			CountryCode: trip.CountryCode,
			CountryName: trip.CountryName,
			Schengen:    inZone,
		}
		if trip.VisaDuration != "" {
			if left, ok := schengen.AllowanceLeft(trip.VisaDuration, trip.StartDate, ref); ok {
				status.VisaDaysLeft = &left
			}
			status.Overstayed, status.OverstayDays = schengen.Overstay(trip.VisaDuration, trip.StartDate, trip.EndDate, ref)
		}
		statuses = append(statuses, status)
	}

	refDay := dateutil.DayOf(ref)
	return Usage{
		ReferenceDate: refDay,
		WindowStart:   dateutil.AddDays(refDay, -(schengen.WindowDays - 1)),
		WindowEnd:     refDay,
		DaysUsed:      schengen.DaysUsed(stays, ref),
		DaysRemaining: schengen.DaysRemaining(stays, ref),
		Trips:         statuses,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (Trip, error) {
	var trip Trip
	var end *time.Time
	if err := row.Scan(&trip.ID, &trip.UserID, &trip.CountryCode, &trip.CountryName,
		&trip.StartDate, &end, &trip.VisaDuration, &trip.CreatedAt); err != nil {
		return Trip{}, err
	}
	if end != nil {
		trip.EndDate = *end
	}
	return trip, nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
