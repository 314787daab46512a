package leave

import (
	"context"
	"fmt"

	"leavedesk/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

// ListHolidays returns the holidays of one year ordered by date. Dates are
// read back as text so no session time zone can shift them.
func (s *Store) ListHolidays(ctx context.Context, year int) ([]HolidayEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT to_char(date, 'YYYY-MM-DD'), name
    FROM holidays
    WHERE EXTRACT(YEAR FROM date) = $1
    ORDER BY date
  `, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HolidayEntry
	for rows.Next() {
		var rawDate, name string
		if err := rows.Scan(&rawDate, &name); err != nil {
			return nil, err
		}
		date, err := ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("holiday row: %w", err)
		}
		out = append(out, HolidayEntry{Date: date, Name: name})
	}
	return out, rows.Err()
}

func (s *Store) UpsertHoliday(ctx context.Context, entry HolidayEntry) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO holidays (date, name)
    VALUES ($1::date, $2)
    ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
  `, entry.Date.String(), entry.Name)
	return err
}

func (s *Store) DeleteHoliday(ctx context.Context, date CalendarDate) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE date = $1::date", date.String())
	return err
}

// Seed inserts the calendar's holidays, leaving rows that already exist
// untouched so edits made in the database survive a restart. It returns the
// number of rows inserted.
func (s *Store) Seed(ctx context.Context, cal *HolidayCalendar) (int, error) {
	inserted := 0
	for _, e := range cal.Entries() {
		tag, err := s.DB.Exec(ctx, `
      INSERT INTO holidays (date, name)
      VALUES ($1::date, $2)
      ON CONFLICT (date) DO NOTHING
    `, e.Date.String(), e.Name)
		if err != nil {
			return inserted, fmt.Errorf("seed holiday %s: %w", e.Date, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
