package customer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kireinail/skillcheck/internal/scoring"
)

// SQLStore is a Store backed by database/sql. Works against both the
// sqlite and pgx drivers; placeholders use the $n form, which both accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

var _ Store = (*SQLStore)(nil)

const customerCols = `id, customer_number, name, COALESCE(age, 0), prefecture, occupation,
  nail_technician_experience, application_date, google_drive_url, status, created_at`

func scanCustomer(row interface{ Scan(...any) error }) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.Number, &c.Name, &c.Age, &c.Prefecture, &c.Occupation,
		&c.Experience, &c.ApplicationDate, &c.DriveURL, &c.Status, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	return c, err
}

func (s *SQLStore) UpsertCustomer(ctx context.Context, c Customer) (Customer, error) {
	if c.Number == "" {
		return Customer{}, fmt.Errorf("upsert customer: empty customer number")
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	if c.Status == "" {
		c.Status = "new"
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO customers (customer_number, name, age, prefecture, occupation,
  nail_technician_experience, application_date, google_drive_url, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (customer_number) DO UPDATE SET
  name = excluded.name,
  age = excluded.age,
  prefecture = excluded.prefecture,
  occupation = excluded.occupation,
  nail_technician_experience = excluded.nail_technician_experience,
  application_date = excluded.application_date,
  google_drive_url = excluded.google_drive_url,
  status = excluded.status`,
		c.Number, c.Name, nullableAge(c.Age), c.Prefecture, c.Occupation,
		c.Experience, c.ApplicationDate, c.DriveURL, c.Status, c.CreatedAt)
	if err != nil {
		return Customer{}, fmt.Errorf("upsert customer %s: %w", c.Number, err)
	}
	return s.GetCustomerByNumber(ctx, c.Number)
}

func nullableAge(age int) any {
	if age <= 0 {
		return nil
	}
	return age
}

func (s *SQLStore) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+customerCols+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (s *SQLStore) GetCustomerByNumber(ctx context.Context, number string) (Customer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+customerCols+` FROM customers WHERE customer_number = $1`, number)
	return scanCustomer(row)
}

func (s *SQLStore) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+customerCols+` FROM customers ORDER BY customer_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const checkCols = `id, customer_id, imported_at, scores_json, care_score, color_score,
  art_score, time_score, total_score, total_time, rank, counseling_comment`

func (s *SQLStore) AddSkillCheck(ctx context.Context, chk SkillCheck) (SkillCheck, error) {
	if chk.CustomerID == 0 {
		return SkillCheck{}, fmt.Errorf("add skill check: missing customer id")
	}
	if chk.ImportedAt == 0 {
		chk.ImportedAt = time.Now().Unix()
	}
	if chk.Scores == nil {
		chk.Scores = scoring.Record{}
	}
	raw, err := json.Marshal(chk.Scores)
	if err != nil {
		return SkillCheck{}, fmt.Errorf("encode scores: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO skill_checks (customer_id, imported_at, scores_json, care_score, color_score,
  art_score, time_score, total_score, total_time, rank, counseling_comment)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		chk.CustomerID, chk.ImportedAt, string(raw), chk.CareScore, chk.ColorScore,
		chk.ArtScore, chk.TimeScore, chk.TotalScore, chk.TotalTime, chk.Rank, chk.Comment)
	if err != nil {
		return SkillCheck{}, fmt.Errorf("insert skill check: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		chk.ID = id
	}
	return chk, nil
}

func scanCheck(row interface{ Scan(...any) error }) (SkillCheck, error) {
	var (
		chk SkillCheck
		raw string
	)
	err := row.Scan(&chk.ID, &chk.CustomerID, &chk.ImportedAt, &raw,
		&chk.CareScore, &chk.ColorScore, &chk.ArtScore, &chk.TimeScore, &chk.TotalScore,
		&chk.TotalTime, &chk.Rank, &chk.Comment)
	if errors.Is(err, sql.ErrNoRows) {
		return SkillCheck{}, ErrNotFound
	}
	if err != nil {
		return SkillCheck{}, err
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &chk.Scores); err != nil {
			return SkillCheck{}, fmt.Errorf("decode scores for check %d: %w", chk.ID, err)
		}
	}
	return chk, nil
}

func (s *SQLStore) ChecksForCustomer(ctx context.Context, customerID int64) ([]SkillCheck, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+checkCols+` FROM skill_checks
WHERE customer_id = $1
ORDER BY imported_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SkillCheck
	for rows.Next() {
		chk, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, chk)
	}
	return out, rows.Err()
}

func (s *SQLStore) LatestCheck(ctx context.Context, customerID int64) (SkillCheck, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT `+checkCols+` FROM skill_checks
WHERE customer_id = $1
ORDER BY imported_at DESC, id DESC
LIMIT 1`, customerID)
	return scanCheck(row)
}

func (s *SQLStore) AddNote(ctx context.Context, n Note) (Note, error) {
	if n.CreatedAt == 0 {
		n.CreatedAt = time.Now().Unix()
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO customer_notes (customer_id, note_content, created_at)
VALUES ($1,$2,$3)`, n.CustomerID, n.Content, n.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		n.ID = id
	}
	return n, nil
}

func (s *SQLStore) NotesForCustomer(ctx context.Context, customerID int64) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, customer_id, note_content, created_at FROM customer_notes
WHERE customer_id = $1
ORDER BY created_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.CustomerID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
