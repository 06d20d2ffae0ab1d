package minsite

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// EnquiryStore is the bundled enquiry sink: a SQLite-backed outbox that
// records accepted form submissions for the sales team to pick up.
type EnquiryStore struct {
	db *sql.DB
}

// StoredEnquiry is an outbox row.
type StoredEnquiry struct {
	ID        int64
	CreatedAt string
	Enquiry
}

// NewEnquiryStore opens (or creates) the SQLite database at path, ensures
// the data directory exists, and runs schema migrations.
func NewEnquiryStore(path string) (*EnquiryStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &EnquiryStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *EnquiryStore) Close() error {
	return s.db.Close()
}

func (s *EnquiryStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS enquiries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    dial_code TEXT NOT NULL DEFAULT '',
    contact TEXT NOT NULL DEFAULT '',
    full_contact TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    product TEXT NOT NULL DEFAULT '',
    quantity TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

// Submit records an accepted submission in the outbox. EnquiryStore is the
// default EnquirySink.
func (s *EnquiryStore) Submit(e Enquiry) error {
	_, err := s.db.Exec(`INSERT INTO enquiries
		(created_at, kind, name, company, country, dial_code, contact, full_contact, email, product, quantity, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		e.Kind, e.Name, e.Company, e.Country, e.DialCode, e.Contact, e.FullContact,
		e.Email, e.Product, e.Quantity, e.Message)
	return err
}

// ListEnquiries returns outbox rows newest first.
func (s *EnquiryStore) ListEnquiries() ([]StoredEnquiry, error) {
	rows, err := s.db.Query(`SELECT id, created_at, kind, name, company, country, dial_code, contact, full_contact, email, product, quantity, message
		FROM enquiries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredEnquiry
	for rows.Next() {
		var se StoredEnquiry
		if err := rows.Scan(&se.ID, &se.CreatedAt, &se.Kind, &se.Name, &se.Company,
			&se.Country, &se.DialCode, &se.Contact, &se.FullContact,
			&se.Email, &se.Product, &se.Quantity, &se.Message); err != nil {
			return nil, err
		}
		out = append(out, se)
	}
	return out, rows.Err()
}
