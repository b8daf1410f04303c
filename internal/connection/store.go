package connection

import (
	"database/sql"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// Store persists connection records. State changes go through conditional
// UPDATE/DELETE statements so that concurrent mutations on the same record
// cannot both succeed.
type Store struct {
	DB *sql.DB
}

// NewStore creates a new connection store.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Insert persists a new connection record and fills in its generated id.
func (s *Store) Insert(c *models.Connection) error {
	return s.DB.QueryRow(
		`INSERT INTO connections (requester_id, addressee_id, state, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.RequesterID, c.AddresseeID, string(c.State), c.CreatedAt,
	).Scan(&c.ID)
}

// GetByID loads one connection record.
func (s *Store) GetByID(id int64) (*models.Connection, error) {
	var c models.Connection
	var state string
	err := s.DB.QueryRow(
		`SELECT id, requester_id, addressee_id, state, created_at, responded_at
		 FROM connections WHERE id = $1`, id,
	).Scan(&c.ID, &c.RequesterID, &c.AddresseeID, &state, &c.CreatedAt, &c.RespondedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.State = models.ConnectionState(state)
	return &c, nil
}

// FindByPair loads the record for the unordered pair {a, b}, in either
// direction. Returns ErrNotFound when no record exists.
func (s *Store) FindByPair(a, b int64) (*models.Connection, error) {
	var c models.Connection
	var state string
	err := s.DB.QueryRow(
		`SELECT id, requester_id, addressee_id, state, created_at, responded_at
		 FROM connections
		 WHERE (requester_id = $1 AND addressee_id = $2)
		    OR (requester_id = $2 AND addressee_id = $1)`, a, b,
	).Scan(&c.ID, &c.RequesterID, &c.AddresseeID, &state, &c.CreatedAt, &c.RespondedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.State = models.ConnectionState(state)
	return &c, nil
}

// UpdateState transitions a record from one state to another. The WHERE clause
// pins the expected current state; a concurrent mutation that got there first
// leaves zero rows affected and the caller observes won=false.
func (s *Store) UpdateState(id int64, from, to models.ConnectionState, respondedAt time.Time) (bool, error) {
	res, err := s.DB.Exec(
		`UPDATE connections SET state = $1, responded_at = $2 WHERE id = $3 AND state = $4`,
		string(to), respondedAt, id, string(from),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// DeleteInState deletes a record only while it is still in the expected state.
// Used for cancel (PENDING) and remove (ACCEPTED).
func (s *Store) DeleteInState(id int64, from models.ConnectionState) (bool, error) {
	res, err := s.DB.Exec(
		`DELETE FROM connections WHERE id = $1 AND state = $2`, id, string(from),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ListByUser returns the records the user is a party to, optionally filtered
// by state. Newest first.
func (s *Store) ListByUser(userID int64, state models.ConnectionState) ([]models.Connection, error) {
	query := `SELECT id, requester_id, addressee_id, state, created_at, responded_at
		 FROM connections WHERE (requester_id = $1 OR addressee_id = $1)`
	args := []interface{}{userID}
	if state != "" {
		query += ` AND state = $2`
		args = append(args, string(state))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conns := []models.Connection{}
	for rows.Next() {
		var c models.Connection
		var st string
		if err := rows.Scan(&c.ID, &c.RequesterID, &c.AddresseeID, &st, &c.CreatedAt, &c.RespondedAt); err != nil {
			return nil, err
		}
		c.State = models.ConnectionState(st)
		conns = append(conns, c)
	}
	return conns, rows.Err()
}
