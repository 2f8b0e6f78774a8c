package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
)

// StoredMessage is a contact message with its delivery status.
type StoredMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

// SaveMessage inserts m as pending.
func (s *Store) SaveMessage(ctx context.Context, m contact.Message) error {
	if m.ID == "" {
		return fmt.Errorf("message id is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, name, email, subject, message, status, received_at_unixms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.Submission.Name,
		m.Submission.Email,
		m.Submission.Subject,
		m.Submission.Message,
		contact.StatusPending,
		toUnixMillis(m.ReceivedAt),
	)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// MarkDelivery records the relay outcome for a message.
func (s *Store) MarkDelivery(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE messages SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("mark delivery: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark delivery: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetMessage loads one message by id.
func (s *Store) GetMessage(ctx context.Context, id string) (StoredMessage, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, subject, message, status, received_at_unixms
		 FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredMessage{}, fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return StoredMessage{}, fmt.Errorf("get message: %w", err)
	}
	return m, nil
}

// ListMessages returns the newest messages first, at most limit of them.
func (s *Store) ListMessages(ctx context.Context, limit int) ([]StoredMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, status, received_at_unixms
		 FROM messages
		 ORDER BY received_at_unixms DESC, id
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := []StoredMessage{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (StoredMessage, error) {
	var m StoredMessage
	var received int64
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &received); err != nil {
		return StoredMessage{}, err
	}
	m.ReceivedAt = fromUnixMillis(received)
	return m, nil
}
