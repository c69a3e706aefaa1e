package conversations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shivtchandra/CivicWatch/internal/common"
	"github.com/shivtchandra/CivicWatch/internal/dbx"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// normalizePair orders two user IDs lexically so each pair maps to a single
// conversation row.
func normalizePair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

func (r *PostgresRepository) FindOrCreate(ctx context.Context, a, b string) (*models.Conversation, error) {
	user1, user2 := normalizePair(a, b)

	query :=
		`INSERT INTO conversations (user1_id, user2_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user1_id, user2_id) DO UPDATE SET user1_id = EXCLUDED.user1_id
		 RETURNING id, user1_id, user2_id, created_at
		 `

	conv := &models.Conversation{}
	err := r.db.QueryRowContext(ctx, query, user1, user2).
		Scan(&conv.ID, &conv.User1ID, &conv.User2ID, &conv.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return conv, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	query :=
		`SELECT id, user1_id, user2_id, created_at FROM conversations
		 WHERE id = $1
		 `

	conv := &models.Conversation{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&conv.ID, &conv.User1ID, &conv.User2ID, &conv.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return conv, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	query :=
		`SELECT c.id, c.user1_id, c.user2_id, c.created_at, u.name
		 FROM conversations c
		 LEFT JOIN users u
		   ON u.id = CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END
		 WHERE c.user1_id = $1 OR c.user2_id = $1
		 ORDER BY c.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Conversation
	for rows.Next() {
		conv := &models.Conversation{}
		var otherName sql.NullString
		if err := rows.Scan(&conv.ID, &conv.User1ID, &conv.User2ID, &conv.CreatedAt, &otherName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if conv.User1ID == userID {
			conv.OtherUserID = conv.User2ID
		} else {
			conv.OtherUserID = conv.User1ID
		}
		conv.OtherUserName = otherName.String
		result = append(result, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error) {
	query :=
		`SELECT id, conversation_id, sender_id, recipient_id, content, created_at, read_at
		 FROM messages
		 WHERE conversation_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.RecipientID,
			&msg.Content, &msg.CreatedAt, &msg.ReadAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (conversation_id, sender_id, recipient_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		msg.ConversationID, msg.SenderID, msg.RecipientID, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, conversationID, userID string) error {
	query :=
		`UPDATE messages SET read_at = now()
		 WHERE conversation_id = $1 AND recipient_id = $2 AND read_at IS NULL
		 `

	if _, err := r.db.ExecContext(ctx, query, conversationID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
