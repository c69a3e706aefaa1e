package conversations

import (
	"context"

	"github.com/shivtchandra/CivicWatch/internal/server/models"
)

type Repository interface {
	// FindOrCreate returns the conversation for the (a, b) user pair, creating
	// it when absent. The pair is normalized so argument order does not matter.
	FindOrCreate(ctx context.Context, a, b string) (*models.Conversation, error)
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	// ListForUser returns all conversations userID participates in, with the
	// other party's name joined in.
	ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error)
	CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error)
	// MarkRead stamps read_at on all unread messages addressed to userID
	// within the conversation.
	MarkRead(ctx context.Context, conversationID, userID string) error
}
