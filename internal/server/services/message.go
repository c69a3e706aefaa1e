package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shivtchandra/CivicWatch/internal/common"
	"github.com/shivtchandra/CivicWatch/internal/dbx"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/repomanager"
)

// MessageService implements two-party conversations. Every message read or
// write verifies the requester is a conversation participant.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// EnsureConversation returns the conversation between the requester and
// otherID, creating it when absent. The other user must exist.
func (s *MessageService) EnsureConversation(ctx context.Context, requesterID, otherID string) (*models.Conversation, error) {
	otherID = strings.TrimSpace(otherID)
	if otherID == "" {
		return nil, common.NewValidationError("userId required")
	}
	if otherID == requesterID {
		return nil, common.NewValidationError("cannot message yourself")
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, otherID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	conv, err := s.repomanager.Conversations(s.db).FindOrCreate(ctx, requesterID, otherID)
	if err != nil {
		return nil, common.ErrInternal
	}
	return conv, nil
}

// ListConversations returns all conversations the requester participates in,
// each annotated with the other party's id and name.
func (s *MessageService) ListConversations(ctx context.Context, requesterID string) ([]*models.Conversation, error) {
	list, err := s.repomanager.Conversations(s.db).ListForUser(ctx, requesterID)
	if err != nil {
		return nil, common.ErrInternal
	}
	return list, nil
}

// ListMessages returns the conversation history oldest first and marks the
// requester's unread messages as read. Non-participants get ErrForbidden.
// The read and the mark-read happen in one transaction.
func (s *MessageService) ListMessages(ctx context.Context, conversationID, requesterID string) ([]*models.Message, error) {
	var msgs []*models.Message

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Conversations(tx)

		conv, err := repo.GetByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if !conv.Participant(requesterID) {
			return common.ErrForbidden
		}

		if msgs, err = repo.ListMessages(ctx, conversationID); err != nil {
			return err
		}
		return repo.MarkRead(ctx, conversationID, requesterID)
	})
	if err != nil {
		return nil, mapMessageErr(err)
	}
	return msgs, nil
}

// Send appends a message to the conversation. The sender must be a
// participant; the recipient is always the other party.
func (s *MessageService) Send(ctx context.Context, conversationID, senderID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.NewValidationError("content required")
	}

	var msg *models.Message

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Conversations(tx)

		conv, err := repo.GetByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if !conv.Participant(senderID) {
			return common.ErrForbidden
		}

		recipientID := conv.User1ID
		if recipientID == senderID {
			recipientID = conv.User2ID
		}

		msg, err = repo.CreateMessage(ctx, &models.Message{
			ConversationID: conversationID,
			SenderID:       senderID,
			RecipientID:    recipientID,
			Content:        content,
		})
		return err
	})
	if err != nil {
		return nil, mapMessageErr(err)
	}
	return msg, nil
}

// mapMessageErr keeps caller-facing sentinels intact and hides everything
// else behind ErrInternal.
func mapMessageErr(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.ErrNotFound
	case errors.Is(err, common.ErrForbidden):
		return common.ErrForbidden
	default:
		return common.ErrInternal
	}
}
