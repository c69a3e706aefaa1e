package models

import "time"

// Conversation is a two-party message thread. User1ID/User2ID are stored in
// lexical order so each pair of users has at most one conversation.
type Conversation struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1Id"`
	User2ID   string    `json:"user2Id"`
	CreatedAt time.Time `json:"createdAt"`

	// OtherUserID/OtherUserName are filled relative to the requesting user
	// when listing conversations.
	OtherUserID   string `json:"otherUserId,omitempty"`
	OtherUserName string `json:"otherUserName,omitempty"`
}

// Participant reports whether userID is one of the two conversation parties.
func (c *Conversation) Participant(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// Message is a single message inside a conversation.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversationId"`
	SenderID       string     `json:"senderId"`
	RecipientID    string     `json:"recipientId"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"createdAt"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
}
