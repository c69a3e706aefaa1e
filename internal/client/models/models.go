// Package models defines the client-side view of API payloads.
package models

import "time"

// Profile is the authenticated user's own profile as returned by /api/me.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Owner is the public summary of a report's author. Nil on orphaned reports.
type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// Report mirrors the server's report shape.
type Report struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Location           string    `json:"location,omitempty"`
	City               string    `json:"city,omitempty"`
	Lat                *float64  `json:"lat,omitempty"`
	Lng                *float64  `json:"lng,omitempty"`
	ImageKey           string    `json:"imageKey,omitempty"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	ContactInfo        string    `json:"contactInfo,omitempty"`
	GovernmentResponse string    `json:"governmentResponse,omitempty"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
	Owner              *Owner    `json:"user,omitempty"`
}

// OwnerName returns the author's display name, or "unknown reporter" when the
// owning user no longer exists.
func (r *Report) OwnerName() string {
	if r.Owner == nil || r.Owner.Name == "" {
		return "unknown reporter"
	}
	return r.Owner.Name
}

// Conversation is a two-party thread as listed by /api/conversations.
type Conversation struct {
	ID            string    `json:"id"`
	User1ID       string    `json:"user1Id"`
	User2ID       string    `json:"user2Id"`
	CreatedAt     time.Time `json:"createdAt"`
	OtherUserID   string    `json:"otherUserId,omitempty"`
	OtherUserName string    `json:"otherUserName,omitempty"`
}

// Message is a single conversation message.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversationId"`
	SenderID       string     `json:"senderId"`
	RecipientID    string     `json:"recipientId"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"createdAt"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
}
