package models

import (
	"time"

	"github.com/google/uuid"
)

// Friend request statuses. A request is mutated exactly once: pending moves to
// accepted or rejected by the receiver, or to canceled by the sender.
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
	FriendRequestCanceled = "canceled"
)

// Friend request response actions.
const (
	FriendActionAccept = "accept"
	FriendActionReject = "reject"
)

// FriendRequestDB represents a friend request row in the database.
// Sender username and profile picture are snapshots captured at creation
// time and are not kept in sync with the sender's profile.
type FriendRequestDB struct {
	RequestID            uuid.UUID `json:"request_id" db:"request_id"`
	SenderID             uuid.UUID `json:"sender_id" db:"sender_id"`
	ReceiverID           uuid.UUID `json:"receiver_id" db:"receiver_id"`
	SenderUsername       string    `json:"sender_username" db:"sender_username"`
	SenderProfilePicture *string   `json:"sender_profile_picture,omitempty" db:"sender_profile_picture"`
	SendDate             time.Time `json:"send_date" db:"send_date"`
	Status               string    `json:"status" db:"status"`
}
