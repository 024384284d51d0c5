package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
)

// Error variables
var (
	ErrSelfFriendRequest        = errors.New("cannot send friend request to yourself")
	ErrReceiverNotFound         = errors.New("receiver not found or deleted")
	ErrFriendRequestAlreadySent = errors.New("friend request already sent")
	ErrFriendRequestNotFound    = errors.New("friend request not found")
	ErrSenderCannotAccept       = errors.New("you are the sender and cannot accept this request")
)

// RequestStatusError reports a response attempt on a request that already
// reached a terminal status.
type RequestStatusError struct {
	Status string
	Action string
}

func (e *RequestStatusError) Error() string {
	return fmt.Sprintf("friend request status is %q and cannot be %sed", e.Status, e.Action)
}

// FriendUserReader defines the user directory reads needed by the friend
// workflow.
type FriendUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]models.UserSummaryDB, error)
}

// FriendUserWriter defines the friend-list mutation.
type FriendUserWriter interface {
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error
}

// FriendRequestReader defines friend request read operations.
type FriendRequestReader interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (*models.FriendRequestDB, error)
	GetPendingByPair(ctx context.Context, senderID, receiverID uuid.UUID) (*models.FriendRequestDB, error)
	ListPendingForReceiver(ctx context.Context, receiverID uuid.UUID) ([]models.FriendRequestDB, error)
}

// FriendRequestWriter defines friend request write operations.
type FriendRequestWriter interface {
	Save(ctx context.Context, senderID, receiverID uuid.UUID, senderUsername string, senderProfilePicture *string) (*models.FriendRequestDB, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status string) error
}

// FriendService handles the friend request workflow: send, respond, and
// aggregate listing.
type FriendService struct {
	userReader FriendUserReader
	userWriter FriendUserWriter
	reqReader  FriendRequestReader
	reqWriter  FriendRequestWriter
}

// NewFriendService creates a new FriendService instance.
func NewFriendService(userReader FriendUserReader, userWriter FriendUserWriter, reqReader FriendRequestReader, reqWriter FriendRequestWriter) *FriendService {
	return &FriendService{
		userReader: userReader,
		userWriter: userWriter,
		reqReader:  reqReader,
		reqWriter:  reqWriter,
	}
}

// SendRequest creates a pending friend request snapshotting the sender's
// current username and profile picture.
func (svc *FriendService) SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*models.FriendRequestDB, error) {
	if senderID == receiverID {
		return nil, ErrSelfFriendRequest
	}

	sender, err := svc.userReader.GetByID(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to get sender", "senderID", senderID, "err", err)
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserDoesNotExist
	}

	receiver, err := svc.userReader.GetByID(ctx, receiverID)
	if err != nil {
		logger.Log.Errorw("failed to get receiver", "receiverID", receiverID, "err", err)
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	existing, err := svc.reqReader.GetPendingByPair(ctx, senderID, receiverID)
	if err != nil {
		logger.Log.Errorw("failed to check pending request", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrFriendRequestAlreadySent
	}

	req, err := svc.reqWriter.Save(ctx, senderID, receiverID, sender.Username, sender.ProfilePicture)
	if err != nil {
		logger.Log.Errorw("failed to save friend request", "err", err)
		return nil, err
	}

	return req, nil
}

// RespondToRequest applies an accept or reject to a pending request addressed
// to the responder. A sender rejecting their own pending request cancels it.
// On accept both users' friend lists receive each other's ID; the duplicate
// add is a no-op.
func (svc *FriendService) RespondToRequest(ctx context.Context, responderID, requestID uuid.UUID, action string) (*models.FriendRequestDB, error) {
	req, err := svc.reqReader.GetByID(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to get friend request", "requestID", requestID, "err", err)
		return nil, err
	}
	if req == nil {
		return nil, ErrFriendRequestNotFound
	}

	if req.ReceiverID == responderID && req.Status == models.FriendRequestPending {
		status := models.FriendRequestRejected
		if action == models.FriendActionAccept {
			status = models.FriendRequestAccepted
		}
		if err := svc.reqWriter.UpdateStatus(ctx, requestID, status); err != nil {
			logger.Log.Errorw("failed to update request status", "requestID", requestID, "err", err)
			return nil, err
		}

		if action == models.FriendActionAccept {
			if err := svc.userWriter.AddFriend(ctx, responderID, req.SenderID); err != nil {
				logger.Log.Errorw("failed to add friend", "err", err)
				return nil, err
			}
			if err := svc.userWriter.AddFriend(ctx, req.SenderID, responderID); err != nil {
				logger.Log.Errorw("failed to add friend", "err", err)
				return nil, err
			}
		}

		req.Status = status
		return req, nil
	}

	if req.SenderID == responderID {
		if req.Status == models.FriendRequestPending && action == models.FriendActionReject {
			if err := svc.reqWriter.UpdateStatus(ctx, requestID, models.FriendRequestCanceled); err != nil {
				logger.Log.Errorw("failed to cancel request", "requestID", requestID, "err", err)
				return nil, err
			}
			req.Status = models.FriendRequestCanceled
			return req, nil
		}
		return nil, ErrSenderCannotAccept
	}

	if req.Status != models.FriendRequestPending {
		return nil, &RequestStatusError{Status: req.Status, Action: action}
	}

	return nil, ErrFriendRequestNotFound
}

// GetFriendsAndRequests returns the resolved friend list and the pending
// requests addressed to the user, as two collections.
func (svc *FriendService) GetFriendsAndRequests(ctx context.Context, userID uuid.UUID) ([]models.UserSummaryDB, []models.FriendRequestDB, error) {
	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserDoesNotExist
	}

	friendIDs, err := svc.userReader.ListFriendIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list friend IDs", "userID", userID, "err", err)
		return nil, nil, err
	}

	friends, err := svc.userReader.FindManyByIDs(ctx, friendIDs)
	if err != nil {
		logger.Log.Errorw("failed to resolve friends", "userID", userID, "err", err)
		return nil, nil, err
	}

	pending, err := svc.reqReader.ListPendingForReceiver(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list pending requests", "userID", userID, "err", err)
		return nil, nil, err
	}

	return friends, pending, nil
}
