// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"restops/config"
	deliverycontext "restops/internal/delivery/context"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/repository"
	"restops/internal/infra/metrics"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MessageStoreParams holds dependencies for the message store, injected by Fx.
type MessageStoreParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MessageRepo repository.MessageRepository
	Directory   repository.StaffDirectoryRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// messageStore implements the MessageStore interface.
type messageStore struct {
	txManager   repository.TransactionManager
	messageRepo repository.MessageRepository
	directory   repository.StaffDirectoryRepository
	limits      config.MessagingConfig
	logger      *slog.Logger
	now         func() time.Time
}

// NewMessageStore is the constructor for messageStore.
func NewMessageStore(params MessageStoreParams) usecase.MessageStore {
	limits := config.Defaults().Messaging
	if params.Config != nil && params.Config.Messaging != nil {
		limits = params.Config.Messaging
	}

	return &messageStore{
		txManager:   params.TxManager,
		messageRepo: params.MessageRepo,
		directory:   params.Directory,
		limits:      *limits,
		logger:      params.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *messageStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create validates the draft and persists it with status sent.
func (s *messageStore) Create(ctx context.Context, draft entity.MessageDraft) (*entity.Message, error) {
	if err := draft.Validate(s.limits.MaxContentLength); err != nil {
		return nil, err
	}

	message := entity.NewMessage(draft, s.now())
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	metrics.MessagesSent.WithLabelValues(messageKind(message)).Inc()
	s.log(ctx).Debug("Message stored",
		slog.String("message_id", message.ID.String()),
		slog.String("kind", messageKind(message)),
	)

	return message, nil
}

// MarkDelivered advances message to delivered through a conditional update, so
// a message already delivered or read is left untouched.
func (s *messageStore) MarkDelivered(ctx context.Context, message *entity.Message) error {
	if message.Broadcast {
		return nil
	}

	at := s.now()
	changed, err := s.messageRepo.AdvanceStatus(ctx, message.ID, entity.MessageStatusDelivered, at)
	if err != nil {
		return errors.Wrap(err, "failed to mark message delivered")
	}
	if changed {
		message.MarkDelivered(at)
	}

	return nil
}

// MarkRead advances the message to read. Repeating it keeps the first readAt.
func (s *messageStore) MarkRead(ctx context.Context, messageID uuid.UUID, requester entity.Principal) (*entity.Message, error) {
	message, err := s.findMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if !message.IsRecipient(requester.ID, requester.Role) {
		return nil, domainerrors.ErrNotMessageRecipient
	}
	if message.Status == entity.MessageStatusRead {
		return message, nil
	}

	at := s.now()
	changed, err := s.messageRepo.AdvanceStatus(ctx, message.ID, entity.MessageStatusRead, at)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark message read")
	}
	if changed {
		message.MarkRead(at)

		return message, nil
	}

	// Another request won the transition; return what it stored.
	return s.findMessage(ctx, messageID)
}

// SoftDelete sets the requester's flag and hard-deletes once both parties flagged it.
func (s *messageStore) SoftDelete(ctx context.Context, messageID uuid.UUID, requester entity.Principal) (bool, error) {
	var hardDeleted bool

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewMessageRepository()

		message, err := repo.LockByID(ctx, messageID)
		if err != nil {
			if errors.Is(err, repository.ErrMessageNotFound) {
				return domainerrors.ErrMessageNotFound
			}

			return errors.Wrap(err, "failed to lock message")
		}
		if message.Broadcast {
			return domainerrors.ErrForbidden.WithDetails("broadcasts cannot be deleted")
		}
		if err := message.FlagDeleted(requester.ID, requester.Role); err != nil {
			return err
		}

		if message.FullyDeleted() {
			hardDeleted = true

			return repo.Delete(ctx, message.ID)
		}

		return repo.UpdateDeletionFlags(ctx, message)
	})
	if err != nil {
		return false, err
	}

	s.log(ctx).Debug("Message soft-deleted",
		slog.String("message_id", messageID.String()),
		slog.Bool("hard_deleted", hardDeleted),
	)

	return hardDeleted, nil
}

// ListForIdentity lists the requester's messages, most recent first.
func (s *messageStore) ListForIdentity(ctx context.Context, requester entity.Principal, filter entity.MessageFilter) (*entity.MessagePage, error) {
	page := s.normalizePage(filter.Page, s.limits.DefaultPageSize)

	query := repository.IdentityMessageQuery{
		PartyID: requester.ID,
		Role:    requester.Role,
		ShopID:  requester.ShopID,
		Status:  filter.Status,
		Limit:   page.Limit,
		Skip:    page.Skip,
	}
	if key := requester.Key(); key.HasBranch() {
		query.BranchID = &key.BranchID
	}

	messages, total, err := s.messageRepo.FindForIdentity(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return &entity.MessagePage{Messages: messages, Total: total, Limit: page.Limit, Skip: page.Skip}, nil
}

// Conversation lists the direct messages between the requester and another party.
func (s *messageStore) Conversation(ctx context.Context, requester entity.Principal, otherID uuid.UUID, otherRole entity.Role, page entity.Page) (*entity.MessagePage, error) {
	if !otherRole.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	page = s.normalizePage(page, s.limits.DefaultPageSize)

	messages, total, err := s.messageRepo.FindConversation(ctx, repository.ConversationQuery{
		ShopID:    requester.ShopID,
		PartyID:   requester.ID,
		PartyRole: requester.Role,
		OtherID:   otherID,
		OtherRole: otherRole,
		Limit:     page.Limit,
		Skip:      page.Skip,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return &entity.MessagePage{Messages: messages, Total: total, Limit: page.Limit, Skip: page.Skip}, nil
}

// ListBranchBroadcasts lists broadcasts of a branch. Branch staff may only read
// their own branch; admins any branch of their shop.
func (s *messageStore) ListBranchBroadcasts(ctx context.Context, requester entity.Principal, branchID uuid.UUID, page entity.Page) (*entity.MessagePage, error) {
	if err := authorizeBranch(ctx, s.directory, requester, branchID, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	return s.listBroadcasts(ctx, repository.BroadcastQuery{
		ShopID:   requester.ShopID,
		BranchID: &branchID,
		Scope:    entity.BroadcastScopeBranch,
	}, page)
}

// ListShopBroadcasts lists broadcasts of the requester's shop.
func (s *messageStore) ListShopBroadcasts(ctx context.Context, requester entity.Principal, page entity.Page) (*entity.MessagePage, error) {
	return s.listBroadcasts(ctx, repository.BroadcastQuery{
		ShopID: requester.ShopID,
		Scope:  entity.BroadcastScopeShop,
	}, page)
}

func (s *messageStore) listBroadcasts(ctx context.Context, query repository.BroadcastQuery, page entity.Page) (*entity.MessagePage, error) {
	page = s.normalizePage(page, s.limits.BroadcastPageSize)
	query.Limit, query.Skip = page.Limit, page.Skip

	messages, total, err := s.messageRepo.FindBroadcasts(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broadcasts")
	}

	return &entity.MessagePage{Messages: messages, Total: total, Limit: page.Limit, Skip: page.Skip}, nil
}

// CountUnread counts direct messages to the requester still in status sent.
func (s *messageStore) CountUnread(ctx context.Context, requester entity.Principal) (int64, error) {
	count, err := s.messageRepo.CountUnread(ctx, requester.ID, requester.Role, requester.ShopID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

func (s *messageStore) findMessage(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return message, nil
}

func (s *messageStore) normalizePage(page entity.Page, defaultLimit int) entity.Page {
	if page.Limit <= 0 {
		page.Limit = defaultLimit
	}
	if s.limits.MaxPageSize > 0 && page.Limit > s.limits.MaxPageSize {
		page.Limit = s.limits.MaxPageSize
	}
	if page.Skip < 0 {
		page.Skip = 0
	}

	return page
}

func messageKind(m *entity.Message) string {
	if m.Broadcast {
		return string(m.BroadcastScope)
	}

	return "direct"
}

// authorizeBranch checks that requester may act on branchID: branch staff only
// on their own branch, admins on any existing branch of their shop.
func authorizeBranch(ctx context.Context, directory repository.StaffDirectoryRepository, requester entity.Principal, branchID uuid.UUID, denied *domainerrors.BaseError) error {
	if branchID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("branch id is required")
	}

	switch requester.Role {
	case entity.RoleAdmin:
		if _, err := directory.FindBranch(ctx, requester.ShopID, branchID); err != nil {
			if errors.Is(err, repository.ErrBranchNotFound) {
				return domainerrors.ErrBranchNotFound
			}

			return errors.Wrap(err, "failed to find branch")
		}

		return nil
	case entity.RoleManager, entity.RoleCashier:
		if requester.BranchID != branchID {
			return denied
		}

		return nil
	default:
		return denied
	}
}
