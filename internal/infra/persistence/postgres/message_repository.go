package postgres

import (
	"context"
	"time"

	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/repository"
	"restops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if mapped := constraintError(err, "message"); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	return nil
}

// FindByID retrieves a message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	return repo.first(repo.db.WithContext(ctx), id)
}

// LockByID retrieves a message with a row lock held until the transaction ends.
func (repo *messageRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *messageRepository) first(db *gorm.DB, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := db.Where("id = ?", id).First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// AdvanceStatus is a conditional update: only rows whose status precedes the
// target move, so concurrent or repeated calls can never regress a message.
func (repo *messageRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, to entity.MessageStatus, at time.Time) (bool, error) {
	updates := map[string]any{"status": string(to), "updated_at": at}
	switch to {
	case entity.MessageStatusDelivered:
		updates["delivered_at"] = at
	case entity.MessageStatusRead:
		updates["read_at"] = at
	default:
		return false, errors.Errorf("cannot advance message to %q", to)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ? AND broadcast = ? AND status IN ?", id, false, statusStrings(to.Predecessors())).
		Updates(updates)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to advance message status")
	}

	return result.RowsAffected > 0, nil
}

// UpdateDeletionFlags persists both soft-delete flags.
func (repo *messageRepository) UpdateDeletionFlags(ctx context.Context, message *entity.Message) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", message.ID).
		Updates(map[string]any{
			"deleted_by_sender":    message.DeletedBySender,
			"deleted_by_recipient": message.DeletedByRecipient,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update deletion flags")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// Delete physically removes a message.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MessageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// FindForIdentity lists direct messages the party sent or received and not
// deleted for them, plus broadcasts of its scope.
func (repo *messageRepository) FindForIdentity(ctx context.Context, query repository.IdentityMessageQuery) ([]*entity.Message, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		visibility := "(sender_id = ? AND sender_role = ? AND deleted_by_sender = ?)" +
			" OR (broadcast = ? AND recipient_id = ? AND recipient_role = ? AND deleted_by_recipient = ?)" +
			" OR (broadcast = ? AND broadcast_scope = ?)"
		args := []any{
			query.PartyID, string(query.Role), false,
			false, query.PartyID, string(query.Role), false,
			true, string(entity.BroadcastScopeShop),
		}
		if query.BranchID != nil {
			visibility += " OR (broadcast = ? AND broadcast_scope = ? AND branch_id = ?)"
			args = append(args, true, string(entity.BroadcastScopeBranch), *query.BranchID)
		}

		db = db.Where("shop_id = ?", query.ShopID).Where("("+visibility+")", args...)
		if query.Status != nil {
			db = db.Where("status = ?", string(*query.Status))
		}

		return db
	}

	return repo.page(ctx, scope, query.Limit, query.Skip, "failed to list messages for identity")
}

// FindConversation lists the direct messages exchanged between two parties.
func (repo *messageRepository) FindConversation(ctx context.Context, query repository.ConversationQuery) ([]*entity.Message, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.
			Where("shop_id = ? AND broadcast = ?", query.ShopID, false).
			Where("((sender_id = ? AND sender_role = ? AND recipient_id = ? AND recipient_role = ? AND deleted_by_sender = ?)"+
				" OR (sender_id = ? AND sender_role = ? AND recipient_id = ? AND recipient_role = ? AND deleted_by_recipient = ?))",
				query.PartyID, string(query.PartyRole), query.OtherID, string(query.OtherRole), false,
				query.OtherID, string(query.OtherRole), query.PartyID, string(query.PartyRole), false,
			)
	}

	return repo.page(ctx, scope, query.Limit, query.Skip, "failed to list conversation")
}

// FindBroadcasts lists broadcasts of a shop or of one of its branches.
func (repo *messageRepository) FindBroadcasts(ctx context.Context, query repository.BroadcastQuery) ([]*entity.Message, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("shop_id = ? AND broadcast = ? AND broadcast_scope = ?", query.ShopID, true, string(query.Scope))
		if query.BranchID != nil {
			db = db.Where("branch_id = ?", *query.BranchID)
		}

		return db
	}

	return repo.page(ctx, scope, query.Limit, query.Skip, "failed to list broadcasts")
}

// CountUnread counts direct messages addressed to the party that are still sent.
func (repo *messageRepository) CountUnread(ctx context.Context, recipientID uuid.UUID, role entity.Role, shopID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("recipient_id = ? AND recipient_role = ? AND shop_id = ?", recipientID, string(role), shopID).
		Where("broadcast = ? AND status = ? AND deleted_by_recipient = ?", false, string(entity.MessageStatusSent), false).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count unread messages")
	}

	return count, nil
}

func (repo *messageRepository) page(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit, skip int, details string) ([]*entity.Message, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, details)
	}

	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("sent_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(skip).
		Find(&messageModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, details)
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, total, nil
}

func statusStrings(statuses []entity.MessageStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	message := &entity.Message{
		ID:                 data.ID,
		ShopID:             data.ShopID,
		BranchID:           data.BranchID,
		SenderID:           data.SenderID,
		SenderRole:         entity.Role(data.SenderRole),
		RecipientID:        data.RecipientID,
		Broadcast:          data.Broadcast,
		Content:            data.Content,
		Priority:           entity.Priority(data.Priority),
		Status:             entity.MessageStatus(data.Status),
		SentAt:             data.SentAt,
		DeliveredAt:        data.DeliveredAt,
		ReadAt:             data.ReadAt,
		DeletedBySender:    data.DeletedBySender,
		DeletedByRecipient: data.DeletedByRecipient,
	}
	if data.RecipientRole != nil {
		message.RecipientRole = entity.Role(*data.RecipientRole)
	}
	if data.BroadcastScope != nil {
		message.BroadcastScope = entity.BroadcastScope(*data.BroadcastScope)
	}
	if data.Attachment != nil {
		message.Attachment = *data.Attachment
	}

	return message
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:                 data.ID,
		ShopID:             data.ShopID,
		BranchID:           data.BranchID,
		SenderID:           data.SenderID,
		SenderRole:         string(data.SenderRole),
		RecipientID:        data.RecipientID,
		RecipientRole:      optionalString(string(data.RecipientRole)),
		Broadcast:          data.Broadcast,
		BroadcastScope:     optionalString(string(data.BroadcastScope)),
		Content:            data.Content,
		Attachment:         optionalString(data.Attachment),
		Priority:           string(data.Priority),
		Status:             string(data.Status),
		SentAt:             data.SentAt,
		DeliveredAt:        data.DeliveredAt,
		ReadAt:             data.ReadAt,
		DeletedBySender:    data.DeletedBySender,
		DeletedByRecipient: data.DeletedByRecipient,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
