package postgres

import (
	"context"
	"testing"
	"time"

	"restops/internal/domain/entity"
	"restops/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder collects the statements a dry-run session builds.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) record(db *gorm.DB) {
	r.statements = append(r.statements, db.Dialector.Explain(db.Statement.SQL.String(), db.Statement.Vars...))
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements)

	return r.statements[len(r.statements)-1]
}

// createDryRunRepository builds statements through the postgres dialector without a server.
func createDryRunRepository(t *testing.T) (repository.MessageRepository, *sqlRecorder) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=restops dbname=restops sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	rec := &sqlRecorder{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("restops:record_query", rec.record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("restops:record_update", rec.record))

	return NewMessageRepository(db), rec
}

func TestMessageRepository_FindForIdentity(t *testing.T) {
	shopID, branchID, partyID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name     string
		query    repository.IdentityMessageQuery
		where    []string
		excludes []string
	}{
		{
			name: "cashier sees own sends, undeleted receipts and both broadcast scopes",
			query: repository.IdentityMessageQuery{
				PartyID: partyID, Role: entity.RoleCashier, ShopID: shopID, BranchID: &branchID, Limit: 10,
			},
			where: []string{
				"shop_id = '" + shopID.String() + "'",
				"(sender_id = '" + partyID.String() + "' AND sender_role = 'cashier' AND deleted_by_sender = false)",
				"(broadcast = false AND recipient_id = '" + partyID.String() + "' AND recipient_role = 'cashier' AND deleted_by_recipient = false)",
				"(broadcast = true AND broadcast_scope = 'shop')",
				"(broadcast = true AND broadcast_scope = 'branch' AND branch_id = '" + branchID.String() + "')",
			},
		},
		{
			name: "admin without branch sees no branch broadcasts",
			query: repository.IdentityMessageQuery{
				PartyID: partyID, Role: entity.RoleAdmin, ShopID: shopID, Limit: 10,
			},
			where:    []string{"(broadcast = true AND broadcast_scope = 'shop')"},
			excludes: []string{"'branch'"},
		},
		{
			name: "status filter",
			query: repository.IdentityMessageQuery{
				PartyID: partyID, Role: entity.RoleManager, ShopID: shopID, BranchID: &branchID,
				Status: ptr(entity.MessageStatusDelivered), Limit: 10,
			},
			where: []string{"status = 'delivered'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rec := createDryRunRepository(t)

			_, _, err := repo.FindForIdentity(context.Background(), tt.query)
			require.NoError(t, err)
			require.Len(t, rec.statements, 2)

			count, page := rec.statements[0], rec.statements[1]
			assert.Contains(t, count, "SELECT count(*)")
			for _, sql := range rec.statements {
				for _, fragment := range tt.where {
					assert.Contains(t, sql, fragment)
				}
				for _, fragment := range tt.excludes {
					assert.NotContains(t, sql, fragment)
				}
			}
			assert.Contains(t, page, "ORDER BY sent_at DESC,id DESC LIMIT 10")
		})
	}
}

func TestMessageRepository_FindForIdentity_SenderDeletionKeepsRecipientCopy(t *testing.T) {
	repo, rec := createDryRunRepository(t)
	recipientID := uuid.New()

	_, _, err := repo.FindForIdentity(context.Background(), repository.IdentityMessageQuery{
		PartyID: recipientID, Role: entity.RoleManager, ShopID: uuid.New(), Limit: 10,
	})
	require.NoError(t, err)

	// The recipient branch only looks at the recipient flag.
	assert.Contains(t, rec.last(t),
		"OR (broadcast = false AND recipient_id = '"+recipientID.String()+"' AND recipient_role = 'manager' AND deleted_by_recipient = false) OR")
}

func TestMessageRepository_AdvanceStatus(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		to        entity.MessageStatus
		where     string
		stamp     string
		untouched string
	}{
		{
			name:      "delivered only from sent",
			to:        entity.MessageStatusDelivered,
			where:     "AND broadcast = false AND status IN ('sent')",
			stamp:     `"delivered_at"=`,
			untouched: `"read_at"`,
		},
		{
			name:      "read from sent or delivered",
			to:        entity.MessageStatusRead,
			where:     "AND broadcast = false AND status IN ('sent','delivered')",
			stamp:     `"read_at"=`,
			untouched: `"delivered_at"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rec := createDryRunRepository(t)
			id := uuid.New()

			_, err := repo.AdvanceStatus(context.Background(), id, tt.to, at)
			require.NoError(t, err)

			sql := rec.last(t)
			assert.Contains(t, sql, `UPDATE "messages" SET`)
			assert.Contains(t, sql, "WHERE id = '"+id.String()+"' "+tt.where)
			assert.Contains(t, sql, `"status"='`+string(tt.to)+`'`)
			assert.Contains(t, sql, tt.stamp)
			assert.NotContains(t, sql, tt.untouched)
		})
	}
}

func TestMessageRepository_AdvanceStatus_RejectsSent(t *testing.T) {
	repo, rec := createDryRunRepository(t)

	changed, err := repo.AdvanceStatus(context.Background(), uuid.New(), entity.MessageStatusSent, time.Now())
	require.Error(t, err)
	assert.False(t, changed)
	assert.Empty(t, rec.statements)
}

func TestMessageRepository_CountUnread(t *testing.T) {
	repo, rec := createDryRunRepository(t)
	recipientID, shopID := uuid.New(), uuid.New()

	_, err := repo.CountUnread(context.Background(), recipientID, entity.RoleCashier, shopID)
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, "SELECT count(*)")
	assert.Contains(t, sql, "recipient_id = '"+recipientID.String()+"' AND recipient_role = 'cashier' AND shop_id = '"+shopID.String()+"'")
	assert.Contains(t, sql, "broadcast = false AND status = 'sent' AND deleted_by_recipient = false")
}

func ptr[T any](v T) *T {
	return &v
}
