package entity

import (
	"github.com/google/uuid"
)

// IdentityKey names a reachable party: shop level for admins, branch level for
// managers and cashiers. BranchID is uuid.Nil for shop-level identities.
// The zero value is not a valid key. IdentityKey is comparable and used as a map key.
type IdentityKey struct {
	Role     Role      `json:"role"`
	ShopID   uuid.UUID `json:"shop_id"`
	BranchID uuid.UUID `json:"branch_id,omitempty"`
}

// NewIdentityKey builds a key, dropping the branch for shop-level roles.
func NewIdentityKey(role Role, shopID uuid.UUID, branchID uuid.UUID) IdentityKey {
	if !role.IsBranchLevel() {
		branchID = uuid.Nil
	}

	return IdentityKey{Role: role, ShopID: shopID, BranchID: branchID}
}

// HasBranch reports whether the key is branch scoped.
func (k IdentityKey) HasBranch() bool {
	return k.BranchID != uuid.Nil
}

// IsValid checks the role and the branch requirement.
func (k IdentityKey) IsValid() bool {
	if !k.Role.IsValid() || k.ShopID == uuid.Nil {
		return false
	}
	if k.Role.IsBranchLevel() {
		return k.HasBranch()
	}

	return !k.HasBranch()
}

// ShopTopic returns the shop broadcast topic the key belongs to.
func (k IdentityKey) ShopTopic() Topic {
	return ShopTopic(k.ShopID)
}

// BranchTopic returns the branch topic, or an empty topic for shop-level keys.
func (k IdentityKey) BranchTopic() Topic {
	if !k.HasBranch() {
		return ""
	}

	return BranchTopic(k.BranchID)
}

// Topics returns every topic a connection with this key joins.
func (k IdentityKey) Topics() []Topic {
	topics := []Topic{k.ShopTopic()}
	if k.HasBranch() {
		topics = append(topics, k.BranchTopic())
	}

	return topics
}

func (k IdentityKey) String() string {
	if k.HasBranch() {
		return k.Role.String() + "@" + k.ShopID.String() + "/" + k.BranchID.String()
	}

	return k.Role.String() + "@" + k.ShopID.String()
}

// Principal is the pre-validated identity presented by every connection or request.
// For admins ID equals ShopID.
type Principal struct {
	ID         uuid.UUID `json:"id"`
	Role       Role      `json:"role"`
	ShopID     uuid.UUID `json:"shop_id"`
	BranchID   uuid.UUID `json:"branch_id,omitempty"`
	ShopName   string    `json:"shop_name,omitempty"`
	BranchName string    `json:"branch_name,omitempty"`
}

// Key returns the identity key the principal is reachable under.
func (p Principal) Key() IdentityKey {
	return NewIdentityKey(p.Role, p.ShopID, p.BranchID)
}

// Is reports whether the principal is the party (id, role).
func (p Principal) Is(id uuid.UUID, role Role) bool {
	return p.ID == id && p.Role == role
}

// DisplayName is used as the sender name on notifications.
func (p Principal) DisplayName() string {
	switch {
	case p.Role == RoleAdmin && p.ShopName != "":
		return p.ShopName
	case p.BranchName != "":
		return capitalize(p.Role.String()) + " (" + p.BranchName + ")"
	default:
		return capitalize(p.Role.String())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}

	return string(b)
}
