package entity

import "github.com/google/uuid"

// StaffMember is a directory entry resolved for a (role, id) pair.
// Admin entries are shops: their ID equals ShopID.
type StaffMember struct {
	ID       uuid.UUID
	Role     Role
	ShopID   uuid.UUID
	BranchID uuid.UUID
	Name     string
}

// Key returns the identity key the staff member is reachable under.
func (s *StaffMember) Key() IdentityKey {
	return NewIdentityKey(s.Role, s.ShopID, s.BranchID)
}

// Branch is a directory branch that belongs to a shop.
type Branch struct {
	ID     uuid.UUID
	ShopID uuid.UUID
	Name   string
}

// OnlineCounts is a per-shop presence snapshot.
type OnlineCounts struct {
	Admin    int `json:"admin"`
	Managers int `json:"managers"`
	Cashiers int `json:"cashiers"`
}

// Total returns the number of online identities.
func (c OnlineCounts) Total() int {
	return c.Admin + c.Managers + c.Cashiers
}
