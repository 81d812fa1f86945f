package service

import (
	"time"

	"restops/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of a staff access token.
type Claims struct {
	Role       string `json:"role"`
	ShopID     string `json:"shopId"`
	ShopName   string `json:"shopName,omitempty"`
	BranchID   string `json:"branchId,omitempty"`
	BranchName string `json:"branchName,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the external auth collaborator.
type TokenService interface {
	// ValidateToken checks a token string and returns the principal it names.
	ValidateToken(tokenString string) (*entity.Principal, error)

	// IssueAccessToken signs a token for a principal. Used by tooling and tests.
	IssueAccessToken(principal entity.Principal, ttl time.Duration) (string, error)
}
