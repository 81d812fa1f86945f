// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"restops/config"
	"restops/internal/domain/entity"
	"restops/internal/domain/service"
	"restops/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		now:          time.Now,
	}, nil
}

// ValidateToken parses an HS256 access token and maps its claims to a principal.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Principal, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return principalFromClaims(claims)
}

// IssueAccessToken signs a token for the principal.
func (s *jwtService) IssueAccessToken(principal entity.Principal, ttl time.Duration) (string, error) {
	now := s.now()
	claims := service.Claims{
		Role:       principal.Role.String(),
		ShopID:     principal.ShopID.String(),
		ShopName:   principal.ShopName,
		BranchName: principal.BranchName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if principal.BranchID != uuid.Nil {
		claims.BranchID = principal.BranchID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func principalFromClaims(claims *service.Claims) (*entity.Principal, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, errors.Errorf("invalid role claim %q", claims.Role)
	}

	shopID, err := uuid.Parse(claims.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid shopId claim")
	}

	principal := &entity.Principal{
		ID:         id,
		Role:       role,
		ShopID:     shopID,
		ShopName:   claims.ShopName,
		BranchName: claims.BranchName,
	}

	if role.IsBranchLevel() {
		branchID, err := uuid.Parse(claims.BranchID)
		if err != nil {
			return nil, errors.Wrap(err, "branch-level token needs a branchId claim")
		}
		principal.BranchID = branchID
	}

	return principal, nil
}
