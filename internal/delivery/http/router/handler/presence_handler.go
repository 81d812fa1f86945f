package handler

import (
	"net/http"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/delivery/http/response"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PresenceHandler serves the /presence routes.
type PresenceHandler struct {
	presence usecase.PresenceUsecase
}

// NewPresenceHandler is the constructor for PresenceHandler, injected by Fx.
func NewPresenceHandler(presence usecase.PresenceUsecase) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// PresenceResponse answers a single presence probe.
type PresenceResponse struct {
	Key    string `json:"key"`
	Online bool   `json:"online"`
}

// IsOnline handles GET /presence/online?role=&branch_id=. The shop is always
// the caller's own.
func (h *PresenceHandler) IsOnline(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	var branchID uuid.UUID
	if raw := c.QueryParam("branch_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_BRANCH_ID", "Invalid branch ID format")
		}
		branchID = parsed
	}

	key := entity.NewIdentityKey(entity.Role(c.QueryParam("role")), principal.ShopID, branchID)
	if !key.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrInvalidIdentity.WithDetails("role is required and branch roles need branch_id"))
	}

	return response.Success(c, http.StatusOK, PresenceResponse{
		Key:    key.String(),
		Online: h.presence.IsOnline(key),
	}, "Presence retrieved successfully")
}

// Counts handles GET /presence/counts.
func (h *PresenceHandler) Counts(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	counts := h.presence.OnlineCounts(principal.ShopID)

	return response.Success(c, http.StatusOK, map[string]any{
		"admin":    counts.Admin,
		"managers": counts.Managers,
		"cashiers": counts.Cashiers,
		"total":    counts.Total(),
	}, "Online counts retrieved successfully")
}
