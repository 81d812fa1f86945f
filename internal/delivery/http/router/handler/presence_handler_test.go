package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/domain/entity"
	mockUsecase "restops/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenceContext(target string, principal entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetPrincipal(c, principal)

	return c, rec
}

func TestPresenceHandler_IsOnline(t *testing.T) {
	shopID, branchID := uuid.New(), uuid.New()
	caller := entity.Principal{ID: shopID, Role: entity.RoleAdmin, ShopID: shopID}

	tests := []struct {
		name       string
		target     string
		key        entity.IdentityKey
		online     bool
		wantStatus int
	}{
		{
			name:       "manager online",
			target:     "/presence/online?role=manager&branch_id=" + branchID.String(),
			key:        entity.NewIdentityKey(entity.RoleManager, shopID, branchID),
			online:     true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin ignores branch",
			target:     "/presence/online?role=admin&branch_id=" + branchID.String(),
			key:        entity.NewIdentityKey(entity.RoleAdmin, shopID, uuid.Nil),
			wantStatus: http.StatusOK,
		},
		{name: "cashier without branch", target: "/presence/online?role=cashier", wantStatus: http.StatusBadRequest},
		{name: "missing role", target: "/presence/online", wantStatus: http.StatusBadRequest},
		{name: "bad branch id", target: "/presence/online?role=manager&branch_id=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presence := mockUsecase.NewMockPresenceUsecase(t)
			if tt.wantStatus == http.StatusOK {
				presence.EXPECT().IsOnline(tt.key).Return(tt.online)
			}
			h := NewPresenceHandler(presence)

			c, rec := newPresenceContext(tt.target, caller)
			require.NoError(t, h.IsOnline(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}
			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			var data PresenceResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.online, data.Online)
			assert.Equal(t, tt.key.String(), data.Key)
		})
	}
}

func TestPresenceHandler_Counts(t *testing.T) {
	shopID := uuid.New()
	caller := entity.Principal{ID: uuid.New(), Role: entity.RoleManager, ShopID: shopID, BranchID: uuid.New()}

	presence := mockUsecase.NewMockPresenceUsecase(t)
	presence.EXPECT().OnlineCounts(shopID).Return(entity.OnlineCounts{Admin: 1, Managers: 2, Cashiers: 3})
	h := NewPresenceHandler(presence)

	c, rec := newPresenceContext("/presence/counts", caller)
	require.NoError(t, h.Counts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.JSONEq(t, `{"admin":1,"managers":2,"cashiers":3,"total":6}`, string(env.Data))
}
