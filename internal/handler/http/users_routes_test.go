// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/acquasitions/internal/service"
	"github.com/MKhiriev/acquasitions/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Route table shape ----

func TestUsersRouteTable_Shape(t *testing.T) {
	h, _ := newTestHandler(t)
	table := h.usersRouteTable()

	assert.Equal(t, "/users", table.Prefix)

	tests := []struct {
		name    string
		method  string
		pattern string
		gates   []string
	}{
		{name: "fetchAllUsers", method: http.MethodGet, pattern: "/", gates: []string{}},
		{name: "fetchUserById", method: http.MethodGet, pattern: "/{id}", gates: []string{"authenticateToken"}},
		{name: "updateUserById", method: http.MethodPut, pattern: "/{id}", gates: []string{"authenticateToken"}},
		{name: "deleteUserById", method: http.MethodDelete, pattern: "/{id}", gates: []string{"authenticateToken", "requireRole(admin)"}},
	}

	require.Len(t, table.Routes, len(tests))
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := table.Routes[i]
			assert.Equal(t, tt.name, route.Name)
			assert.Equal(t, tt.method, route.Method)
			assert.Equal(t, tt.pattern, route.Pattern)
			assert.Equal(t, tt.gates, route.GateNames())
			assert.NotNil(t, route.Handler)
		})
	}
}

// ---- Public listing ----

func TestUsersRoutes_ListIsPublic(t *testing.T) {
	h, deps := newTestHandler(t)
	users := []models.User{{ID: 1, Name: "Alice", Email: "alice@example.com", Role: models.RoleAdmin}}

	deps.users.EXPECT().FetchAllUsers(gomock.Any()).Return(users, nil).Times(1)

	rec := serve(t, h, http.MethodGet, "/users", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "Alice", got.Users[0].Name)
}

func TestUsersRoutes_ListWithTrailingSlash(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.users.EXPECT().FetchAllUsers(gomock.Any()).Return(nil, nil)

	rec := serve(t, h, http.MethodGet, "/users/", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[],"count":0}`, rec.Body.String())
}

// ---- Authentication gate ----

func TestUsersRoutes_AuthenticatedRoutesWithoutToken(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/7"},
		{http.MethodPut, "/users/7"},
		{http.MethodDelete, "/users/7"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			// no EXPECT on the user service: reaching a handler fails the test
			h, _ := newTestHandler(t)

			rec := serve(t, h, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUsersRoutes_FetchWithRejectedToken(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := serve(t, h, http.MethodGet, "/users/7", "forged", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersRoutes_FetchWithValidToken(t *testing.T) {
	h, deps := newTestHandler(t)

	gomock.InOrder(
		deps.expectToken(userToken, regularCaller),
		deps.users.EXPECT().FetchUserByID(gomock.Any(), int64(7)).Return(models.User{ID: 7}, nil),
	)

	rec := serve(t, h, http.MethodGet, "/users/7", userToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ---- Role gate on delete ----

func TestUsersRoutes_DeleteAsNonAdmin(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.expectToken(userToken, regularCaller)

	rec := serve(t, h, http.MethodDelete, "/users/7", userToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUsersRoutes_DeleteAsAdmin(t *testing.T) {
	h, deps := newTestHandler(t)

	gomock.InOrder(
		deps.expectToken(adminToken, adminCaller),
		deps.users.EXPECT().DeleteUserByID(gomock.Any(), int64(7)).Return(nil).Times(1),
	)

	rec := serve(t, h, http.MethodDelete, "/users/7", adminToken, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// authenticateToken, then requireRole, then the handler
func TestUsersRoutes_DeleteGateOrder(t *testing.T) {
	h, deps := newTestHandler(t)
	var order []string

	route, ok := h.usersRouteTable().Lookup("deleteUserById")
	require.True(t, ok)

	gomock.InOrder(
		deps.expectToken(adminToken, adminCaller).Do(func(context.Context, string) {
			order = append(order, "authenticateToken")
		}),
		deps.users.EXPECT().DeleteUserByID(gomock.Any(), int64(3)).DoAndReturn(func(context.Context, int64) error {
			order = append(order, "deleteUserById")
			return nil
		}),
	)

	// role check is observed by wrapping the gate
	roleGate := route.Gates[1]
	route.Gates = []Gate{route.Gates[0], {
		Name: roleGate.Name,
		Check: func(r *http.Request) (context.Context, error) {
			order = append(order, "requireRole")
			return roleGate.Check(r)
		},
	}}

	table := RouteTable{Prefix: "/users", Routes: []Route{route}}
	router := chi.NewRouter()
	table.Mount(router)

	rec := serveWith(router, http.MethodDelete, "/users/3", adminToken, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"authenticateToken", "requireRole", "deleteUserById"}, order)
}
