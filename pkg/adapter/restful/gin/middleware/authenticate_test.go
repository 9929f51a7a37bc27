// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/middleware"
)

func TestAuthenticateRequiresBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	techID := uuid.New()
	verify := func(token string) (uuid.UUID, error) {
		if token != "good-token" {
			return uuid.Nil, errors.New("unknown token")
		}
		return techID, nil
	}
	var seen uuid.UUID
	e := gin.New()
	e.GET("me", middleware.Authenticate(verify), func(c *gin.Context) {
		seen, _ = c.MustGet(middleware.TechnicianIDKey).(uuid.UUID)
		c.Status(http.StatusOK)
	})
	get := func(authorization string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		return w
	}

	w := get("")
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), `"auth"`)

	w = get("Basic Zm9vOmJhcg==")
	assert.Equal(t, 401, w.Code, "only the bearer scheme is accepted")

	w = get("Bearer forged")
	assert.Equal(t, 401, w.Code)

	w = get("Bearer good-token")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, techID, seen, "handler must see the verified technician")
}
