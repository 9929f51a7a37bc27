// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitEvictsIdleClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Unix(1700000000, 0)
	e := gin.New()
	// a zero rate never refills, so a surviving bucket stays drained
	e.POST(
		"login",
		rateLimit(0, 1, time.Minute, func() time.Time { return now }),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	hit := func(ip string) int {
		req, _ := http.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, 200, hit("10.0.0.1"))
	assert.Equal(t, 429, hit("10.0.0.1"), "burst must be exhausted")

	// past the idle window the drained bucket is swept and the client
	// starts over with a full burst
	now = now.Add(2 * time.Minute)
	assert.Equal(t, 200, hit("10.0.0.1"))
	assert.Equal(t, 429, hit("10.0.0.1"))

	// a bucket is kept as long as its client keeps sending
	assert.Equal(t, 200, hit("10.0.0.2"))
	now = now.Add(30 * time.Second)
	assert.Equal(t, 429, hit("10.0.0.2"))
}
