// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package middleware holds the gin middlewares which are shared by
// the resource packages.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleEviction is how long a client IP may stay quiet before its
// token bucket is dropped. A dropped bucket would have refilled to
// its full burst over that period anyway, so eviction never grants
// extra requests.
const idleEviction = 10 * time.Minute

// clientLimiter pairs a token bucket with the instant of the last
// request which consulted it.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a middleware which limits requests per client IP
// with a token bucket of r tokens per second and burst capacity b.
// Requests over the limit are answered with 429 without reaching the
// wrapped handlers. Brute-force guard for the login route. Buckets of
// idle clients are swept periodically, so the per-IP state stays
// bounded by the recently active clients.
func RateLimit(r float64, b int) gin.HandlerFunc {
	return rateLimit(r, b, idleEviction, time.Now)
}

func rateLimit(
	r float64, b int, idleAfter time.Duration, now func() time.Time,
) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*clientLimiter)
	lastSweep := now()
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		t := now()
		if t.Sub(lastSweep) >= idleAfter {
			for ip, cl := range limiters {
				if t.Sub(cl.lastSeen) >= idleAfter {
					delete(limiters, ip)
				}
			}
			lastSweep = t
		}
		cl, ok := limiters[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(r), b)}
			limiters[ip] = cl
		}
		cl.lastSeen = t
		mu.Unlock()
		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}
