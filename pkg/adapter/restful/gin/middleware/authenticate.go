// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package middleware

import (
	"errors"
	"strings"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TechnicianIDKey is the gin context key under which Authenticate
// stores the uuid.UUID of the technician a verified token identifies.
const TechnicianIDKey = "authTechnicianID"

// Authenticate returns a middleware which requires a bearer access
// token in the Authorization header and resolves it with the verify
// function. Requests without a verifiable token are answered with 401
// without reaching the wrapped handlers; for the rest, the identified
// technician is made available under TechnicianIDKey.
func Authenticate(
	verify func(token string) (uuid.UUID, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			serdser.SerErr(c, cerr.Authentication(
				errors.New("missing bearer access token"),
			))
			c.Abort()
			return
		}
		id, err := verify(token)
		if err != nil {
			serdser.SerErr(c, cerr.Authentication(
				errors.New("invalid or expired access token"),
			))
			c.Abort()
			return
		}
		c.Set(TechnicianIDKey, id)
		c.Next()
	}
}
