// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/climatec/dispatch/pkg/adapter/config"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres/addressrp"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres/appointmentrp"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres/clientrp"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres/servicerp"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres/technicianrp"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/addressesrs"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/appointmentsrs"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/clientsrs"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/middleware"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/servicesrs"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/techniciansrs"
	"github.com/climatec/dispatch/pkg/core/repo"
	"github.com/climatec/dispatch/pkg/core/usecase/addressuc"
	"github.com/climatec/dispatch/pkg/core/usecase/clientuc"
	"github.com/climatec/dispatch/pkg/core/usecase/serviceuc"
	"github.com/climatec/dispatch/pkg/core/usecase/technicianuc"
	"github.com/gin-gonic/gin"
)

// Register instantiates the repositories and use cases based on the c
// configuration settings. The p connections pool is passed to the use
// case instances, so they may acquire/release connections and
// transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like clientuc and each repository package is named like clientrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like clientsrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance, grouped
// under the /api/dispatch/v1 prefix.
func Register(e *gin.Engine, p repo.Pool, c *config.Config) error {
	clientsRepo := clientrp.New()
	techsRepo := technicianrp.New()
	servicesRepo := servicerp.New()
	addrsRepo := addressrp.New()
	apptsRepo := appointmentrp.New()

	hasher, err := c.NewHasher()
	if err != nil {
		return fmt.Errorf("creating password hasher: %w", err)
	}
	issuer, err := c.NewTokenIssuer()
	if err != nil {
		return fmt.Errorf("creating token issuer: %w", err)
	}
	apptsUseCase, err := c.Usecases.Appointments.NewUseCase(
		p, apptsRepo, techsRepo, clientsRepo, servicesRepo, addrsRepo,
	)
	if err != nil {
		return fmt.Errorf("creating appointments use case: %w", err)
	}

	r := e.Group("/api/dispatch/v1")
	clientsrs.Register(r, clientuc.New(p, clientsRepo))
	techniciansrs.Register(
		r,
		technicianuc.New(p, techsRepo, hasher, issuer),
		middleware.RateLimit(c.Auth.LoginRate, c.Auth.LoginBurst),
		middleware.Authenticate(issuer.Verify),
	)
	servicesrs.Register(r, serviceuc.New(p, servicesRepo, techsRepo))
	addressesrs.Register(r, addressuc.New(p, addrsRepo, clientsRepo))
	appointmentsrs.Register(r, apptsUseCase)
	return nil
}
