// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the dispatchd configuration settings from a
// YAML file, overrides selected secrets from environment variables,
// validates and normalizes the loaded values, and acts as the factory
// of the adapter and use case objects which those settings configure.
// It is preferred to implement Config with primitive fields or other
// structs which are defined locally, not models or structs which are
// defined in lower layers, so the configuration format can be kept
// intact while other layers change freely.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/climatec/dispatch/pkg/adapter/auth/jwt"
	"github.com/climatec/dispatch/pkg/adapter/config/settings"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres"
	"github.com/climatec/dispatch/pkg/adapter/hash/bcrypt"
	gin "github.com/climatec/dispatch/pkg/adapter/restful/gin"
	"github.com/climatec/dispatch/pkg/core/auth"
	"github.com/climatec/dispatch/pkg/core/hash"
	"github.com/climatec/dispatch/pkg/core/log"
	"github.com/climatec/dispatch/pkg/core/repo"
	"github.com/climatec/dispatch/pkg/core/usecase/appointmentuc"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Auth     Auth     // password hashing and access token settings
	Usecases Usecases // Configuration settings for supported use cases
}

// Database contains the database related configuration settings.
// The password is usually not written in the configuration file, but
// provided by the DB_PASSWORD environment variable (possibly loaded
// from a .env file).
type Database struct {
	Host     string // domain name or IP address of the DBMS server
	Port     int    // port number of the DBMS server
	Name     string // database name, like climatec_dispatch
	User     string
	Password string `yaml:",omitempty"`
	SSLMode  string `yaml:"ssl-mode,omitempty"`
}

// URL formats the connection information as a postgres:// URL,
// suitable for the postgres.NewPool adapter.
func (d Database) URL() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// Gin contains the Gin-Gonic engine settings. The Logger and Recovery
// fields are pointers so absence of a setting can be told apart from
// an explicit false and filled with its default value.
type Gin struct {
	Address  string `yaml:",omitempty"` // listening address, like :8080
	Logger   *bool  `yaml:",omitempty"`
	Recovery *bool  `yaml:",omitempty"`
}

// NewEngine instantiates a gin engine with the logger and recovery
// middlewares, as far as they are enabled by the g settings. The
// ValidateAndNormalize method must have been called beforehand, so
// the Logger and Recovery pointers are non-nil.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Auth contains the password hashing and access token settings.
// The token signing secret is usually not written in the configuration
// file, but provided by the TOKEN_SECRET environment variable.
type Auth struct {
	TokenSecret string             `yaml:"token-secret,omitempty"`
	TokenTTL    *settings.Duration `yaml:"token-ttl,omitempty"`
	BcryptCost  int                `yaml:"bcrypt-cost,omitempty"`

	// LoginRate and LoginBurst configure the per-client-IP rate
	// limiter of the login route, in requests per second and maximum
	// burst size respectively.
	LoginRate  float64 `yaml:"login-rate,omitempty"`
	LoginBurst int     `yaml:"login-burst,omitempty"`
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Appointments Appointments // appointment use cases related settings
}

// Appointments contains the configuration settings for the
// appointment use cases.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and keep the use case defaults for the
// missing ones.
type Appointments struct {
	// MinNotice indicates how far in the future an appointment must
	// be scheduled, at least.
	MinNotice *settings.Duration `yaml:"minimum-notice,omitempty"`
	// MinMinNotice is the inclusive minimum acceptable value for the
	// MinNotice setting. A missing value indicates no lower bound.
	MinMinNotice *settings.Duration `yaml:"minimum-notice-minimum,omitempty"`
	// MaxMinNotice is the inclusive maximum acceptable value for the
	// MinNotice setting. A missing value indicates no upper bound.
	MaxMinNotice *settings.Duration `yaml:"minimum-notice-maximum,omitempty"`
}

// NewUseCase instantiates a new appointments use case based on the
// settings in the a struct.
func (a Appointments) NewUseCase(
	p repo.Pool,
	appts repo.Appointments,
	techs repo.Technicians,
	clients repo.Clients,
	services repo.Services,
	addrs repo.Addresses,
) (*appointmentuc.UseCase, error) {
	opts := make([]appointmentuc.Option, 0, 1)
	if a.MinNotice != nil {
		d := time.Duration(*a.MinNotice)
		opts = append(opts, appointmentuc.WithMinNotice(d))
	}
	return appointmentuc.New(p, appts, techs, clients, services, addrs, opts...)
}

// Load unmarshals the data byte slice and loads a Config instance.
// Extra items in the data will be ignored and missing items will take
// their default values. The DB_PASSWORD and TOKEN_SECRET environment
// variables override their corresponding file settings, so secrets
// can be kept out of the configuration file. Thereafter, the loaded
// Config will be validated and normalized in order to ensure that the
// provided settings are acceptable.
func Load(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("TOKEN_SECRET"); ok {
		c.Auth.TokenSecret = v
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// LoadFile reads the configuration file at path and loads a Config
// instance from it using the Load function.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values
// with their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.Port < 0 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}
	if c.Database.Name == "" {
		return errors.New("database name is required")
	}
	if c.Database.User == "" {
		return errors.New("database user is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Gin.Address == "" {
		c.Gin.Address = ":8080"
	}
	// absent gin middleware flags default to enabled, unlike an
	// explicit false
	enabled := true
	settings.OverwriteNil(&c.Gin.Logger, &enabled)
	settings.OverwriteNil(&c.Gin.Recovery, &enabled)
	if c.Auth.TokenSecret == "" {
		return errors.New(
			"token signing secret is required" +
				" (token-secret or TOKEN_SECRET)",
		)
	}
	if c.Auth.LoginRate == 0 {
		c.Auth.LoginRate = 5
	}
	if c.Auth.LoginBurst == 0 {
		c.Auth.LoginBurst = 10
	}
	if c.Auth.LoginRate < 0 || c.Auth.LoginBurst < 0 {
		return fmt.Errorf(
			"invalid login rate limit: rate=%v burst=%d",
			c.Auth.LoginRate, c.Auth.LoginBurst,
		)
	}
	if err := settings.VerifyRange(
		&c.Usecases.Appointments.MinNotice,
		c.Usecases.Appointments.MinMinNotice,
		c.Usecases.Appointments.MaxMinNotice,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(minimum notice=%v, minb=%v, maxb=%v): %w",
			err.Value,
			c.Usecases.Appointments.MinMinNotice,
			c.Usecases.Appointments.MaxMinNotice,
			err,
		)
	}
	return nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the c settings. The
// concrete pool type is returned, so the caller may Close it at
// shutdown; use cases receive it as a repo.Pool.
func (c *Config) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	p, err := postgres.NewPool(ctx, c.Database.URL())
	if err != nil {
		return nil, fmt.Errorf(
			"connecting to %s:%d/%s: %w",
			c.Database.Host, c.Database.Port, c.Database.Name, err,
		)
	}
	log.Info(
		ctx, "database connection pool is established",
		log.String("host", c.Database.Host),
		log.Int("port", c.Database.Port),
		log.String("dbname", c.Database.Name),
	)
	return p, nil
}

// NewHasher instantiates the password hasher which the technician
// use cases expect, configured with the bcrypt cost settings.
func (c *Config) NewHasher() (hash.Hasher, error) {
	return bcrypt.New(c.Auth.BcryptCost)
}

// NewTokenIssuer instantiates the access token issuer which the
// technician login use case expects, configured with the token
// signing secret and lifetime settings.
func (c *Config) NewTokenIssuer() (auth.Issuer, error) {
	var ttl time.Duration
	if c.Auth.TokenTTL != nil {
		ttl = time.Duration(*c.Auth.TokenTTL)
	}
	return jwt.New(c.Auth.TokenSecret, ttl)
}
