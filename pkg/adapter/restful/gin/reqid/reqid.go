// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package reqid provides a middleware which tags each request with a
// unique identifier, so log lines and error reports of concurrent
// requests can be correlated.
package reqid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the response header which reports the request
// identifier. If the incoming request bears this header already (for
// example, set by a front proxy), its value is trusted and echoed
// back instead of generating a fresh one.
const HeaderName = "X-Request-Id"

// ContextKey is the gin context key holding the request identifier.
const ContextKey = "reqid"

// New creates the request identification middleware.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ContextKey, rid)
		c.Header(HeaderName, rid)
		c.Next()
	}
}
