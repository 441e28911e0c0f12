// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talentflow/internal/pkg/identity"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 只放行指定角色的用户，放在登录校验之后
type CheckRoleMiddlewareBuilder struct {
	roles  []identity.Role
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(roles ...identity.Role) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		u := identity.FromSession(sess)
		if !u.Is(c.roles...) {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("角色无权访问",
				elog.Int64("uid", u.ID),
				elog.String("role", string(u.Role)),
				elog.String("path", ctx.FullPath()))
			return
		}
	}
}
