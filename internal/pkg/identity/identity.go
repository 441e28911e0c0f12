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

package identity

import (
	"slices"

	"github.com/ecodeclub/ginx/session"
)

// RoleKey 角色保存在 session claims 的 Data 里
const RoleKey = "role"

type Role string

const (
	RoleApplicant     Role = "applicant"
	RoleHiringManager Role = "hiring_manager"
	RoleHR            Role = "hr"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleApplicant, RoleHiringManager, RoleHR:
		return true
	default:
		return false
	}
}

// User 当前登录的用户
type User struct {
	ID   int64
	Role Role
}

// Is 角色是否在 roles 里，未知角色永远返回 false
func (u User) Is(roles ...Role) bool {
	return u.Role.IsValid() && slices.Contains(roles, u.Role)
}

// FromSession 从 session 里取出当前用户。没有角色或者角色未知时 Role 为空
func FromSession(sess session.Session) User {
	claims := sess.Claims()
	role := Role(claims.Get(RoleKey).StringOrDefault(""))
	if !role.IsValid() {
		role = ""
	}
	return User{ID: claims.Uid, Role: role}
}

// NewClaims 登录时用来生成 claims
func NewClaims(uid int64, role Role) session.Claims {
	return session.Claims{
		Uid:  uid,
		Data: map[string]string{RoleKey: string(role)},
	}
}
