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

package sngenerator

import (
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	refAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	refRandomSize = 8
)

// TimestampGenerateFunc 定义生成时间戳的函数类型
type TimestampGenerateFunc func(time.Time) int64

// RandomGenerateFunc 生成随机部分，结果至少 8 个字符
type RandomGenerateFunc func() string

// Generator 生成投递编号，格式 <prefix>-<毫秒时间戳>-<8 位大写字母或数字>
type Generator struct {
	prefix           string
	timestampGenFunc TimestampGenerateFunc
	randomGenFunc    RandomGenerateFunc
}

func NewGeneratorWith(prefix string, timestampGen TimestampGenerateFunc, randomGen RandomGenerateFunc) *Generator {
	return &Generator{
		prefix:           prefix,
		timestampGenFunc: timestampGen,
		randomGenFunc:    randomGen,
	}
}

// NewApplicationRefGenerator 投递编号形如 APP-1718000000000-7KQ2M9XA
func NewApplicationRefGenerator() *Generator {
	return NewGeneratorWith("APP",
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.NewWithAlphabet(refAlphabet) })
}

func (g *Generator) Generate() (string, error) {
	random := strings.ToUpper(g.randomGenFunc())
	if len(random) < refRandomSize {
		return "", fmt.Errorf("随机部分长度不足: %q", random)
	}
	return fmt.Sprintf("%s-%d-%s", g.prefix, g.timestampGenFunc(time.Now()), random[:refRandomSize]), nil
}
