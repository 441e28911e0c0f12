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
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorWith(t *testing.T) {
	testCases := []struct {
		name    string
		random  string
		want    string
		wantErr bool
	}{
		{
			name:   "截取前 8 位",
			random: "ABCDEFGHIJKL",
			want:   "APP-1234554320123-ABCDEFGH",
		},
		{
			name:   "小写转成大写",
			random: "nufojch2m5j2",
			want:   "APP-1234554320123-NUFOJCH2",
		},
		{
			name:    "随机部分过短",
			random:  "ABC",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewGeneratorWith("APP", func(_ time.Time) int64 { return 1234554320123 }, func() string { return tc.random })
			ref, err := g.Generate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ref)
		})
	}
}

func TestApplicationRefGenerator(t *testing.T) {
	g := NewApplicationRefGenerator()
	ref1, err := g.Generate()
	require.NoError(t, err)
	ref2, err := g.Generate()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^APP-\d{13}-[0-9A-Z]{8}$`), ref1)
	assert.NotEqual(t, ref1, ref2)
}
