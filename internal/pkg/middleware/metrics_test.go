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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	server := gin.New()
	server.Use(NewMetricsBuilder(reg).Build())
	server.GET("/jobs/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, url := range []string{"/jobs/1", "/jobs/2", "/no/such/route"} {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	got := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		got[f.GetName()] = f
	}
	require.Len(t, got, 2)
	require.Contains(t, got, "talentflow_http_request_duration_seconds")
	counters, ok := got["talentflow_http_requests_total"]
	require.True(t, ok)

	// 同一条路由按模板聚合
	counts := make(map[string]float64)
	for _, m := range counters.GetMetric() {
		labels := make(map[string]string)
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		counts[labels["path"]+" "+labels["status_code"]] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{
		"/jobs/:id 200":        2,
		unmatchedPath + " 404": 1,
	}, counts)
}
