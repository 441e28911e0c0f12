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

package service

import (
	"errors"

	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/application/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "application_transitions_total",
		Help: "Total number of application status transitions",
	},
	[]string{"from", "to", "result"},
)

func observeTransition(from, to domain.Status, err error) {
	transitionCounter.WithLabelValues(from.String(), to.String(), transitionResult(err)).Inc()
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrTerminalState):
		return "terminal_state"
	case errors.Is(err, domain.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrMissingSideEffectInput):
		return "missing_input"
	case errors.Is(err, repository.ErrConcurrentModification):
		return "concurrent_modification"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
