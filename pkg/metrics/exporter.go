// Copyright 2026 The txncommit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes Prometheus instrumentation derived from
// TxnOffsetCommit responses passing through the codec.
package metrics

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meldstream/txncommit/pkg/protocol"
)

// Directions for ResponsesTotal.
const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

var (
	ResponsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "txncommit_responses_total",
		Help: "Count of TxnOffsetCommit responses observed, labeled by direction.",
	}, []string{"direction"})
	PartitionOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "txncommit_partition_outcomes_total",
		Help: "Count of per-partition outcomes observed, labeled by error kind.",
	}, []string{"kind"})
	ThrottleMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "txncommit_throttle_ms",
		Help:    "Throttle delays carried by observed responses, in milliseconds.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func init() {
	prometheus.MustRegister(ResponsesTotal, PartitionOutcomes, ThrottleMs)
}

// RecordResponse updates all counters from one response. direction is
// DirectionEncode or DirectionDecode.
func RecordResponse(resp *protocol.TxnOffsetCommitResponse, direction string) {
	ResponsesTotal.WithLabelValues(direction).Inc()
	ThrottleMs.Observe(float64(resp.ThrottleMs))
	for kind, n := range resp.ErrorCounts() {
		PartitionOutcomes.WithLabelValues(kind.String()).Add(float64(n))
	}
}

// StartMetricsServer serves /metrics on the given port in the
// background.
func StartMetricsServer(port int) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf(":%d", port)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("metrics server stopped", "addr", addr, "err", err)
		}
	}()
}
