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

package protocol

import (
	"fmt"
	"sort"
	"strings"
)

// TopicPartition identifies a single partition of a topic.
type TopicPartition struct {
	Topic     string
	Partition int32
}

// TxnOffsetCommitResponse reports the outcome of a transactional offset
// commit for every partition named in the request, plus the throttle
// delay the broker applied.
type TxnOffsetCommitResponse struct {
	ThrottleMs int32
	Errors     map[TopicPartition]Kind
}

// The v2 partition leader epoch slot. This response never learns a real
// epoch, so encoders write the protocol's "no epoch" value.
const unknownLeaderEpoch int32 = -1

type partitionOutcome struct {
	partition int32
	kind      Kind
}

type topicGroup struct {
	name       string
	partitions []partitionOutcome
}

// groupByTopic splits the flat outcome map into topic-major groups.
// Topics and partitions come out in ascending order so repeated encodes
// of the same response produce identical bytes. A topic appears only if
// it has at least one partition outcome.
func groupByTopic(errors map[TopicPartition]Kind) []topicGroup {
	byTopic := make(map[string][]partitionOutcome, len(errors))
	for tp, kind := range errors {
		byTopic[tp.Topic] = append(byTopic[tp.Topic], partitionOutcome{partition: tp.Partition, kind: kind})
	}
	names := make([]string, 0, len(byTopic))
	for name := range byTopic {
		names = append(names, name)
	}
	sort.Strings(names)
	groups := make([]topicGroup, 0, len(names))
	for _, name := range names {
		partitions := byTopic[name]
		sort.Slice(partitions, func(i, j int) bool {
			return partitions[i].partition < partitions[j].partition
		})
		groups = append(groups, topicGroup{name: name, partitions: partitions})
	}
	return groups
}

// flattenTopics is the decode-side inverse of groupByTopic. A duplicate
// (topic, partition) entry keeps its last occurrence.
func flattenTopics(groups []topicGroup) map[TopicPartition]Kind {
	errors := make(map[TopicPartition]Kind)
	for _, g := range groups {
		for _, p := range g.partitions {
			errors[TopicPartition{Topic: g.name, Partition: p.partition}] = p.kind
		}
	}
	return errors
}

// EncodeTxnOffsetCommitResponse renders resp as wire bytes at the given
// version.
func EncodeTxnOffsetCommitResponse(resp *TxnOffsetCommitResponse, version int16) ([]byte, error) {
	schema, err := SchemaFor(version)
	if err != nil {
		return nil, err
	}
	groups := groupByTopic(resp.Errors)
	w := newByteWriter(64)
	w.Int32(resp.ThrottleMs)
	w.Int32(int32(len(groups)))
	for _, g := range groups {
		w.String(g.name)
		w.Int32(int32(len(g.partitions)))
		for _, p := range g.partitions {
			w.Int32(p.partition)
			w.Int16(p.kind.Code())
			if schema.hasPartitionField(FieldLeaderEpoch) {
				w.Int32(unknownLeaderEpoch)
			}
		}
	}
	return w.Bytes(), nil
}

// DecodeTxnOffsetCommitResponse parses wire bytes encoded at the given
// version. Error codes without a registered Kind come back as
// KindUnknownServerError; malformed bytes fail without a partial
// result.
func DecodeTxnOffsetCommitResponse(b []byte, version int16) (*TxnOffsetCommitResponse, error) {
	schema, err := SchemaFor(version)
	if err != nil {
		return nil, err
	}
	r := newByteReader(b)
	throttle, err := r.Int32()
	if err != nil {
		return nil, fmt.Errorf("read throttle time: %w", err)
	}
	topicCount, err := r.Int32()
	if err != nil {
		return nil, fmt.Errorf("read topic count: %w", err)
	}
	if topicCount < 0 {
		return nil, fmt.Errorf("read topic count: invalid %d", topicCount)
	}
	groups := make([]topicGroup, 0, topicCount)
	for i := int32(0); i < topicCount; i++ {
		name, err := r.String()
		if err != nil {
			return nil, fmt.Errorf("read topic name: %w", err)
		}
		partitionCount, err := r.Int32()
		if err != nil {
			return nil, fmt.Errorf("read partition count: %w", err)
		}
		if partitionCount < 0 {
			return nil, fmt.Errorf("read partition count: invalid %d", partitionCount)
		}
		partitions := make([]partitionOutcome, 0, partitionCount)
		for j := int32(0); j < partitionCount; j++ {
			index, err := r.Int32()
			if err != nil {
				return nil, fmt.Errorf("read partition index: %w", err)
			}
			code, err := r.Int16()
			if err != nil {
				return nil, fmt.Errorf("read error code: %w", err)
			}
			if schema.hasPartitionField(FieldLeaderEpoch) {
				if _, err := r.Int32(); err != nil {
					return nil, fmt.Errorf("read leader epoch: %w", err)
				}
			}
			partitions = append(partitions, partitionOutcome{partition: index, kind: KindForCode(code)})
		}
		groups = append(groups, topicGroup{name: name, partitions: partitions})
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("decode txn offset commit response: %d trailing bytes", r.remaining())
	}
	return &TxnOffsetCommitResponse{ThrottleMs: throttle, Errors: flattenTopics(groups)}, nil
}

// ErrorCounts tallies outcomes per kind, for metrics and logging.
func (r *TxnOffsetCommitResponse) ErrorCounts() map[Kind]int {
	counts := make(map[Kind]int, len(r.Errors))
	for _, kind := range r.Errors {
		counts[kind]++
	}
	return counts
}

// ShouldClientThrottle reports whether a client receiving this response
// version must honor the throttle delay itself. From v1 on, brokers
// send the response before throttling on quota violation.
func ShouldClientThrottle(version int16) bool {
	return version >= 1
}

// String renders the response with topics and partitions in sorted
// order, so log lines and test output are stable.
func (r *TxnOffsetCommitResponse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TxnOffsetCommitResponse(throttleMs=%d, errors={", r.ThrottleMs)
	first := true
	for _, g := range groupByTopic(r.Errors) {
		for _, p := range g.partitions {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&sb, "%s-%d=%s", g.name, p.partition, p.kind)
		}
	}
	sb.WriteString("})")
	return sb.String()
}
