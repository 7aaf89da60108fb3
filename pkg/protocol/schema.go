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

import "fmt"

// Field names one value slot inside a nesting level of the response
// layout.
type Field string

const (
	FieldThrottleTimeMs Field = "throttle_time_ms"
	FieldTopics         Field = "topics"
	FieldTopicName      Field = "name"
	FieldPartitions     Field = "partitions"
	FieldPartitionIndex Field = "partition_index"
	FieldErrorCode      Field = "error_code"
	FieldLeaderEpoch    Field = "leader_epoch"
)

// Schema is the ordered field layout of a TxnOffsetCommit response at
// one wire shape. Versions with identical layouts share one Schema
// value, so the alias relationship stays observable.
type Schema struct {
	Response  []Field
	Topic     []Field
	Partition []Field
}

func (s *Schema) hasPartitionField(f Field) bool {
	for _, have := range s.Partition {
		if have == f {
			return true
		}
	}
	return false
}

// Version 1 bumped only the throttling contract (brokers respond before
// throttling on quota violation), so it aliases the v0 layout.
var txnOffsetCommitV0 = &Schema{
	Response:  []Field{FieldThrottleTimeMs, FieldTopics},
	Topic:     []Field{FieldTopicName, FieldPartitions},
	Partition: []Field{FieldPartitionIndex, FieldErrorCode},
}

// Version 2 appends the partition leader epoch after the error code.
var txnOffsetCommitV2 = &Schema{
	Response:  []Field{FieldThrottleTimeMs, FieldTopics},
	Topic:     []Field{FieldTopicName, FieldPartitions},
	Partition: []Field{FieldPartitionIndex, FieldErrorCode, FieldLeaderEpoch},
}

var txnOffsetCommitSchemas = []*Schema{
	0: txnOffsetCommitV0,
	1: txnOffsetCommitV0,
	2: txnOffsetCommitV2,
}

// SchemaFor returns the response layout for a TxnOffsetCommit wire
// version.
func SchemaFor(version int16) (*Schema, error) {
	if version < 0 || int(version) >= len(txnOffsetCommitSchemas) {
		return nil, fmt.Errorf("txn offset commit response version %d not supported", version)
	}
	return txnOffsetCommitSchemas[version], nil
}
