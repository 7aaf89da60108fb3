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

// Kind is a per-partition outcome carried in a TxnOffsetCommit
// response. The value is the Kafka protocol error code.
type Kind int16

const (
	KindUnknownServerError                 Kind = -1
	KindNone                               Kind = 0
	KindUnknownTopicOrPartition            Kind = 3
	KindRequestTimedOut                    Kind = 7
	KindOffsetMetadataTooLarge             Kind = 12
	KindCoordinatorLoadInProgress          Kind = 14
	KindCoordinatorNotAvailable            Kind = 15
	KindNotCoordinator                     Kind = 16
	KindGroupAuthorizationFailed           Kind = 30
	KindInvalidCommitOffsetSize            Kind = 42
	KindInvalidProducerEpoch               Kind = 47
	KindTransactionalIDAuthorizationFailed Kind = 53
)

type kindInfo struct {
	name    string
	message string
}

var kinds = map[Kind]kindInfo{
	KindUnknownServerError:                 {"UNKNOWN_SERVER_ERROR", "The server experienced an unexpected error."},
	KindNone:                               {"NONE", "No error."},
	KindUnknownTopicOrPartition:            {"UNKNOWN_TOPIC_OR_PARTITION", "This server does not host this topic-partition."},
	KindRequestTimedOut:                    {"REQUEST_TIMED_OUT", "The request timed out."},
	KindOffsetMetadataTooLarge:             {"OFFSET_METADATA_TOO_LARGE", "The committed metadata is too large."},
	KindCoordinatorLoadInProgress:          {"COORDINATOR_LOAD_IN_PROGRESS", "The coordinator is loading and cannot process requests."},
	KindCoordinatorNotAvailable:            {"COORDINATOR_NOT_AVAILABLE", "The coordinator is not available."},
	KindNotCoordinator:                     {"NOT_COORDINATOR", "This server is not the coordinator for this group."},
	KindGroupAuthorizationFailed:           {"GROUP_AUTHORIZATION_FAILED", "Group authorization failed."},
	KindInvalidCommitOffsetSize:            {"INVALID_COMMIT_OFFSET_SIZE", "The committing offset data size is not valid."},
	KindInvalidProducerEpoch:               {"INVALID_PRODUCER_EPOCH", "The producer attempted to use a producer id which is not currently assigned to its transactional id."},
	KindTransactionalIDAuthorizationFailed: {"TRANSACTIONAL_ID_AUTHORIZATION_FAILED", "Transactional id authorization failed."},
}

// KindForCode maps a wire error code to its Kind. Codes with no
// registered kind map to KindUnknownServerError rather than failing, so
// a decoder never chokes on an error code from a newer broker.
func KindForCode(code int16) Kind {
	k := Kind(code)
	if _, ok := kinds[k]; ok {
		return k
	}
	return KindUnknownServerError
}

// Code returns the wire error code for k.
func (k Kind) Code() int16 {
	return int16(k)
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("KIND(%d)", int16(k))
}

// Message returns the human-readable description of k.
func (k Kind) Message() string {
	if info, ok := kinds[k]; ok {
		return info.message
	}
	return kinds[KindUnknownServerError].message
}
