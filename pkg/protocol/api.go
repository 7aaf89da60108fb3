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

// Package protocol implements the Kafka TxnOffsetCommit response codec
// for wire versions 0 through 2.
package protocol

// APIKeyTxnOffsetCommit is the Kafka api key this package speaks.
const APIKeyTxnOffsetCommit int16 = 28

// ApiVersion describes the supported version range for an API.
type ApiVersion struct {
	APIKey     int16
	MinVersion int16
	MaxVersion int16
}

// SupportedTxnOffsetCommitVersions advertises the response versions
// this codec handles.
func SupportedTxnOffsetCommitVersions() ApiVersion {
	return ApiVersion{APIKey: APIKeyTxnOffsetCommit, MinVersion: 0, MaxVersion: 2}
}
