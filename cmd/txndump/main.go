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

// txndump decodes a captured TxnOffsetCommit response and prints its
// per-partition outcomes.
//
//	txndump -version 2 response.bin
//	cat response.bin | txndump -framed=false -version 0
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/meldstream/txncommit/pkg/protocol"
)

func main() {
	version := flag.Int("version", 2, "response wire version (0-2)")
	framed := flag.Bool("framed", true, "input starts with a 4-byte length prefix")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			logger.Error("open input", "path", flag.Arg(0), "err", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var payload []byte
	if *framed {
		frame, err := protocol.ReadFrame(in)
		if err != nil {
			logger.Error("read frame", "err", err)
			os.Exit(1)
		}
		payload = frame.Payload
	} else {
		b, err := io.ReadAll(in)
		if err != nil {
			logger.Error("read input", "err", err)
			os.Exit(1)
		}
		payload = b
	}

	resp, err := protocol.DecodeTxnOffsetCommitResponse(payload, int16(*version))
	if err != nil {
		logger.Error("decode response", "version", *version, "err", err)
		os.Exit(1)
	}

	fmt.Println(resp)
	counts := resp.ErrorCounts()
	kinds := make([]protocol.Kind, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Code() < kinds[j].Code() })
	for _, kind := range kinds {
		fmt.Printf("%s\t%d\n", kind, counts[kind])
	}
	fmt.Printf("client should throttle: %v\n", protocol.ShouldClientThrottle(int16(*version)))
}
