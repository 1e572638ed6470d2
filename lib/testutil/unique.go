// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueID returns a string of the form "prefix-PID-N" where N is a
// monotonically increasing integer. Journal queries filter by process
// ID and a correlation field; including the PID here keeps correlation
// values distinct even across test re-runs of the same binary.
//
//	token := testutil.UniqueID("roundtrip")  // "roundtrip-12345-1", ...
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, os.Getpid(), uniqueCounter.Add(1))
}
