// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// journal-verify sends a scenario of log records through the journald
// bridge and verifies, via journalctl, that the daemon stored every
// record byte-for-byte.
//
// The scenario is a YAML file:
//
//	records:
//	  - level: info
//	    message: "Hello World"
//	    fields:
//	      request.id: "abc123"
//	  - level: warn
//	    message: "Hello\nMultiline\nWorld"
//
// Each record is sent with an injected correlation field carrying a
// unique token, then read back by filtering the journal on this
// process's PID and that token. The journal is eventually consistent,
// so reads poll with bounded retries. Any stored MESSAGE, PRIORITY, or
// structured field differing from what was sent is reported and the
// tool exits non-zero.
//
// Usage:
//
//	journal-verify --scenario records.yaml [--socket PATH]
//	    [--no-prefix | --prefix P] [--identifier NAME]
//	    [--attempts N] [--interval D] [--verbose]
package main
