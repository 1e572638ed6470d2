// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/binary"
	"strconv"
)

// Well-known journald field names written by this library. Structured
// application fields are translated through TranslateName; these are
// emitted verbatim.
const (
	fieldPriority         = "PRIORITY"
	fieldMessage          = "MESSAGE"
	fieldSyslogIdentifier = "SYSLOG_IDENTIFIER"
	fieldCodeFile         = "CODE_FILE"
	fieldCodeLine         = "CODE_LINE"
)

// Entry assembles one log record into journald's wire format. Fields
// are appended in call order; the daemon permits duplicate field names
// (multi-valued fields), so nothing is deduplicated. The zero value is
// ready to use.
//
// An Entry is not safe for concurrent use. Callers either build one
// entry per record (the bridge does this) or reuse a single entry from
// one goroutine via Reset.
type Entry struct {
	buf bytes.Buffer
}

// AppendPriority appends the PRIORITY field as a single ASCII digit.
func (e *Entry) AppendPriority(priority Priority) {
	e.buf.WriteString(fieldPriority)
	e.buf.WriteByte('=')
	e.buf.WriteByte(priority.digit())
	e.buf.WriteByte('\n')
}

// AppendMessage appends the MESSAGE field with byte-for-byte fidelity:
// no whitespace trimming, no truncation at NUL. A message containing a
// newline or NUL is carried in the binary framing, so a trailing
// newline survives storage exactly.
func (e *Entry) AppendMessage(message []byte) {
	e.appendField(fieldMessage, message)
}

// AppendSyslogIdentifier appends the SYSLOG_IDENTIFIER field. journald
// uses it for the human-readable source tag in journalctl output.
func (e *Entry) AppendSyslogIdentifier(identifier string) {
	e.appendField(fieldSyslogIdentifier, []byte(identifier))
}

// AppendSource appends CODE_FILE and CODE_LINE fields describing the
// call site that produced the record.
func (e *Entry) AppendSource(file string, line int) {
	e.appendField(fieldCodeFile, []byte(file))
	e.appendField(fieldCodeLine, []byte(strconv.Itoa(line)))
}

// AppendField translates the raw field name (see TranslateName) and
// appends the field with the framing chosen by the value's content.
func (e *Entry) AppendField(rawName, prefix string, value []byte) {
	e.appendField(TranslateName(rawName, prefix), value)
}

// appendField writes one field under an already-legal identifier.
//
// Textual values (no NUL, no newline) use the line framing:
//
//	NAME=value\n
//
// Binary values use the length-prefixed framing:
//
//	NAME\n<8-byte little-endian length><value>\n
//
// The daemon decides which framing it is reading by the byte after the
// identifier, so a value containing a newline must never be sent in
// the line framing — it would terminate the field early and corrupt
// every field after it.
func (e *Entry) appendField(name string, value []byte) {
	if isBinaryValue(value) {
		e.buf.WriteString(name)
		e.buf.WriteByte('\n')
		var length [8]byte
		binary.LittleEndian.PutUint64(length[:], uint64(len(value)))
		e.buf.Write(length[:])
		e.buf.Write(value)
		e.buf.WriteByte('\n')
		return
	}
	e.buf.WriteString(name)
	e.buf.WriteByte('=')
	e.buf.Write(value)
	e.buf.WriteByte('\n')
}

// isBinaryValue reports whether value requires the length-prefixed
// framing. The classification is structural: a value is binary exactly
// when it contains a newline or a NUL byte.
func isBinaryValue(value []byte) bool {
	return bytes.IndexByte(value, '\n') >= 0 || bytes.IndexByte(value, 0) >= 0
}

// Bytes returns the encoded entry. The slice is valid until the next
// mutation of the entry.
func (e *Entry) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the current encoded size in bytes.
func (e *Entry) Len() int {
	return e.buf.Len()
}

// Reset discards the entry contents, retaining the allocation.
func (e *Entry) Reset() {
	e.buf.Reset()
}
