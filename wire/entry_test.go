// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// textField builds the expected line framing for a textual value.
func textField(name, value string) []byte {
	return []byte(name + "=" + value + "\n")
}

// binaryField builds the expected length-prefixed framing for a binary
// value.
func binaryField(name string, value []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(name)
	buf.WriteByte('\n')
	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], uint64(len(value)))
	buf.Write(length[:])
	buf.Write(value)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func TestEntryFieldFraming(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		message []byte
		want    []byte
	}{
		{
			name:    "plain text",
			message: []byte("Hello World"),
			want:    textField("MESSAGE", "Hello World"),
		},
		{
			name:    "empty value",
			message: []byte{},
			want:    textField("MESSAGE", ""),
		},
		{
			name:    "multiline forces binary framing",
			message: []byte("Hello\nMultiline\nWorld"),
			want:    binaryField("MESSAGE", []byte("Hello\nMultiline\nWorld")),
		},
		{
			name:    "trailing newline forces binary framing",
			message: []byte("A trailing newline\n"),
			want:    binaryField("MESSAGE", []byte("A trailing newline\n")),
		},
		{
			name:    "interior NUL forces binary framing",
			message: []byte("An internal\x00byte"),
			want:    binaryField("MESSAGE", []byte("An internal\x00byte")),
		},
		{
			name:    "leading whitespace preserved",
			message: []byte("  padded  "),
			want:    textField("MESSAGE", "  padded  "),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var entry Entry
			entry.AppendMessage(test.message)
			if got := entry.Bytes(); !bytes.Equal(got, test.want) {
				t.Errorf("encoded field:\n got %q\nwant %q", got, test.want)
			}
		})
	}
}

func TestEntryPriorityEncoding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityError, "PRIORITY=3\n"},
		{PriorityWarning, "PRIORITY=4\n"},
		{PriorityNotice, "PRIORITY=5\n"},
		{PriorityInfo, "PRIORITY=6\n"},
		{PriorityDebug, "PRIORITY=7\n"},
	}
	for _, test := range tests {
		var entry Entry
		entry.AppendPriority(test.priority)
		if got := string(entry.Bytes()); got != test.want {
			t.Errorf("priority %d: got %q, want %q", test.priority, got, test.want)
		}
	}
}

// TestEntryFullRecord checks the assembly order of a complete record:
// PRIORITY, MESSAGE, then structured fields in call order.
func TestEntryFullRecord(t *testing.T) {
	t.Parallel()
	var entry Entry
	entry.AppendPriority(PriorityNotice)
	entry.AppendMessage([]byte("Hello World"))
	entry.AppendSyslogIdentifier("journal-test")
	entry.AppendField("test.name", "", []byte("full_record"))
	entry.AppendField("binary.blob", "", []byte("a\x00b"))

	var want bytes.Buffer
	want.WriteString("PRIORITY=5\n")
	want.Write(textField("MESSAGE", "Hello World"))
	want.Write(textField("SYSLOG_IDENTIFIER", "journal-test"))
	want.Write(textField("TEST_NAME", "full_record"))
	want.Write(binaryField("BINARY_BLOB", []byte("a\x00b")))

	if got := entry.Bytes(); !bytes.Equal(got, want.Bytes()) {
		t.Errorf("full record:\n got %q\nwant %q", got, want.Bytes())
	}
}

// TestEntryDuplicateFields verifies that duplicate identifiers are
// appended as-is: journald supports multi-valued fields and the
// builder must not deduplicate.
func TestEntryDuplicateFields(t *testing.T) {
	t.Parallel()
	var entry Entry
	entry.AppendField("tag", "", []byte("one"))
	entry.AppendField("tag", "", []byte("two"))

	want := append(textField("TAG", "one"), textField("TAG", "two")...)
	if got := entry.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("duplicate fields:\n got %q\nwant %q", got, want)
	}
}

func TestEntryAppendSource(t *testing.T) {
	t.Parallel()
	var entry Entry
	entry.AppendSource("bridge/handler.go", 42)

	want := append(textField("CODE_FILE", "bridge/handler.go"), textField("CODE_LINE", "42")...)
	if got := entry.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("source fields:\n got %q\nwant %q", got, want)
	}
}

func TestEntryReset(t *testing.T) {
	t.Parallel()
	var entry Entry
	entry.AppendMessage([]byte("before"))
	entry.Reset()
	if entry.Len() != 0 {
		t.Fatalf("after Reset: length %d, want 0", entry.Len())
	}
	entry.AppendMessage([]byte("after"))
	if got := string(entry.Bytes()); got != "MESSAGE=after\n" {
		t.Errorf("after Reset: got %q", got)
	}
}
