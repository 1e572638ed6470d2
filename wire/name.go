// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// DefaultFieldPrefix is prepended to every translated structured field
// name unless the caller disables prefixing. The single-letter prefix
// keeps application fields visually distinct from the well-known
// journald fields (MESSAGE, PRIORITY, CODE_FILE, ...) and from the
// underscore-prefixed trusted fields the daemon adds itself.
const DefaultFieldPrefix = "F"

// maxFieldNameLength is journald's limit on field identifier length.
// Longer names cause the daemon to drop the field silently, so the
// translator truncates rather than ever producing an unusable name.
const maxFieldNameLength = 64

// TranslateName maps an arbitrary structured field name (dotted, mixed
// case, possibly non-ASCII) to a legal journald field identifier. The
// mapping is total and deterministic: the same raw name and prefix
// always yield the same identifier, and no input is rejected — a log
// call must never fail because of a strange field name.
//
// Translation rules:
//   - ASCII letters are uppercased, ASCII digits kept, every other
//     byte (including '.', '-', and non-ASCII) becomes '_'.
//   - A non-empty prefix is prepended with a '_' separator. An empty
//     prefix disables prefixing entirely.
//   - An empty result becomes "UNSET".
//   - A result starting with '_' or a digit gets an 'X' prepended:
//     journald reserves leading underscores for trusted fields and
//     rejects identifiers starting with a digit.
//   - The result is truncated to 64 bytes, journald's identifier limit.
func TranslateName(raw, prefix string) string {
	name := make([]byte, 0, len(prefix)+1+len(raw))
	if prefix != "" {
		name = appendTranslated(name, prefix)
		name = append(name, '_')
	}
	name = appendTranslated(name, raw)

	if len(name) == 0 {
		return "UNSET"
	}
	if name[0] == '_' || (name[0] >= '0' && name[0] <= '9') {
		name = append([]byte{'X'}, name...)
	}
	if len(name) > maxFieldNameLength {
		name = name[:maxFieldNameLength]
	}
	return string(name)
}

// appendTranslated appends s to name byte-wise, uppercasing ASCII
// letters, keeping ASCII digits, and rewriting everything else to '_'.
func appendTranslated(name []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			name = append(name, c-'a'+'A')
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			name = append(name, c)
		default:
			name = append(name, '_')
		}
	}
	return name
}
