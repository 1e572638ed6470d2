// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"strings"
	"testing"
)

func TestTranslateName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		raw    string
		prefix string
		want   string
	}{
		{name: "dotted name", raw: "test.name", prefix: "", want: "TEST_NAME"},
		{name: "dotted name with prefix", raw: "test.name", prefix: "F", want: "F_TEST_NAME"},
		{name: "already legal", raw: "MESSAGE_ID", prefix: "", want: "MESSAGE_ID"},
		{name: "mixed case", raw: "requestID", prefix: "", want: "REQUESTID"},
		{name: "hyphenated", raw: "x-request-id", prefix: "", want: "X_REQUEST_ID"},
		{name: "digits kept", raw: "http2.streams", prefix: "", want: "HTTP2_STREAMS"},
		{name: "spaces", raw: "a b c", prefix: "", want: "A_B_C"},
		{name: "non-ascii bytes", raw: "grüße", prefix: "", want: "GR____E"},
		{name: "empty name", raw: "", prefix: "", want: "UNSET"},
		{name: "empty name with prefix", raw: "", prefix: "F", want: "F_"},
		{name: "leading underscore reserved", raw: "_pid", prefix: "", want: "X_PID"},
		{name: "leading dot", raw: ".hidden", prefix: "", want: "X_HIDDEN"},
		{name: "leading digit", raw: "2fast", prefix: "", want: "X2FAST"},
		{name: "prefix shields leading digit", raw: "2fast", prefix: "F", want: "F_2FAST"},
		{name: "prefix is translated too", raw: "name", prefix: "my.app", want: "MY_APP_NAME"},
		{name: "truncated to limit", raw: strings.Repeat("a", 100), prefix: "", want: strings.Repeat("A", 64)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := TranslateName(test.raw, test.prefix); got != test.want {
				t.Errorf("TranslateName(%q, %q): got %q, want %q", test.raw, test.prefix, got, test.want)
			}
		})
	}
}

// TestTranslateNameDeterministic verifies that translation is a pure
// function of its inputs.
func TestTranslateNameDeterministic(t *testing.T) {
	t.Parallel()
	inputs := []string{"test.name", "", "_reserved", "9lives", "ünïcode", "A.B.C"}
	for _, raw := range inputs {
		first := TranslateName(raw, "F")
		second := TranslateName(raw, "F")
		if first != second {
			t.Errorf("TranslateName(%q, \"F\") not deterministic: %q then %q", raw, first, second)
		}
	}
}

// TestTranslateNameAlwaysLegal verifies the translator's total-function
// guarantee: any input produces an identifier journald will accept.
func TestTranslateNameAlwaysLegal(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"", ".", "..", "_", "__", "0", "\x00", "\n", "üü", "a.b.c",
		strings.Repeat(".", 200), "normal_name", "_PID",
	}
	for _, raw := range inputs {
		for _, prefix := range []string{"", "F", "weird.prefix"} {
			got := TranslateName(raw, prefix)
			if got == "" {
				t.Errorf("TranslateName(%q, %q) returned empty identifier", raw, prefix)
				continue
			}
			if len(got) > 64 {
				t.Errorf("TranslateName(%q, %q) = %q exceeds 64 bytes", raw, prefix, got)
			}
			if got[0] == '_' {
				t.Errorf("TranslateName(%q, %q) = %q starts with reserved underscore", raw, prefix, got)
			}
			if got[0] >= '0' && got[0] <= '9' {
				t.Errorf("TranslateName(%q, %q) = %q starts with a digit", raw, prefix, got)
			}
			for i := 0; i < len(got); i++ {
				c := got[i]
				legal := c == '_' || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
				if !legal {
					t.Errorf("TranslateName(%q, %q) = %q contains illegal byte %q", raw, prefix, got, c)
				}
			}
		}
	}
}
