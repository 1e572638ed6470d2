// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/bureau-foundation/journald/transport"
	"github.com/bureau-foundation/journald/wire"
)

// LevelTrace is the conventional level for records below slog's Debug.
// Records at or below this level are stored with journald's LOG_DEBUG
// priority (7).
const LevelTrace = slog.LevelDebug - 4

// Options configures a Handler. The zero value selects the system
// journald socket, the default field prefix, Info level, and the
// process name as syslog identifier.
type Options struct {
	// FieldPrefix is prepended to every translated structured field
	// name. nil means the default prefix (wire.DefaultFieldPrefix); a
	// pointer to the empty string disables prefixing entirely.
	FieldPrefix *string

	// SocketPath overrides the journald socket address. Empty means
	// transport.DefaultSocketPath.
	SocketPath string

	// Level is the minimum record level the handler reports enabled.
	// nil means slog.LevelInfo.
	Level slog.Leveler

	// AddSource emits CODE_FILE and CODE_LINE fields from the record's
	// program counter, when the caller captured one.
	AddSource bool

	// SyslogIdentifier is the SYSLOG_IDENTIFIER field value. Empty
	// means the base name of the running executable.
	SyslogIdentifier string
}

// field is one structured field bound by WithAttrs, already flattened
// out of any groups and with its value resolved.
type field struct {
	rawName string
	value   slog.Value
}

// Handler forwards slog records to journald. It holds the shared
// transport and the configuration resolved by New, and is safe for
// concurrent use: each Handle call builds its own entry and the
// transport's datagram sends are atomic.
type Handler struct {
	transport  *transport.Transport
	prefix     string
	level      slog.Leveler
	addSource  bool
	identifier string

	// fields and groupPath carry the WithAttrs/WithGroup state.
	// Handlers derived by those methods share the transport.
	fields    []field
	groupPath string
}

// New constructs a Handler connected to journald. Construction fails
// when the daemon socket is absent or not writable; the handler cannot
// be used until the environment is corrected and New is called again.
func New(options Options) (*Handler, error) {
	journalTransport, err := transport.New(transport.Config{SocketPath: options.SocketPath})
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}

	prefix := wire.DefaultFieldPrefix
	if options.FieldPrefix != nil {
		prefix = *options.FieldPrefix
	}

	level := options.Level
	if level == nil {
		level = slog.LevelInfo
	}

	identifier := options.SyslogIdentifier
	if identifier == "" {
		identifier = filepath.Base(os.Args[0])
	}

	return &Handler{
		transport:  journalTransport,
		prefix:     prefix,
		level:      level,
		addSource:  options.AddSource,
		identifier: identifier,
	}, nil
}

// Close releases the transport socket. Records handled after Close
// return errors.
func (h *Handler) Close() error {
	return h.transport.Close()
}

// Enabled reports whether records at the given level are forwarded.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle encodes one record and sends it to the daemon on the calling
// goroutine. Either the whole record reaches the kernel or an error is
// returned; there is no partial delivery and no retry.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var entry wire.Entry
	entry.AppendPriority(wire.PriorityFromLevel(record.Level))
	entry.AppendMessage([]byte(record.Message))
	entry.AppendSyslogIdentifier(h.identifier)

	if h.addSource && record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		if frame.File != "" {
			entry.AppendSource(frame.File, frame.Line)
		}
	}

	for _, bound := range h.fields {
		appendValue(&entry, h.prefix, bound.rawName, bound.value)
	}
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&entry, h.prefix, h.groupPath, attr)
		return true
	})

	return h.transport.Send(entry.Bytes())
}

// WithAttrs returns a handler that includes the given attributes in
// every record, after any previously bound attributes and before the
// record's own. Values are resolved and groups flattened here, once,
// rather than on every Handle call.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	derived := *h
	derived.fields = make([]field, 0, len(h.fields)+len(attrs))
	derived.fields = append(derived.fields, h.fields...)
	for _, attr := range attrs {
		derived.fields = flattenAttr(derived.fields, h.groupPath, attr)
	}
	return &derived
}

// WithGroup returns a handler that qualifies subsequent attribute
// names with the group name. Groups nest by joining with '.', which
// the name translator rewrites to '_'.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	derived := *h
	derived.groupPath = h.groupPath + name + "."
	return &derived
}

// flattenAttr appends attr (and, for group values, its members) to
// fields with fully qualified raw names and resolved values.
func flattenAttr(fields []field, groupPath string, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}
	if attr.Value.Kind() == slog.KindGroup {
		memberPath := groupPath
		if attr.Key != "" {
			memberPath += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			fields = flattenAttr(fields, memberPath, member)
		}
		return fields
	}
	return append(fields, field{rawName: groupPath + attr.Key, value: attr.Value})
}

// appendAttr encodes one record attribute, recursing into groups.
func appendAttr(entry *wire.Entry, prefix, groupPath string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		memberPath := groupPath
		if attr.Key != "" {
			memberPath += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			appendAttr(entry, prefix, memberPath, member)
		}
		return
	}
	appendValue(entry, prefix, groupPath+attr.Key, attr.Value)
}

// appendValue renders a resolved, non-group value and appends it as
// one structured field. The value model is closed: every kind has a
// defined rendering, so no input can abort logging.
func appendValue(entry *wire.Entry, prefix, rawName string, value slog.Value) {
	var rendered []byte
	switch value.Kind() {
	case slog.KindString:
		rendered = []byte(value.String())
	case slog.KindInt64:
		rendered = strconv.AppendInt(nil, value.Int64(), 10)
	case slog.KindUint64:
		rendered = strconv.AppendUint(nil, value.Uint64(), 10)
	case slog.KindFloat64:
		rendered = strconv.AppendFloat(nil, value.Float64(), 'g', -1, 64)
	case slog.KindBool:
		rendered = strconv.AppendBool(nil, value.Bool())
	default:
		// Time, Duration, and arbitrary Any values use their debug
		// formatting.
		rendered = fmt.Appendf(nil, "%+v", value.Any())
	}
	entry.AppendField(rawName, prefix, rendered)
}
