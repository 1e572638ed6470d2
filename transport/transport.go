// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// DefaultSocketPath is journald's well-known native protocol socket.
const DefaultSocketPath = "/run/systemd/journal/socket"

// Config configures a Transport. The zero value selects the system
// journald socket.
type Config struct {
	// SocketPath overrides the daemon socket address. Empty means
	// DefaultSocketPath. Tests point this at a local receiver socket.
	SocketPath string
}

// Transport sends encoded journal entries to the daemon. Construct it
// once with New and share it by reference; it holds a single connected
// datagram socket and no per-call state.
type Transport struct {
	conn       *net.UnixConn
	socketPath string
}

// New opens a datagram socket and connects it to the journald socket.
// Connecting up front surfaces a missing daemon socket or a permission
// problem as a construction error rather than on the first log record.
// There is no implicit retry: a failed construction means the caller
// must fix the environment and construct again.
func New(config Config) (*Transport, error) {
	socketPath := config.SocketPath
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	address := &net.UnixAddr{Name: socketPath, Net: "unixgram"}
	conn, err := net.DialUnix("unixgram", nil, address)
	if err != nil {
		return nil, fmt.Errorf("connecting to journal socket %s: %w", socketPath, err)
	}

	return &Transport{conn: conn, socketPath: socketPath}, nil
}

// SocketPath returns the daemon address this transport is connected to.
func (t *Transport) SocketPath() string {
	return t.socketPath
}

// Send delivers one encoded entry to the daemon. The payload is handed
// to the kernel atomically: as a single datagram when it fits, and
// otherwise through a sealed memory region whose descriptor is passed
// as ancillary data. Any failure other than the kernel's too-large
// rejection is returned to the caller; the library never retries.
func (t *Transport) Send(payload []byte) error {
	_, err := t.conn.Write(payload)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EMSGSIZE) {
		return fmt.Errorf("sending journal entry: %w", err)
	}
	return t.sendViaRegion(payload)
}

// sendViaRegion delivers a payload that exceeds the datagram size
// limit. The payload is written into an anonymous sealed memory region
// and the region's descriptor rides an empty datagram as SCM_RIGHTS
// ancillary data. The region is released before returning on every
// path: once sendmsg has been issued, the kernel (and then the daemon)
// holds its own reference to the open file.
func (t *Transport) sendViaRegion(payload []byte) error {
	region, err := newFallbackRegion(payload)
	if err != nil {
		return err
	}
	defer region.Close()

	rights := unix.UnixRights(region.fd())
	if _, _, err := t.conn.WriteMsgUnix(nil, rights, nil); err != nil {
		return fmt.Errorf("passing journal entry descriptor: %w", err)
	}
	return nil
}

// Close releases the socket. Sends after Close fail.
func (t *Transport) Close() error {
	return t.conn.Close()
}
