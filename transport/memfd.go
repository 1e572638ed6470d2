// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// regionSeals are the seals applied to a fallback region before its
// descriptor leaves the process. journald refuses to map a descriptor
// that can still change under it, so the region must be sealed against
// resizing and writing, and against the removal of those seals.
const regionSeals = unix.F_SEAL_SHRINK | unix.F_SEAL_GROW | unix.F_SEAL_WRITE | unix.F_SEAL_SEAL

// fallbackRegion is an anonymous, sealed, memory-backed file holding
// one oversized journal entry. It lives strictly within a single Send
// call: created, written, sealed, handed off, closed. Close must run
// on every exit path so the descriptor never leaks into later
// operations.
type fallbackRegion struct {
	file *os.File
}

// newFallbackRegion creates a memfd containing the payload, sealed
// against any further modification. On any failure the partially
// constructed region is released before returning.
func newFallbackRegion(payload []byte) (*fallbackRegion, error) {
	// MFD_ALLOW_SEALING is required to apply seals at all; CLOEXEC
	// keeps the descriptor out of any child processes spawned
	// concurrently by the host application.
	fd, err := unix.MemfdCreate("journal-entry", unix.MFD_ALLOW_SEALING|unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("creating journal entry region: %w", err)
	}

	region := &fallbackRegion{file: os.NewFile(uintptr(fd), "journal-entry")}

	if _, err := region.file.Write(payload); err != nil {
		region.Close()
		return nil, fmt.Errorf("writing journal entry region: %w", err)
	}

	if _, err := unix.FcntlInt(region.file.Fd(), unix.F_ADD_SEALS, regionSeals); err != nil {
		region.Close()
		return nil, fmt.Errorf("sealing journal entry region: %w", err)
	}

	return region, nil
}

// fd returns the region's descriptor for ancillary-data transfer. The
// descriptor stays owned by the region; callers must not close it.
func (r *fallbackRegion) fd() int {
	return int(r.file.Fd())
}

// Close releases the region's descriptor. The backing memory is freed
// by the kernel once every process holding the descriptor has closed
// it.
func (r *fallbackRegion) Close() error {
	return r.file.Close()
}
