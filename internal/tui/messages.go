package tui

import "github.com/MKhiriev/go-pass-vault/internal/machine"

type snapshotMsg struct {
	snap machine.Snapshot
}
