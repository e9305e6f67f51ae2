// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the event source, the page machine and the terminal UI into a
// single process lifecycle: the source produces events, one consumer applies
// them to the machine and publishes snapshots, and the UI renders them.
package client
