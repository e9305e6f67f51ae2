// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console holds the line-oriented terminal I/O used before and after
// the interactive session: hidden passphrase prompts, coloured status lines
// and a progress spinner for slow key generation.
package console
