// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events merges the timer, keyboard input and cancellation into a
// single ordered stream of [Event] values consumed by the page machine.
//
// A [Source] is lazy (nothing happens before Run), infinite until its
// context is cancelled, and cannot be restarted. The last event it delivers
// is always exactly one Terminate.
package events
