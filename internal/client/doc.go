// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the passenv command line client.
//
// Every command opens the configured stores, asks for secrets through a
// masked prompt and talks to the vault through [service.Vault]. The shell
// command keeps one process, and so one unlocked session, across commands
// until the auto-lock worker locks it.
package client
