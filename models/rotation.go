// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RotateRequest carries the current and the new credentials for a rotation.
type RotateRequest struct {
	OldPassword string
	OldPIN      string
	NewPassword string
	NewPIN      string
}

// RotationPhase is the step a credential rotation has reached.
type RotationPhase int

const (
	RotationVerifying RotationPhase = iota
	RotationVerified
	RotationRotating
	RotationDone
	RotationFailed
)

func (p RotationPhase) String() string {
	switch p {
	case RotationVerifying:
		return "verifying"
	case RotationVerified:
		return "verified"
	case RotationRotating:
		return "rotating"
	case RotationDone:
		return "done"
	case RotationFailed:
		return "failed"
	default:
		return "unknown"
	}
}
