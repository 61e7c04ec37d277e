// SPDX-License-Identifier: MIT
// Package: lvjet/builder
//
// constants.go - method tokens and deterministic defaults.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodEvents is the canonical name for the Events constructor.
	MethodEvents = "Events"
	// MethodMomenta is the canonical name for the Momenta constructor.
	MethodMomenta = "Momenta"
	// MethodScalars is the canonical name for the Scalars constructor.
	MethodScalars = "Scalars"
	// MethodRandomEvents is the canonical name for the RandomEvents constructor.
	MethodRandomEvents = "RandomEvents"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultRecordName names particle records so that they are recognised
	// as four-momenta downstream.
	DefaultRecordName = "Momentum4D"

	// MinGroups is the smallest group count accepted by RandomEvents.
	MinGroups = 1

	// MinParticles is the smallest per-group particle bound of RandomEvents.
	MinParticles = 1

	// Kinematic ranges of RandomEvents: pt in [MinPt, MaxPt), rapidity in
	// [-MaxRapidity, MaxRapidity).
	MinPt       = 1.0
	MaxPt       = 100.0
	MaxRapidity = 2.5
)
