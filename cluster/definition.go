// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvjet/errors"
)

// Algorithm selects the distance measure of a sequential recombination.
type Algorithm int

const (
	Kt Algorithm = iota
	CambridgeAachen
	AntiKt
	GenKt
	EEKt
	EEGenKt
)

var algorithmNames = map[Algorithm]string{
	Kt:              "kt",
	CambridgeAachen: "cambridge",
	AntiKt:          "antikt",
	GenKt:           "genkt",
	EEKt:            "ee_kt",
	EEGenKt:         "ee_genkt",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// IsEE reports whether a clusters by opening angle and energy.
func (a Algorithm) IsEE() bool { return a == EEKt || a == EEGenKt }

// ParseAlgorithm accepts the String form, case-insensitively, plus the
// aliases "ca", "cambridge_aachen", "anti_kt" and "anti-kt".
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "ca", "cambridge_aachen", "cambridge-aachen":
		return CambridgeAachen, nil
	case "anti_kt", "anti-kt":
		return AntiKt, nil
	}
	for a, name := range algorithmNames {
		if name == key {
			return a, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown algorithm %q", s)
}

// Recombiner selects how two pseudojets merge.
type Recombiner int

const (
	// EScheme adds four-momenta.
	EScheme Recombiner = iota
	// WTAPtScheme keeps the direction of the harder input and sums pt.
	WTAPtScheme
)

func (r Recombiner) String() string {
	switch r {
	case EScheme:
		return "E_scheme"
	case WTAPtScheme:
		return "WTA_pt_scheme"
	default:
		return "unknown"
	}
}

// ParseRecombiner accepts "E_scheme"/"e" and "WTA_pt_scheme"/"wta", any case.
func ParseRecombiner(s string) (Recombiner, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "e", "e_scheme", "escheme":
		return EScheme, nil
	case "wta", "wta_pt", "wta_pt_scheme", "wtaptscheme":
		return WTAPtScheme, nil
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown recombiner %q", s)
}

// Definition fully describes a clustering.
type Definition struct {
	Algorithm  Algorithm
	R          float64 // radius; ignored by EEKt
	P          float64 // exponent of GenKt and EEGenKt
	Recombiner Recombiner
}

// maxR bounds the radius of pp algorithms.
const maxR = 1000.0

// Validate rejects definitions the reference service cannot cluster with.
func (d Definition) Validate() error {
	if _, ok := algorithmNames[d.Algorithm]; !ok {
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown algorithm %d", int(d.Algorithm))
	}
	if d.Recombiner != EScheme && d.Recombiner != WTAPtScheme {
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown recombiner %d", int(d.Recombiner))
	}
	if d.Algorithm != EEKt && (d.R <= 0 || d.R > maxR || math.IsNaN(d.R)) {
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: radius %g outside (0, %g]", d.R, maxR)
	}
	if math.IsNaN(d.P) || math.IsInf(d.P, 0) {
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: exponent %g is not finite", d.P)
	}
	return nil
}

// ExclusiveSafe reports whether exclusive jets and dcut are well defined
// for d: kt, Cambridge/Aachen, ee kt, or a generalised kt with p >= 0.
func (d Definition) ExclusiveSafe() bool {
	switch d.Algorithm {
	case Kt, CambridgeAachen, EEKt:
		return true
	case GenKt, EEGenKt:
		return d.P >= 0
	default:
		return false
	}
}

// exponent returns the momentum-scale exponent p of the algorithm.
func (d Definition) exponent() float64 {
	switch d.Algorithm {
	case Kt, EEKt:
		return 1
	case CambridgeAachen:
		return 0
	case AntiKt:
		return -1
	default:
		return d.P
	}
}

func (d Definition) String() string {
	var sb strings.Builder
	sb.WriteString(d.Algorithm.String())
	if d.Algorithm != EEKt {
		sb.WriteString(" R=")
		sb.WriteString(formatFloat(d.R))
	}
	if d.Algorithm == GenKt || d.Algorithm == EEGenKt {
		sb.WriteString(" p=")
		sb.WriteString(formatFloat(d.P))
	}
	sb.WriteString(" ")
	sb.WriteString(d.Recombiner.String())
	return sb.String()
}
