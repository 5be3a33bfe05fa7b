// Package cascade_test provides runnable examples for the transport driver.
// Stochastic transport has no printable expected output, so the examples
// exercise the deterministic surfaces: transparent mode and construction.
package cascade_test

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/katalvlaran/hadrosim/cascade"
	"github.com/katalvlaran/hadrosim/event"
	"github.com/katalvlaran/hadrosim/nucleus"
	"github.com/katalvlaran/hadrosim/xsec"
)

// ExampleDriver_transparent runs one event against a transparent nucleus:
// every submitted hadron escapes untouched, with zero randomness consumed.
func ExampleDriver_transparent() {
	// 1) Carbon-12 with default geometry.
	nuc, err := nucleus.New(12, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) A driver in transparent mode: kinematics pass straight through.
	drv, err := cascade.New(nuc, xsec.DefaultTable(),
		cascade.WithTransparentNucleus(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) One π+ primary at the nuclear center, 165 MeV kinetic energy.
	e := 0.165 + event.MassPiPlus
	pz := math.Sqrt(e*e - event.MassPiPlus*event.MassPiPlus)
	rec := event.NewRecord(event.NewRemnant(12, 6))
	if _, err = rec.Append(event.Particle{
		PDG:      event.PDGPiPlus,
		Status:   event.StatusPreCascade,
		Mother:   event.NoMother,
		Momentum: fmom.NewPxPyPzE(0, 0, pz, e),
	}); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Transport event stream 0.
	if err = drv.Run(rec, 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 5) The primary escaped; the ledger holds exactly the one entry.
	p, _ := rec.At(0)
	fmt.Printf("primary: %s, particles: %d, remnant A: %d\n", p.Status, rec.Len(), rec.Remnant().A)
	// Output: primary: escaped, particles: 1, remnant A: 12
}
