package cascade

import (
	"fmt"
	"math"
	"math/rand"

	"go-hep.org/x/hep/fmom"

	"github.com/katalvlaran/hadrosim/event"
	"github.com/katalvlaran/hadrosim/nucleus"
	"github.com/katalvlaran/hadrosim/xsec"
)

// phaseSpaceMargin is the invariant-mass headroom (GeV) required above the
// bare mass sum before a three-body final state is offered.
const phaseSpaceMargin = 0.005

// Cluster-mass sampling window for sequential two-body splits: the
// intermediate mass is drawn strictly inside the open interval to keep both
// splits away from the p* = 0 boundary.
const (
	clusterLow  = 0.1
	clusterSpan = 0.8
)

// Driver transports every eligible hadron of an event record to a terminal
// status. It is immutable after New and safe to share across concurrently
// transported events, provided each event gets its own record and stream.
//
// Per hadron, random draws follow this fixed order:
//
//	per step:        1 draw step distance, 1 draw fate
//	elastic:         2 draws direction
//	charge-exchange: [1 draw π0 partner sign] + 2 draws direction, per attempt
//	inelastic:       1 draw struck nucleon, then per attempt
//	                 [1 draw multiplicity when 3-body is open]
//	                 [1 draw cluster mass for 3-body]
//	                 2 draws per two-body split
//	absorption:      0 draws
//
// Pass-through of out-of-scope species, formation-zone advancement, and
// transparent-nucleus mode consume zero draws.
type Driver struct {
	nuc   *nucleus.Nucleus
	table *xsec.Table
	opts  Options
}

// New validates configuration and builds a driver.
//
// Errors: ErrNilNucleus, ErrNilTable, ErrBadStepBudget, ErrBadRetryBudget,
// ErrBadFormationTime, ErrBadFormationScale, ErrBadMedium.
func New(nuc *nucleus.Nucleus, table *xsec.Table, opts ...Option) (*Driver, error) {
	if nuc == nil {
		return nil, ErrNilNucleus
	}
	if table == nil {
		return nil, ErrNilTable
	}

	o := gatherOptions(opts...)
	if o.stepBudget <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStepBudget, o.stepBudget)
	}
	if o.retryBudget <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRetryBudget, o.retryBudget)
	}
	if o.formationTime < 0 || math.IsNaN(o.formationTime) || math.IsInf(o.formationTime, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadFormationTime, o.formationTime)
	}
	if o.formationScale < 0 || math.IsNaN(o.formationScale) || math.IsInf(o.formationScale, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadFormationScale, o.formationScale)
	}

	// Collaborator sanity, fatal now rather than mid-transport: the medium
	// must report a physical central density.
	if rho := nuc.Density(0); rho < 0 || math.IsNaN(rho) || math.IsInf(rho, 0) {
		return nil, fmt.Errorf("%w: ρ(0)=%g", ErrBadMedium, rho)
	}

	return &Driver{nuc: nuc, table: table, opts: o}, nil
}

// Run transports one event using the independent stream derived from the
// driver's base seed and the given stream identifier. Use distinct stream
// identifiers for distinct events; identical (seed, stream, record) inputs
// reproduce identical ledgers bit-for-bit.
func (d *Driver) Run(rec *event.Record, stream uint64) error {
	return d.RunWithRand(rec, StreamRNG(d.opts.seed, stream))
}

// RunWithRand transports one event with a caller-owned random stream.
// The record is processed as a FIFO queue of PreCascade entries; secondaries
// join the tail, so a hadron fully resolves before its children run.
//
// On ErrPhaseSpaceExhausted the record is flagged and the event abandoned;
// the caller decides whether to skip, log, and continue with other events.
func (d *Driver) RunWithRand(rec *event.Record, rng *rand.Rand) error {
	if rec == nil {
		return ErrNilRecord
	}
	if err := rec.Flawed(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlawedRecord, err)
	}

	if d.opts.transparent {
		return d.runTransparent(rec)
	}

	queue := rec.WithStatus(event.StatusPreCascade)
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		p, err := rec.At(idx)
		if err != nil {
			return err
		}
		if p.Status != event.StatusPreCascade {
			continue
		}

		// Out-of-scope species pass through untouched, consuming no draws.
		if !event.CanRescatter(p.PDG) {
			if err = rec.SetStatus(idx, event.StatusEscaped); err != nil {
				return err
			}
			continue
		}

		before := rec.Len()
		if err = d.transport(rec, rng, idx, p); err != nil {
			rec.Flag(err)
			d.opts.logger.Warn().Err(err).Int("hadron", idx).Msg("event abandoned")

			return err
		}
		for i := before; i < rec.Len(); i++ {
			q, qerr := rec.At(i)
			if qerr != nil {
				return qerr
			}
			if q.Status == event.StatusPreCascade {
				queue = append(queue, i)
			}
		}
	}

	d.opts.logger.Debug().Int("particles", rec.Len()).Msg("event cascaded")

	return nil
}

// runTransparent reports every PreCascade entry as immediately Escaped with
// unchanged kinematics. Zero draws.
func (d *Driver) runTransparent(rec *event.Record) error {
	for _, idx := range rec.WithStatus(event.StatusPreCascade) {
		if err := rec.SetStatus(idx, event.StatusEscaped); err != nil {
			return err
		}
	}
	d.opts.logger.Debug().Msg("transparent nucleus: all hadrons escaped")

	return nil
}

// transport runs the formation-zone / step / fate loop for one hadron.
func (d *Driver) transport(rec *event.Record, rng *rand.Rand, origin int, p event.Particle) error {
	h := Hadron{PDG: p.PDG, Momentum: p.Momentum, Position: p.Position, Time: p.Time}
	var st state

	// Formation zone: free-stream through the whole zone in one move, no
	// randomness involved. The hadron may leave the nucleus while forming.
	parent := p.Momentum
	if p.Mother != event.NoMother {
		mp, err := rec.At(p.Mother)
		if err != nil {
			return err
		}
		parent = mp.Momentum
	}
	if zone := FormationLength(h.Momentum, parent, d.opts.formationTime, d.opts.formationScale); zone > 0 {
		if err := rec.SetStatus(origin, event.StatusInFormationZone); err != nil {
			return err
		}
		advance(&h, zone)
		st.path += zone
		if !d.nuc.Inside(h.radial()) {
			return d.finalizeEscape(rec, origin, &h, &st)
		}
	}
	if err := rec.SetStatus(origin, event.StatusPropagating); err != nil {
		return err
	}

	for {
		if st.steps >= d.opts.stepBudget {
			d.opts.logger.Debug().Int("hadron", origin).Msg("step budget exhausted, fail-safe escape")

			return d.finalizeEscape(rec, origin, &h, &st)
		}
		st.steps++

		// Piecewise-constant λ: evaluated here, held for one sampled step.
		rho := d.nuc.Density(h.radial())
		paths, err := xsec.MeanFreePaths(d.table, h.PDG, h.kineticEnergy(), rho)
		if err != nil {
			return err
		}
		total := xsec.Total(paths)
		if math.IsInf(total, 1) {
			// Zero density or fully transparent table: nothing to sample,
			// the hadron free-streams out. No draw is consumed.
			return d.finalizeEscape(rec, origin, &h, &st)
		}

		step := sampleStep(rng, total)
		advance(&h, step)
		st.path += step
		if !d.nuc.Inside(h.radial()) {
			return d.finalizeEscape(rec, origin, &h, &st)
		}

		// An interaction occurs at this point; pick the channel.
		fate, err := xsec.SelectFate(paths, total, rng.Float64())
		if err != nil {
			return err
		}
		if d.opts.fateHook != nil {
			d.opts.fateHook(origin, fate)
		}

		switch fate {
		case xsec.Elastic:
			d.scatterElastic(rng, &h, rec.Remnant())
			st.scatters++

		case xsec.ChargeExchange:
			if err = d.chargeExchange(rng, &h, rec.Remnant()); err != nil {
				return err
			}
			st.scatters++

		case xsec.Absorption:
			rec.Remnant().Absorb(h.Momentum, event.Charge(h.PDG))
			d.opts.logger.Debug().Int("hadron", origin).Int("steps", st.steps).Msg("absorbed")

			return rec.SetStatus(origin, event.StatusAbsorbed)

		case xsec.Inelastic:
			if rec.Remnant().A <= 0 {
				// Nothing left to knock out; the medium can still deflect.
				d.scatterElastic(rng, &h, rec.Remnant())
				st.scatters++
				continue
			}

			return d.inelastic(rec, rng, origin, &h)
		}
	}
}

// finalizeEscape terminates a hadron that left the medium (or spent its
// step budget). A hadron that never interacted just moves its own entry to
// Escaped; one that scattered in flight appends an escaped copy carrying
// the final kinematics and retires the origin entry as Rescattered, keeping
// ledger momenta immutable.
func (d *Driver) finalizeEscape(rec *event.Record, origin int, h *Hadron, st *state) error {
	if st.scatters == 0 {
		return rec.SetStatus(origin, event.StatusEscaped)
	}

	if _, err := rec.Append(event.Particle{
		PDG:      h.PDG,
		Status:   event.StatusEscaped,
		Mother:   origin,
		Momentum: h.Momentum,
		Position: h.Position,
		Time:     h.Time,
	}); err != nil {
		return err
	}

	return rec.SetStatus(origin, event.StatusRescattered)
}

// scatterElastic redirects the hadron isotropically at fixed energy; the
// 3-momentum difference recoils against the remnant.
func (d *Driver) scatterElastic(rng *rand.Rand, h *Hadron, rm *event.Remnant) {
	old := h.Momentum
	p := pmag(old)
	dir := isotropicDir(rng)
	h.Momentum = fmom.NewPxPyPzE(p*dir.X, p*dir.Y, p*dir.Z, old.E())
	rm.Recoil(subP4(old, h.Momentum), 0)
}

// chargeExchange swaps the pion's charge state against the medium:
// π± → π0 deterministically, π0 → π± with a drawn sign. The hadron keeps
// its total energy; the momentum magnitude moves to the new mass shell and
// the direction is redrawn. Momentum and charge differences recoil against
// the remnant.
//
// A π0 too slow to reach the charged-pion mass shell rejects the outcome;
// the sign is resampled up to the retry budget, after which the event is
// flagged as phase-space exhausted rather than silently mis-booked.
func (d *Driver) chargeExchange(rng *rand.Rand, h *Hadron, rm *event.Remnant) error {
	old := h.Momentum
	oldPDG := h.PDG

	for try := 0; try < d.opts.retryBudget; try++ {
		newPDG := event.PDGPiZero
		if oldPDG == event.PDGPiZero {
			if rng.Float64() < 0.5 {
				newPDG = event.PDGPiPlus
			} else {
				newPDG = event.PDGPiMinus
			}
		}
		m, _ := event.Mass(newPDG)
		e := old.E()
		if e <= m {
			continue // below the new mass shell; resample
		}

		pnew := math.Sqrt(e*e - m*m)
		dir := isotropicDir(rng)
		h.PDG = newPDG
		h.Momentum = fmom.NewPxPyPzE(pnew*dir.X, pnew*dir.Y, pnew*dir.Z, e)
		rm.Recoil(subP4(old, h.Momentum), event.Charge(oldPDG)-event.Charge(newPDG))

		return nil
	}

	return fmt.Errorf("%w: charge exchange of pdg %d at E=%g GeV", ErrPhaseSpaceExhausted, oldPDG, old.E())
}

// inelastic replaces the hadron with a 2- or 3-body final state against a
// nucleon bound out of the remnant at rest. Multiplicity and cluster mass
// are resampled on conservation violations up to the retry budget.
//
// Multi-nucleon channels are not modeled separately: the remnant, not an
// explicit nucleon pair, balances whatever the final state does not carry.
func (d *Driver) inelastic(rec *event.Record, rng *rand.Rand, origin int, h *Hadron) error {
	rm := rec.Remnant()

	// Struck nucleon species follows the remnant's proton fraction.
	ratio := float64(rm.Charge) / float64(rm.A)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	nucleonPDG := event.PDGNeutron
	if rng.Float64() < ratio {
		nucleonPDG = event.PDGProton
	}
	mN, _ := event.Mass(nucleonPDG)
	m1, _ := event.Mass(h.PDG)

	total := fmom.NewPxPyPzE(h.Momentum.Px(), h.Momentum.Py(), h.Momentum.Pz(), h.Momentum.E()+mN)
	w := total.M()

	for try := 0; try < d.opts.retryBudget; try++ {
		threeOpen := w > m1+event.MassPiZero+mN+phaseSpaceMargin
		if threeOpen && rng.Float64() < 0.5 {
			// h' + π0 + N through an intermediate (π0 N) cluster.
			low := event.MassPiZero + mN
			span := w - m1 - low
			mclust := low + (clusterLow+clusterSpan*rng.Float64())*span

			p1, pclust, err := twoBody(rng, total, m1, mclust)
			if err != nil {
				continue
			}
			p2, p3, err := twoBody(rng, pclust, event.MassPiZero, mN)
			if err != nil {
				continue
			}

			return d.commitInelastic(rec, origin, h, nucleonPDG,
				[]int{h.PDG, event.PDGPiZero, nucleonPDG},
				[]fmom.PxPyPzE{p1, p2, p3})
		}

		p1, p2, err := twoBody(rng, total, m1, mN)
		if err != nil {
			continue
		}

		return d.commitInelastic(rec, origin, h, nucleonPDG,
			[]int{h.PDG, nucleonPDG},
			[]fmom.PxPyPzE{p1, p2})
	}

	return fmt.Errorf("%w: inelastic pdg %d on pdg %d, W=%g GeV", ErrPhaseSpaceExhausted, h.PDG, nucleonPDG, w)
}

// commitInelastic books a successfully sampled inelastic final state: the
// nucleon leaves the remnant, the products join the ledger as PreCascade
// secondaries at the interaction point, and the origin entry retires.
func (d *Driver) commitInelastic(rec *event.Record, origin int, h *Hadron, nucleonPDG int, species []int, momenta []fmom.PxPyPzE) error {
	if err := rec.Remnant().BindNucleon(nucleonPDG); err != nil {
		return err
	}
	for i, pdg := range species {
		if _, err := rec.Append(event.Particle{
			PDG:      pdg,
			Status:   event.StatusPreCascade,
			Mother:   origin,
			Momentum: momenta[i],
			Position: h.Position,
			Time:     h.Time,
		}); err != nil {
			return err
		}
	}
	d.opts.logger.Debug().Int("hadron", origin).Int("multiplicity", len(species)).Msg("inelastic rescatter")

	return rec.SetStatus(origin, event.StatusRescattered)
}
