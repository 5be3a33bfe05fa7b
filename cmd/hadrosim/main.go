// Command hadrosim fires mono-energetic pions at a nucleus and reports the
// terminal-state statistics of the intranuclear cascade.
//
// Configuration comes from HADROSIM_* environment variables with flag
// overrides; flags win when both are set.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"go-hep.org/x/hep/fmom"

	"github.com/katalvlaran/hadrosim/cascade"
	"github.com/katalvlaran/hadrosim/event"
	"github.com/katalvlaran/hadrosim/nucleus"
	"github.com/katalvlaran/hadrosim/xsec"
)

type config struct {
	Events        int     `env:"HADROSIM_EVENTS" envDefault:"1000"`
	KineticE      float64 `env:"HADROSIM_KE" envDefault:"0.165"`
	MassNumber    int     `env:"HADROSIM_A" envDefault:"12"`
	Charge        int     `env:"HADROSIM_Z" envDefault:"6"`
	Profile       string  `env:"HADROSIM_PROFILE" envDefault:"uniform"`
	Seed          int64   `env:"HADROSIM_SEED" envDefault:"1"`
	SigmaScale    float64 `env:"HADROSIM_SIGMA_SCALE" envDefault:"1"`
	FormationTime float64 `env:"HADROSIM_FORMATION_TIME" envDefault:"0.342"`
	Transparent   bool    `env:"HADROSIM_TRANSPARENT" envDefault:"false"`
	LogLevel      string  `env:"HADROSIM_LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Events, "events", cfg.Events, "number of events to transport")
	flag.Float64Var(&cfg.KineticE, "ke", cfg.KineticE, "pion kinetic energy, GeV")
	flag.IntVar(&cfg.MassNumber, "A", cfg.MassNumber, "target mass number")
	flag.IntVar(&cfg.Charge, "Z", cfg.Charge, "target charge number")
	flag.StringVar(&cfg.Profile, "profile", cfg.Profile, "density profile: uniform or woods-saxon")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed")
	flag.Float64Var(&cfg.SigmaScale, "sigma-scale", cfg.SigmaScale, "global cross-section scale factor")
	flag.Float64Var(&cfg.FormationTime, "formation-time", cfg.FormationTime, "proper formation time, fm/c")
	flag.BoolVar(&cfg.Transparent, "transparent", cfg.Transparent, "disable all interactions")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("hadrosim failed")
	}
}

func run(cfg config, logger zerolog.Logger) error {
	profile := nucleus.ProfileUniform
	if cfg.Profile == "woods-saxon" {
		profile = nucleus.ProfileWoodsSaxon
	}
	nuc, err := nucleus.New(cfg.MassNumber, cfg.Charge, nucleus.WithProfile(profile))
	if err != nil {
		return err
	}

	tbl, err := xsec.DefaultTable().Scaled(cfg.SigmaScale)
	if err != nil {
		return err
	}

	fates := map[xsec.Channel]int{}
	opts := []cascade.Option{
		cascade.WithSeed(cfg.Seed),
		cascade.WithFormationTime(cfg.FormationTime),
		cascade.WithLogger(logger),
		cascade.WithFateHook(func(_ int, fate xsec.Channel) { fates[fate]++ }),
	}
	if cfg.Transparent {
		opts = append(opts, cascade.WithTransparentNucleus())
	}
	drv, err := cascade.New(nuc, tbl, opts...)
	if err != nil {
		return err
	}

	logger.Info().
		Int("events", cfg.Events).
		Float64("ke_gev", cfg.KineticE).
		Int("A", cfg.MassNumber).
		Int("Z", cfg.Charge).
		Str("profile", cfg.Profile).
		Float64("radius_fm", nuc.Radius()).
		Msg("transporting")

	e := cfg.KineticE + event.MassPiPlus
	pz := math.Sqrt(e*e - event.MassPiPlus*event.MassPiPlus)

	var untouched, absorbed, rescattered, flagged, secondaries int
	for i := 0; i < cfg.Events; i++ {
		rec := event.NewRecord(event.NewRemnant(cfg.MassNumber, cfg.Charge))
		if _, err = rec.Append(event.Particle{
			PDG:      event.PDGPiPlus,
			Status:   event.StatusPreCascade,
			Mother:   event.NoMother,
			Momentum: fmom.NewPxPyPzE(0, 0, pz, e),
		}); err != nil {
			return err
		}

		if runErr := drv.Run(rec, uint64(i)); runErr != nil {
			flagged++
			logger.Debug().Err(runErr).Int("event", i).Msg("event abandoned")
			continue
		}

		p, aerr := rec.At(0)
		if aerr != nil {
			return aerr
		}
		switch p.Status {
		case event.StatusEscaped:
			untouched++
		case event.StatusAbsorbed:
			absorbed++
		case event.StatusRescattered:
			rescattered++
		}
		secondaries += rec.Len() - 1
	}

	done := cfg.Events - flagged
	logger.Info().
		Int("transported", done).
		Int("abandoned", flagged).
		Int("untouched", untouched).
		Int("absorbed", absorbed).
		Int("rescattered", rescattered).
		Float64("secondaries_per_event", float64(secondaries)/math.Max(1, float64(done))).
		Msg("done")
	logger.Info().
		Int("elastic", fates[xsec.Elastic]).
		Int("inelastic", fates[xsec.Inelastic]).
		Int("absorption", fates[xsec.Absorption]).
		Int("charge_exchange", fates[xsec.ChargeExchange]).
		Msg("interaction tally")

	return nil
}
