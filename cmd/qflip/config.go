package main

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qflip"
)

// settings is the resolved configuration for one command invocation.
type settings struct {
	core       *qflip.Config
	theta      float64
	shots      int
	steps      int
	difficulty string
	seed       uint64
	dump       bool
}

// source returns a deterministic PCG for a non-zero seed, nil otherwise.
func (s *settings) source() rand.Source {
	if s.seed == 0 {
		return nil
	}

	return rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15)
}

/*
newFlagSet registers the flags every command shares. Precedence, lowest
first: built-in defaults, qflip.yaml, .env, QFLIP_* variables, flags.
*/
func newFlagSet(name string) *pflag.FlagSet {
	defaults := qflip.NewConfig()

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (default ./qflip.yaml if present)")
	flags.Bool("dump", false, "dump the raw result structure")
	flags.Uint64("seed", 0, "seed for a reproducible run, 0 for random")
	flags.Duration("reveal-delay", defaults.RevealDelay, "pause before a flip is revealed")
	flags.Duration("round-delay", defaults.RoundDelay, "pause before a guessing round is revealed")
	flags.Int("max-rounds", defaults.MaxRounds, "rounds per guessing game")
	flags.Int("max-shots", defaults.MaxShots, "largest shot count the explorer accepts")

	return flags
}

func loadSettings(flags *pflag.FlagSet) (*settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	defaults := qflip.NewConfig()

	v := viper.New()
	v.SetEnvPrefix("QFLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("reveal-delay", defaults.RevealDelay)
	v.SetDefault("round-delay", defaults.RoundDelay)
	v.SetDefault("reveal-ttl", defaults.RevealTTL)
	v.SetDefault("max-rounds", defaults.MaxRounds)
	v.SetDefault("min-shots", defaults.MinShots)
	v.SetDefault("max-shots", defaults.MaxShots)
	v.SetDefault("theta", defaults.DefaultTheta)
	v.SetDefault("shots", defaults.DefaultShots)
	v.SetDefault("steps", defaults.SweepSteps)
	v.SetDefault("difficulty", qflip.Easy.String())

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	core := &qflip.Config{
		RevealDelay:  v.GetDuration("reveal-delay"),
		RoundDelay:   v.GetDuration("round-delay"),
		RevealTTL:    v.GetDuration("reveal-ttl"),
		MaxRounds:    v.GetInt("max-rounds"),
		SweepSteps:   v.GetInt("steps"),
		DefaultTheta: defaults.DefaultTheta,
		DefaultShots: defaults.DefaultShots,
		MinShots:     v.GetInt("min-shots"),
		MaxShots:     v.GetInt("max-shots"),
	}

	if err := core.Validate(); err != nil {
		return nil, err
	}

	s := &settings{
		core:       core,
		theta:      v.GetFloat64("theta"),
		shots:      v.GetInt("shots"),
		steps:      v.GetInt("steps"),
		difficulty: v.GetString("difficulty"),
		seed:       v.GetUint64("seed"),
		dump:       v.GetBool("dump"),
	}

	errnie.Debug(
		"loadSettings - rounds %d, reveal %v, round %v, shots [%d, %d], seed %d",
		core.MaxRounds, core.RevealDelay, core.RoundDelay, core.MinShots, core.MaxShots, s.seed,
	)

	return s, nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}

	v.SetConfigName("qflip")
	v.AddConfigPath(".")

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
