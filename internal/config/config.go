// Package config parses the program's command-line surface: spec.md §6's
// `program <ip>:<port> [--no-input] [--stats] [--audio <ring-samples>]`.
package config

import (
	"flag"
	"fmt"
)

// defaultAudioRingSamples sizes the SPSC ring in stereo S16LE sample
// frames when --audio is not given: 20ms at 48kHz stereo.
const defaultAudioRingSamples = 48_000 / 50

// Config holds the parsed CLI surface.
type Config struct {
	Addr             string
	NoInput          bool
	Stats            bool
	AudioRingSamples int
}

// Parse parses args (excluding the program name, i.e. os.Args[1:]) into
// a Config. It returns an error for a missing address or any flag
// parsing failure.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("prismclient", flag.ContinueOnError)
	noInput := fs.Bool("no-input", false, "disable local input forwarding")
	stats := fs.Bool("stats", false, "enable the periodic statistics overlay")
	audioSamples := fs.Int("audio", defaultAudioRingSamples, "audio ring capacity in sample frames")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return Config{}, fmt.Errorf("config: expected exactly one <ip>:<port> argument, got %d", len(rest))
	}

	if *audioSamples <= 0 {
		return Config{}, fmt.Errorf("config: --audio must be positive, got %d", *audioSamples)
	}

	return Config{
		Addr:             rest[0],
		NoInput:          *noInput,
		Stats:            *stats,
		AudioRingSamples: *audioSamples,
	}, nil
}
