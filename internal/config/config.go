// Package config holds the settings recognized by the dBFT consensus
// context, decoded from TOML the way eth/ethconfig.Config is in the
// teacher node.
package config

import (
	"os"
	"time"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// Config is the set of options the consensus context and its
// collaborators accept. Field names and toml tags match spec §6's
// enumerated Settings plus the ambient knobs every teacher config
// struct carries (cache sizing, timeouts).
type Config struct {
	// RecoveryLogs is the store path used to persist round-state
	// checkpoints for crash recovery.
	RecoveryLogs string `toml:",omitempty"`

	// Network is the protocol magic distinguishing chains/testnets.
	Network uint32

	// ValidatorsCount is the expected size of the validator committee.
	ValidatorsCount int

	// CommitteeMembersCount is the size of the full committee (may
	// exceed ValidatorsCount when a rotating subset produces blocks).
	CommitteeMembersCount int

	// DatabaseCache is the in-memory cache budget, in MB, for the
	// durable checkpoint store.
	DatabaseCache int `toml:",omitempty"`

	// MessageCacheSize bounds the decoded-message LRU (component 4.C).
	MessageCacheSize int `toml:",omitempty"`

	// CheckpointTimeout bounds how long Load may take before falling
	// back to a fresh reset.
	CheckpointTimeout time.Duration `toml:",omitempty"`
}

// Defaults mirrors ethconfig.Defaults: a ready-to-use configuration for
// a 7-validator committee, safe for tests and examples.
var Defaults = Config{
	Network:               860833102,
	ValidatorsCount:       7,
	CommitteeMembersCount: 21,
	DatabaseCache:         16,
	MessageCacheSize:      4096,
	CheckpointTimeout:     5 * time.Second,
}

// Load reads a TOML configuration file, overlaying it on Defaults.
func Load(path string) (Config, error) {
	cfg := Defaults
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "opening config %q", path)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %q", path)
	}
	return cfg, nil
}
