package cmn

import (
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/multidev/tensor/cmn/nlog"
)

// Config holds process-wide tunables. It is never mutated by the core
// synchronization protocol itself, which assumes one logical actor at a
// time; it only shapes how generously that actor logs and whether it
// pays for debug-mode verification.
type Config struct {
	// Verbosity is installed by LoadConfig as the cmn/nlog threshold that
	// nlog.V consults before an expensive log line.
	Verbosity int `json:"verbosity"`
	// MaxCopies, when positive and smaller than sharedtensor.MaxCopies,
	// lowers the copy-table ceiling so a test can exercise the
	// capacity-exceeded path without allocating 64 real devices. Zero (or
	// anything >= sharedtensor.MaxCopies) means "use the compiled-in
	// ceiling."
	MaxCopies int `json:"max_copies"`
	// VerifyTransfers enables a post-transfer checksum comparison in
	// memsys (xxhash of source vs. destination bytes) when built with the
	// "debug" tag. Expensive; off by default.
	VerifyTransfers bool `json:"verify_transfers"`
	// BatchParallelism bounds how many tensors sharedtensor.BatchWarm
	// synchronizes onto a device concurrently. Zero means "as many as the
	// batch holds."
	BatchParallelism int `json:"batch_parallelism"`
}

// DefaultConfig is used until LoadConfig or Put replaces it.
func DefaultConfig() *Config {
	return &Config{Verbosity: 0, MaxCopies: 0, VerifyTransfers: false, BatchParallelism: 0}
}

// gco is the global config owner, grounded on aistore's cmn.GCO singleton
// (see "config = cmn.GCO.Get()" in xact/xs/tcb.go).
type globalConfigOwner struct {
	mtx sync.RWMutex
	cfg *Config
}

func (g *globalConfigOwner) Get() *Config {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.cfg
}

func (g *globalConfigOwner) Put(cfg *Config) {
	g.mtx.Lock()
	g.cfg = cfg
	g.mtx.Unlock()
}

var GCO = &globalConfigOwner{cfg: DefaultConfig()}

// LoadConfig reads a JSON-encoded Config from path and installs it as the
// process-wide config. This is the single entry point for configuration:
// no flags, no env vars, no CLI.
func LoadConfig(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	if err := jsoniter.Unmarshal(b, cfg); err != nil {
		return err
	}
	GCO.Put(cfg)
	nlog.SetVerbosity(cfg.Verbosity)
	return nil
}

// SaveConfig writes cfg as JSON to path.
func SaveConfig(path string, cfg *Config) error {
	b, err := jsoniter.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
