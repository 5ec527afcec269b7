// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/svcsim/cpu"
)

const (
	HEAP_SIZE = 0x4_0000 // Default heap region size.
	POOL_SIZE = 0x1_0000 // Default literal pool size.
)

// Config describes the simulated machine.
//
// A configuration file is TOML, for example:
//
//	heap = 4096
//	stack = 8192
//	limit = 16
//	debug = 1
type Config struct {
	Heap    uint32 `toml:"heap"`    // Heap region size, at ARENA_HEAP.
	Stack   uint32 `toml:"stack"`   // Stack size, below ARENA_STACK.
	Pool    uint32 `toml:"pool"`    // Literal pool size, at ARENA_TEXT.
	Limit   int    `toml:"limit"`   // Console bytes accepted per write; 0 is unlimited.
	Debug   int    `toml:"debug"`   // Debug level; 1 or more prints a run summary.
	Verbose bool   `toml:"verbose"` // Log supervisor traffic.
}

// DefaultConfig returns the configuration of the stock machine.
func DefaultConfig() Config {
	return Config{
		Heap:  HEAP_SIZE,
		Stack: cpu.STACK_SIZE,
		Pool:  POOL_SIZE,
	}
}

// LoadConfig reads a TOML configuration file over the defaults.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return
	}

	err = cfg.check(md)
	return
}

// DecodeConfig reads a TOML configuration over the defaults.
func DecodeConfig(r io.Reader) (cfg Config, err error) {
	cfg = DefaultConfig()

	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return
	}

	err = cfg.check(md)
	return
}

func (cfg *Config) check(md toml.MetaData) (err error) {
	undecoded := md.Undecoded()
	if len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = &ErrConfigKey{Keys: keys}
		return
	}

	return cfg.Validate()
}

// Validate checks that the regions of the configuration fit the memory map.
func (cfg *Config) Validate() (err error) {
	switch {
	case cfg.Stack == 0 || cfg.Stack%4 != 0 || cfg.Stack > cpu.ARENA_STACK-cpu.ARENA_HEAP:
		err = ErrConfigStack
	case uint64(cfg.Heap) > uint64(cpu.ARENA_STACK-cfg.Stack)-cpu.ARENA_HEAP:
		err = ErrConfigHeap
	case cfg.Pool > cpu.ARENA_SCRATCH-cpu.ARENA_TEXT:
		err = ErrConfigPool
	case cfg.Limit < 0:
		err = ErrConfigLimit
	}

	return
}
