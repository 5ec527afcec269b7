// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !rtquiet

package rt

// faultText enables diagnostic text. Build with -tags rtquiet to drop it.
const faultText = true
