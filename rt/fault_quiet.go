// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build rtquiet

package rt

const faultText = false
