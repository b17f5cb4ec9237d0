//go:build arm64

package vec

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	if envSet("VEC128_FORCE_SCALAR") {
		setScalarMode()
		return
	}
	detectCPUFeatures()
	applyEnvOverrides()
}

func detectCPUFeatures() {
	// NEON is mandatory on arm64 and has no alignment demands.
	currentLevel = DispatchUnaligned
	currentName = "neon"
	hasUnaligned = true
	hasExtended = true

	// cpu.ARM64 feature bits are not populated on darwin; every Apple
	// arm64 core has the crypto extensions.
	if runtime.GOOS == "darwin" || (cpu.ARM64.HasAES && cpu.ARM64.HasSHA2) {
		currentLevel = DispatchCrypto
		currentName = "neon+aes"
		hasCrypto = true
	}
}
