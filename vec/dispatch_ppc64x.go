//go:build ppc64 || ppc64le

package vec

import "golang.org/x/sys/cpu"

func init() {
	if envSet("VEC128_FORCE_SCALAR") {
		setScalarMode()
		return
	}
	detectCPUFeatures()
	applyEnvOverrides()
}

func detectCPUFeatures() {
	// Altivec is the aligned-only baseline: lvx/stvx mask the low four
	// address bits, so misaligned access goes through the two-load
	// permute window and the scattered store sequence.
	currentLevel = DispatchBaseline
	currentName = "altivec"
	hasUnaligned = false
	hasExtended = false

	if cpu.PPC64.IsPOWER8 {
		// POWER8 brings lxvd2x-style unaligned access, vaddudm and the
		// vcipher/vshasigma crypto unit.
		currentLevel = DispatchCrypto
		currentName = "power8"
		hasUnaligned = true
		hasExtended = true
		hasCrypto = true
	}
}
