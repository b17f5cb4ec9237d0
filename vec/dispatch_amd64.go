//go:build amd64

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
	// SSE2 is baseline for amd64: movdqu covers unaligned access and
	// paddq covers 64-bit lane adds.
	currentLevel = DispatchUnaligned
	currentName = "sse2"
	hasUnaligned = true
	hasExtended = true

	if cpu.X86.HasAES && cpu.X86.HasSSE41 {
		currentLevel = DispatchCrypto
		currentName = "sse2+aes"
		hasCrypto = true
	}
}
