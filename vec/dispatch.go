package vec

import "os"

// DispatchLevel identifies the hardware feature tier the package
// resolved at process start. Levels are cumulative: each tier implies
// everything below it.
type DispatchLevel int

const (
	// DispatchScalar means no 128-bit vector unit was recognized.
	// All operations still produce bit-identical results.
	DispatchScalar DispatchLevel = iota
	// DispatchBaseline is an aligned-access 128-bit vector ISA.
	DispatchBaseline
	// DispatchUnaligned adds unaligned vector load/store and native
	// 64-bit lane arithmetic.
	DispatchUnaligned
	// DispatchCrypto adds single-round AES and SHA sigma instructions.
	DispatchCrypto
)

// Capability state, resolved once by the per-arch init in
// dispatch_GOARCH.go and never mutated afterwards. Every conditional
// in this package branches only on these flags and on pointer values,
// never on vector contents.
var (
	currentLevel DispatchLevel
	currentName  string

	hasUnaligned bool // unaligned vector load/store
	hasExtended  bool // native 64-bit lane add
	hasCrypto    bool // AES/SHA round instructions
)

// CurrentLevel returns the dispatch level resolved at init.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentName returns a short human-readable name for the resolved
// level, e.g. "sse2+aes" or "scalar".
func CurrentName() string { return currentName }

// HasUnalignedAccess reports whether loads and stores use the direct
// unaligned path rather than the aligned-block assembly path.
func HasUnalignedAccess() bool { return hasUnaligned }

// HasExtendedISA reports whether Add64 uses the native 64-bit lane
// add rather than the 32-bit carry-propagation emulation.
func HasExtendedISA() bool { return hasExtended }

// HasCrypto reports whether the AES round and SHA sigma primitives
// are available. Calling them when this is false panics.
func HasCrypto() bool { return hasCrypto }

// HostBigEndian reports the host byte order lanes are read in.
func HostBigEndian() bool { return hostBigEndian }

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchBaseline:
		return "baseline"
	case DispatchUnaligned:
		return "unaligned"
	case DispatchCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// envSet reports whether an override variable is set to a non-empty,
// non-"0" value.
func envSet(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0"
}

// applyEnvOverrides downgrades capabilities per environment variables.
// Used to exercise the legacy code paths on hardware that would never
// take them.
func applyEnvOverrides() {
	if envSet("VEC128_NO_UNALIGNED") {
		hasUnaligned = false
	}
	if envSet("VEC128_NO_EXTENDED") {
		hasExtended = false
	}
	if envSet("VEC128_NO_CRYPTO") {
		hasCrypto = false
	}
	resolveLevel()
}

// resolveLevel lowers the cumulative level to match the individual
// flags after an override. It never raises a level the arch detection
// did not grant.
func resolveLevel() {
	switch {
	case !hasUnaligned || !hasExtended:
		if currentLevel > DispatchBaseline {
			currentLevel = DispatchBaseline
		}
	case !hasCrypto:
		if currentLevel > DispatchUnaligned {
			currentLevel = DispatchUnaligned
		}
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
	hasUnaligned = true // plain byte copies have no alignment demands
	hasExtended = true
	hasCrypto = false
}
