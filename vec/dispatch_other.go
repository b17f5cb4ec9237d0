//go:build !amd64 && !arm64 && !ppc64 && !ppc64le

package vec

func init() {
	// Architectures without a recognized 128-bit vector unit run in
	// scalar mode. Results are bit-identical; only the code paths and
	// the crypto capability differ.
	setScalarMode()
	applyEnvOverrides()
}
