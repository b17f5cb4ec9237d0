//go:build 386 || amd64 || arm || arm64 || loong64 || mipsle || mips64le || ppc64le || riscv64 || wasm

package vec

// hostBigEndian is fixed by GOARCH; the build tag lists mirror
// golang.org/x/sys/cpu's byte order tables.
const hostBigEndian = false
