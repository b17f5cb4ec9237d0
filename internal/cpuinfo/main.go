// Copyright 2026 go-vec128 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main provides a diagnostic tool to print the CPU features
// the vec package resolved at init.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-vec128/vec"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("vec dispatch level: %s\n", vec.CurrentLevel())
	fmt.Printf("vec dispatch name: %s\n", vec.CurrentName())
	fmt.Printf("vec unaligned access: %v\n", vec.HasUnalignedAccess())
	fmt.Printf("vec extended ISA: %v\n", vec.HasExtendedISA())
	fmt.Printf("vec crypto rounds: %v\n", vec.HasCrypto())
	fmt.Printf("vec host big-endian: %v\n", vec.HostBigEndian())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	case "ppc64", "ppc64le":
		printPPC64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:  %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasAES:    %v\n", cpu.ARM64.HasAES)
	fmt.Printf("  HasPMULL:  %v\n", cpu.ARM64.HasPMULL)
	fmt.Printf("  HasSHA1:   %v\n", cpu.ARM64.HasSHA1)
	fmt.Printf("  HasSHA2:   %v\n", cpu.ARM64.HasSHA2)
	fmt.Printf("  HasSHA512: %v\n", cpu.ARM64.HasSHA512)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:  %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41: %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42: %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAES:   %v\n", cpu.X86.HasAES)
	fmt.Printf("  HasAVX:   %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:  %v\n", cpu.X86.HasAVX2)
}

func printPPC64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.PPC64 ===")
	fmt.Printf("  IsPOWER8: %v\n", cpu.PPC64.IsPOWER8)
	fmt.Printf("  IsPOWER9: %v\n", cpu.PPC64.IsPOWER9)
}
