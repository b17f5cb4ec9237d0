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

// Package vec is a portability layer over 128-bit SIMD vectors for
// cipher and hash implementations. It provides endianness-correct
// load/store for buffers of any alignment, byte permutation and
// reversal, lane-wise logic and arithmetic, octet and bit shifts and
// rotates, and single-round AES and SHA sigma primitives, all with
// bit-identical results across architectures and byte orders.
//
// A capability model is resolved once at process start from the build
// target and golang.org/x/sys/cpu, and selects between the direct,
// aligned and legacy code paths. All results are identical regardless
// of the path taken; the paths mirror the instruction tiers of the
// hardware generations the package models. No operation branches on
// vector contents, only on capabilities and pointer alignment, so no
// primitive introduces secret-dependent control flow.
//
// The package implements no cipher or hash itself: round constants,
// key schedules and modes of operation belong to the caller.
package vec
