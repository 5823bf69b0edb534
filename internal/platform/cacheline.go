// Package platform provides the L0 services the core builds on: cache-line
// sizing, NUMA placement hints, and huge-page backed allocation. Every
// failure here is best-effort — callers downgrade silently, never panic.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLinePad is embedded before/after hot fields (ring indices, slot
// sequences) to keep them off a shared coherence line. Sized from the
// platform's actual line size rather than a hardcoded 64, so Apple Silicon
// and some server parts (128 bytes) get correctly isolated fields too.
type CacheLinePad = cpu.CacheLinePad

// CacheLineSize is the platform-reported coherence unit, in bytes.
const CacheLineSize = unsafe.Sizeof(CacheLinePad{})
