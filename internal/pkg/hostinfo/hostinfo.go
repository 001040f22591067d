// Package hostinfo describes the processor a timing trace was captured on.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Profile is a snapshot of the CPU properties that influence decrypt latency
type Profile struct {
	Brand         string
	Vendor        string
	PhysicalCores int
	LogicalCores  int
	BaseHz        int64
	BoostHz       int64
	Features      []string
	GOMAXPROCS    int
}

// timingFeatures are reported when present, in this order
var timingFeatures = []cpuid.FeatureID{
	cpuid.RDTSCP,
	cpuid.BMI2,
	cpuid.ADX,
	cpuid.AVX2,
	cpuid.AVX512F,
}

// Describe reads the profile of the current host.
func Describe() Profile {
	p := Profile{
		Brand:         cpuid.CPU.BrandName,
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		BaseHz:        cpuid.CPU.Hz,
		BoostHz:       cpuid.CPU.BoostFreq,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
	}
	for _, f := range timingFeatures {
		if cpuid.CPU.Supports(f) {
			p.Features = append(p.Features, f.String())
		}
	}
	return p
}

// String renders the profile as a single human readable line.
func (p Profile) String() string {
	brand := p.Brand
	if brand == "" {
		brand = "unknown cpu"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "cpu: %s (%d physical, %d logical cores, GOMAXPROCS=%d)", brand, p.PhysicalCores, p.LogicalCores, p.GOMAXPROCS)
	if p.BaseHz > 0 {
		fmt.Fprintf(&b, ", base %.2f GHz", float64(p.BaseHz)/1e9)
	}
	if p.BoostHz > p.BaseHz {
		fmt.Fprintf(&b, ", boost %.2f GHz", float64(p.BoostHz)/1e9)
	}
	if len(p.Features) > 0 {
		fmt.Fprintf(&b, ", features: %s", strings.Join(p.Features, " "))
	}
	return b.String()
}
