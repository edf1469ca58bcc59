// Package diskplan computes the partition layout for a two-stage install.
//
// The staging OS lives on a fixed-size boot disk; swap and an extra data
// partition are optional; whatever capacity remains becomes the raw
// partition the target OS is installed onto.
package diskplan

import "fmt"

// BootMB is the size of the staging OS disk.
const BootMB = 2048

// Layout holds the computed partition sizes for one Linode, all in MB.
type Layout struct {
	TotalMB int
	BootMB  int
	SwapMB  int
	ExtraMB int
	MainMB  int
}

// Plan computes the layout for the given total capacity and requested
// swap/extra sizes. It performs no bounds checking; callers must call
// Validate before creating any disks.
func Plan(totalMB, swapMB, extraMB int) Layout {
	return Layout{
		TotalMB: totalMB,
		BootMB:  BootMB,
		SwapMB:  swapMB,
		ExtraMB: extraMB,
		MainMB:  totalMB - BootMB - swapMB - extraMB,
	}
}

// Validate returns an error when the requested sizes do not leave room for
// the main OS partition.
func (l Layout) Validate() error {
	if l.SwapMB < 0 || l.ExtraMB < 0 {
		return fmt.Errorf("negative partition size: swap %d MB, extra %d MB", l.SwapMB, l.ExtraMB)
	}
	if l.MainMB <= 0 {
		return fmt.Errorf("no room for the OS partition: %d MB total leaves %d MB after %d MB boot, %d MB swap, %d MB extra",
			l.TotalMB, l.MainMB, l.BootMB, l.SwapMB, l.ExtraMB)
	}
	return nil
}
