//go:build integerdebug
// +build integerdebug

package integer

// Build with -tags integerdebug to check every normalized result.
const debugInteger = true
