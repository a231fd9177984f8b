//go:build !integerdebug
// +build !integerdebug

package integer

const debugInteger = false
