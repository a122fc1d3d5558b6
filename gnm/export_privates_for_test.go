// SPDX-License-Identifier: MIT
package gnm

// MaxValueForTest exposes maxValue to black-box tests.
func MaxValueForTest[T Integer]() uint64 { return maxValue[T]() }
