// SPDX-License-Identifier: MIT
package selection

// ChooseForTest exposes the Auto decision table to external tests.
func ChooseForTest(population uint64, k int, p Policy) string {
	return choose(population, k, p).String()
}
