// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY; this file is compiled
//     into the test binary and is invisible in production builds.
//
// Provided Surface:
//   - MinorInto_TestOnly: thin pass-through to (*Dense).minorInto.
//   - PanicEpsilonInvalid_TestOnly: stable panic message for WithEpsilon.

// PanicEpsilonInvalid_TestOnly avoids magic strings in option tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// MinorInto_TestOnly forwards to the private minor extraction kernel.
func MinorInto_TestOnly(m *Dense, row, col int, dst *Dense) error {
	return m.minorInto(row, col, dst)
}
