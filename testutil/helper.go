// Package testutil holds assertion helpers shared by the package tests.
package testutil

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/elnom"
)

// MustHex decodes a hex fixture string into bytes; spaces are ignored so
// fixtures can group octets. Malformed hex fails the test immediately.
func MustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err, "bad hex fixture %q", s)
	return b
}

// RequireKind asserts that err is a parse failure reporting the given
// kind, fatal or not.
func RequireKind(t *testing.T, err error, want elnom.Kind) {
	t.Helper()
	require.Error(t, err)
	kind, ok := elnom.ErrKind(err)
	require.True(t, ok, "not a parse failure: %v", err)
	require.Equal(t, want, kind, "got kind %s, want %s", kind, want)
}

// RequireRecoverable asserts a recoverable parse failure of the given
// kind.
func RequireRecoverable(t *testing.T, err error, want elnom.Kind) {
	t.Helper()
	RequireKind(t, err, want)
	require.True(t, elnom.IsRecoverable(err), "expected recoverable failure, got: %v", err)
}

// RequireFatal asserts a fatal parse failure of the given kind.
func RequireFatal(t *testing.T, err error, want elnom.Kind) {
	t.Helper()
	RequireKind(t, err, want)
	require.True(t, elnom.IsFatal(err), "expected fatal failure, got: %v", err)
}

// RequireIncomplete asserts the incomplete signal with the given number
// of missing units.
func RequireIncomplete(t *testing.T, err error, needed uint) {
	t.Helper()
	require.Error(t, err)
	n, ok := elnom.NeededSize(err)
	require.True(t, ok, "not an incomplete signal: %v", err)
	require.Equal(t, needed, n)
}

// BigIntComparer compares *big.Int by value for cmp.Diff.
var BigIntComparer = cmp.Comparer(func(x, y *big.Int) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Cmp(y) == 0
})
