package testutil

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
)

// RandomAccount builds an account fixture with a unique id and referral
// code and no balances.
func RandomAccount(t *testing.T) *model.AccountDocument {
	t.Helper()

	id, err := RandomAlphaNum(12)
	require.NoError(t, err)
	code, err := RandomAlphaNum(8)
	require.NoError(t, err)

	return model.NewAccountDocument(id, code, "", time.Now().UTC().Truncate(time.Millisecond))
}

// RandomTxHash returns a plausible deposit transaction hash.
func RandomTxHash(t *testing.T) string {
	t.Helper()

	return gofakeit.HexUint(256)
}
