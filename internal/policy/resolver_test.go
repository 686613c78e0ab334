package policy_test

import (
	"database/sql"
	"testing"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/data/fixtures"
	"github/custodia/signing-service/internal/policy"
	"github/custodia/signing-service/internal/test"
)

func TestDeleteDefaultPolicyMapping(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		resolver := policy.NewResolver(db, time2.DefaultClock)
		fix := fixtures.Fixtures()

		rowsAff, err := resolver.Delete(ctx, fixtures.ClientID1, fix.Client1DefaultPolicy.ChainID, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, rowsAff)

		// with the default gone, resolution has nothing to fall back to
		_, err = resolver.Resolve(ctx, fixtures.ClientID1, fix.Client1DefaultPolicy.ChainID, nil)
		var noDefault *policy.ErrNoDefaultPolicy
		require.ErrorAs(t, err, &noDefault)

		rowsAff, err = resolver.Delete(ctx, fixtures.ClientID1, fix.Client1DefaultPolicy.ChainID, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 0, rowsAff)
	})
}
