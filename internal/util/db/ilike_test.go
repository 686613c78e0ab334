package db_test

import (
	"testing"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/stretchr/testify/assert"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/util/db"
)

func TestILike(t *testing.T) {
	query := models.NewQuery(
		qm.Select("*"),
		qm.From("keys"),
		db.InnerJoin("keys", "order_id", "orders", "id"),
		db.ILike("%user-42%", "keys", "client_user_id"),
	)

	sql, args := queries.BuildQuery(query)

	assert.Contains(t, sql, "INNER JOIN orders ON orders.id = keys.order_id")
	assert.Contains(t, sql, "keys.client_user_id ILIKE $1")
	assert.Equal(t, []interface{}{"%user-42%"}, args)
}

func TestILikeSearch(t *testing.T) {
	query := models.NewQuery(
		qm.Select("*"),
		qm.From("keys"),
		db.ILikeSearch("alice 100%", "keys", "client_user_id"),
	)

	sql, args := queries.BuildQuery(query)

	assert.Contains(t, sql, "keys.client_user_id ILIKE $1")
	assert.Contains(t, sql, "keys.client_user_id ILIKE $2")
	assert.Equal(t, []interface{}{"%alice%", "%100\\%%"}, args)
}

func TestEscapeLike(t *testing.T) {
	res := db.EscapeLike("%foo% _b%a_r%")
	assert.Equal(t, "\\%foo\\% \\_b\\%a\\_r\\%", res)
}
