package keys

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/util/db"
)

// ErrNotFound is returned when no key matches the lookup or the caller does
// not own the key.
var ErrNotFound = errors.New("key not found")

// Directory is the read-mostly view of key_id, address and client_id
// bindings. Rows are created exactly once when a key-creation order completes
// and never mutated afterwards.
type Directory struct {
	db    *sql.DB
	clock time2.Clock
}

func NewDirectory(db *sql.DB, clock time2.Clock) *Directory {
	return &Directory{
		db:    db,
		clock: clock,
	}
}

// ByAddress returns the key owning the given address.
func (d *Directory) ByAddress(ctx context.Context, address string) (*models.Key, error) {
	key, err := models.Keys(
		models.KeyWhere.Address.EQ(strings.ToLower(address)),
	).One(ctx, d.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to load key by address")
	}

	return key, nil
}

// ByAddressForClient returns the key for the address if it is owned by the
// given client. Keys of other clients are reported as not found.
func (d *Directory) ByAddressForClient(ctx context.Context, address string, clientID string) (*models.Key, error) {
	key, err := d.ByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if key.ClientID != clientID {
		return nil, ErrNotFound
	}

	return key, nil
}

// ByID returns the key with the given key id.
func (d *Directory) ByID(ctx context.Context, keyID string) (*models.Key, error) {
	key, err := models.FindKey(ctx, d.db, keyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to load key by id")
	}

	return key, nil
}

// ListForClient returns all keys of a client, oldest first. A non-empty
// search filters on the client user id as substring match.
func (d *Directory) ListForClient(ctx context.Context, clientID string, search string) (models.KeySlice, error) {
	mods := []qm.QueryMod{
		models.KeyWhere.ClientID.EQ(clientID),
		qm.OrderBy(models.KeyColumns.CreatedAt + " ASC"),
	}
	if search != "" {
		mods = append(mods, db.ILikeSearch(search, models.TableNames.Keys, models.KeyColumns.ClientUserID))
	}

	keys, err := models.Keys(mods...).All(ctx, d.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}

	return keys, nil
}

// Create inserts the key row for a completed key-creation order. The address
// is normalized to lower case. Runs on the given executor so the caller can
// bundle it with the order transition.
func (d *Directory) Create(ctx context.Context, exec boil.ContextExecutor, key *models.Key) error {
	key.Address = strings.ToLower(key.Address)
	key.CreatedAt = d.clock.Now()

	return errors.Wrap(key.Insert(ctx, exec, boil.Infer()), "failed to insert key")
}
