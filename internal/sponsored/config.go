package sponsored

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
)

var (
	// ErrNotConfigured is returned when a client has no sponsor addresses on
	// the chain. Gas pool and forwarder have to be set through the API before
	// sponsored orders can be created.
	ErrNotConfigured = errors.New("no sponsor addresses configured for client and chain")
)

// ConfigStore persists the gas pool and forwarder addresses used to wrap
// sponsored orders, per client and chain.
type ConfigStore struct {
	db    *sql.DB
	clock time2.Clock
}

func NewConfigStore(db *sql.DB, clock time2.Clock) *ConfigStore {
	return &ConfigStore{
		db:    db,
		clock: clock,
	}
}

// Resolve returns the most recent sponsor address entry for the client on the
// chain.
func (s *ConfigStore) Resolve(ctx context.Context, clientID string, chainID int64) (*models.SponsorAddress, error) {
	entry, err := models.SponsorAddresses(
		models.SponsorAddressWhere.ClientID.EQ(clientID),
		models.SponsorAddressWhere.ChainID.EQ(chainID),
		qm.OrderBy(models.SponsorAddressColumns.CreatedAt+" DESC"),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotConfigured
		}
		return nil, errors.Wrap(err, "failed to load sponsor addresses")
	}

	return entry, nil
}

// Set records a sponsor address entry.
func (s *ConfigStore) Set(ctx context.Context, entry *models.SponsorAddress) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = s.clock.Now()

	return errors.Wrap(entry.Insert(ctx, s.db, boil.Infer()), "failed to insert sponsor addresses")
}

// List returns every sponsor address entry of the client on the chain, newest
// first.
func (s *ConfigStore) List(ctx context.Context, clientID string, chainID int64) (models.SponsorAddressSlice, error) {
	entries, err := models.SponsorAddresses(
		models.SponsorAddressWhere.ClientID.EQ(clientID),
		models.SponsorAddressWhere.ChainID.EQ(chainID),
		qm.OrderBy(models.SponsorAddressColumns.CreatedAt+" DESC"),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sponsor addresses")
	}

	return entries, nil
}
