package policy

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
)

// ErrNoDefaultPolicy wraps the missing-default condition so handlers can map
// it to a validation error.
type ErrNoDefaultPolicy struct {
	ClientID string
	ChainID  int64
}

func (e *ErrNoDefaultPolicy) Error() string {
	return "there was no default policy configured for client " + e.ClientID + " and chain id " + formatChainID(e.ChainID)
}

// Resolver maps (client_id, chain_id, to_address?) to the approval policy
// name that must be satisfied. A per-destination mapping wins over the
// client-chain default; a missing default is a configuration error surfaced
// to the client.
type Resolver struct {
	db    *sql.DB
	clock time2.Clock
}

func NewResolver(db *sql.DB, clock time2.Clock) *Resolver {
	return &Resolver{
		db:    db,
		clock: clock,
	}
}

// Resolve returns the policy name for the given client, chain and optional
// destination address.
func (r *Resolver) Resolve(ctx context.Context, clientID string, chainID int64, toAddress *string) (string, error) {
	if toAddress != nil && *toAddress != "" {
		row, err := models.AddressPolicies(
			models.AddressPolicyWhere.ClientID.EQ(clientID),
			models.AddressPolicyWhere.ChainID.EQ(chainID),
			models.AddressPolicyWhere.Address.EQ(null.StringFrom(strings.ToLower(*toAddress))),
		).One(ctx, r.db)
		if err == nil {
			return row.PolicyName, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return "", errors.Wrap(err, "failed to load address policy mapping")
		}
	}

	row, err := models.AddressPolicies(
		models.AddressPolicyWhere.ClientID.EQ(clientID),
		models.AddressPolicyWhere.ChainID.EQ(chainID),
		models.AddressPolicyWhere.Address.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &ErrNoDefaultPolicy{ClientID: clientID, ChainID: chainID}
		}
		return "", errors.Wrap(err, "failed to load default policy mapping")
	}

	return row.PolicyName, nil
}

// Set upserts a policy mapping. A nil address sets the client-chain default.
func (r *Resolver) Set(ctx context.Context, clientID string, chainID int64, address *string, policyName string) error {
	mods := []qm.QueryMod{
		models.AddressPolicyWhere.ClientID.EQ(clientID),
		models.AddressPolicyWhere.ChainID.EQ(chainID),
	}
	addr := null.String{}
	if address != nil {
		addr = null.StringFrom(strings.ToLower(*address))
		mods = append(mods, models.AddressPolicyWhere.Address.EQ(addr))
	} else {
		mods = append(mods, models.AddressPolicyWhere.Address.IsNull())
	}

	rowsAff, err := models.AddressPolicies(mods...).UpdateAll(ctx, r.db, models.M{
		models.AddressPolicyColumns.PolicyName: policyName,
	})
	if err != nil {
		return errors.Wrap(err, "failed to update policy mapping")
	}
	if rowsAff > 0 {
		return nil
	}

	row := &models.AddressPolicy{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		ChainID:    chainID,
		Address:    addr,
		PolicyName: policyName,
		CreatedAt:  r.clock.Now(),
	}

	return errors.Wrap(row.Insert(ctx, r.db, boil.Infer()), "failed to insert policy mapping")
}

// Get returns the mapping for the address, or the default when address is nil.
func (r *Resolver) Get(ctx context.Context, clientID string, chainID int64, address *string) (*models.AddressPolicy, error) {
	mods := []qm.QueryMod{
		models.AddressPolicyWhere.ClientID.EQ(clientID),
		models.AddressPolicyWhere.ChainID.EQ(chainID),
	}
	if address != nil {
		mods = append(mods, models.AddressPolicyWhere.Address.EQ(null.StringFrom(strings.ToLower(*address))))
	} else {
		mods = append(mods, models.AddressPolicyWhere.Address.IsNull())
	}

	row, err := models.AddressPolicies(mods...).One(ctx, r.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "failed to load policy mapping")
	}

	return row, nil
}

// Delete removes the mapping for the address, or the default when address is
// nil. Returns the number of deleted rows.
func (r *Resolver) Delete(ctx context.Context, clientID string, chainID int64, address *string) (int64, error) {
	mods := []qm.QueryMod{
		models.AddressPolicyWhere.ClientID.EQ(clientID),
		models.AddressPolicyWhere.ChainID.EQ(chainID),
	}
	if address != nil {
		mods = append(mods, models.AddressPolicyWhere.Address.EQ(null.StringFrom(strings.ToLower(*address))))
	} else {
		mods = append(mods, models.AddressPolicyWhere.Address.IsNull())
	}

	rowsAff, err := models.AddressPolicies(mods...).DeleteAll(ctx, r.db)

	return rowsAff, errors.Wrap(err, "failed to delete policy mapping")
}

func formatChainID(chainID int64) string {
	return strconv.FormatInt(chainID, 10)
}
