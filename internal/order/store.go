package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/util"
	dbutil "github/custodia/signing-service/internal/util/db"
)

var (
	// ErrNotFound is returned when no order matches the lookup.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when the conditional state update
	// matched no row, meaning the order moved concurrently or the
	// transition is not legal from its current state.
	ErrInvalidTransition = errors.New("order state transition not allowed")
)

// BoundedTime combines a cutoff timestamp with a result cap for sweep queries.
type BoundedTime struct {
	Time  time.Time
	Limit int
}

// Store persists orders and guards every state change behind a conditional
// update, so concurrent workers can never double-apply a transition.
type Store struct {
	db    *sql.DB
	clock time2.Clock
}

func NewStore(db *sql.DB, clock time2.Clock) *Store {
	return &Store{
		db:    db,
		clock: clock,
	}
}

// Create inserts a new order, stamping both timestamps.
func (s *Store) Create(ctx context.Context, o *models.Order) error {
	now := s.clock.Now()
	o.CreatedAt = now
	o.LastModifiedAt = now

	if err := o.Insert(ctx, s.db, boil.Infer()); err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("order_type", o.OrderType).
		Str("state", o.State).
		Msg("Created order")

	return nil
}

// GetByID loads a single order.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, err := models.FindOrder(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to load order")
	}

	return o, nil
}

// GetForClient loads a single order owned by the given client. Orders of other
// clients are reported as not found.
func (s *Store) GetForClient(ctx context.Context, id string, clientID string) (*models.Order, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.ClientID != clientID {
		return nil, ErrNotFound
	}

	return o, nil
}

// Transition conditionally moves the order into the target state. The row is
// only updated when the current state legally precedes the target state, and
// additional column values are applied in the same statement. Returns
// ErrInvalidTransition when no row matched.
func (s *Store) Transition(ctx context.Context, id string, target State, sets models.M) error {
	return s.TransitionExec(ctx, s.db, id, target, sets)
}

// TransitionExec is Transition on an explicit executor, for use inside
// transactions.
func (s *Store) TransitionExec(ctx context.Context, exec boil.ContextExecutor, id string, target State, sets models.M) error {
	allowed, err := PossibleCurrentStates(target)
	if err != nil {
		return err
	}

	cols := models.M{
		models.OrderColumns.State:          string(target),
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	}
	for k, v := range sets {
		cols[k] = v
	}

	rowsAff, err := models.Orders(
		models.OrderWhere.ID.EQ(id),
		models.OrderWhere.State.IN(StateStrings(allowed)),
	).UpdateAll(ctx, exec, cols)
	if err != nil {
		return errors.Wrapf(err, "failed to transition order %s to %s", id, target)
	}

	if rowsAff != 1 {
		return ErrInvalidTransition
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", id).
		Str("state", string(target)).
		Msg("Transitioned order")

	return nil
}

// WithOrderForUpdate runs fn with the order row locked, so concurrent
// mutations of its JSON payloads serialize.
func (s *Store) WithOrderForUpdate(ctx context.Context, id string, fn func(exec boil.ContextExecutor, o *models.Order) error) error {
	return dbutil.WithTransaction(ctx, s.db, func(exec boil.ContextExecutor) error {
		o, err := models.Orders(
			models.OrderWhere.ID.EQ(id),
			qm.For("UPDATE"),
		).One(ctx, exec)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return errors.Wrap(err, "failed to lock order")
		}

		return fn(exec, o)
	})
}

// SetPolicy attaches the resolved policy snapshot to the order.
func (s *Store) SetPolicy(ctx context.Context, id string, policy []byte) error {
	_, err := models.Orders(models.OrderWhere.ID.EQ(id)).UpdateAll(ctx, s.db, models.M{
		models.OrderColumns.Policy:         null.JSONFrom(policy),
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	})

	return errors.Wrap(err, "failed to set order policy")
}

// UpdatePolicyExec replaces the policy snapshot on an explicit executor, for
// use under WithOrderForUpdate.
func (s *Store) UpdatePolicyExec(ctx context.Context, exec boil.ContextExecutor, id string, policy []byte) error {
	_, err := models.Orders(models.OrderWhere.ID.EQ(id)).UpdateAll(ctx, exec, models.M{
		models.OrderColumns.Policy:         null.JSONFrom(policy),
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	})

	return errors.Wrap(err, "failed to update order policy")
}

// Touch bumps last_modified_at without changing state, used when a submitted
// transaction is seen in the mempool but not yet mined.
func (s *Store) Touch(ctx context.Context, id string) error {
	_, err := models.Orders(models.OrderWhere.ID.EQ(id)).UpdateAll(ctx, s.db, models.M{
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	})

	return errors.Wrap(err, "failed to touch order")
}

// RequestCancellation flags the order for cancellation if it has not been
// submitted yet. Returns ErrInvalidTransition when the order already reached
// SUBMITTED or a terminal state, in which case the caller has to replace the
// transaction on chain instead.
func (s *Store) RequestCancellation(ctx context.Context, id string) error {
	rowsAff, err := models.Orders(
		models.OrderWhere.ID.EQ(id),
		models.OrderWhere.State.IN(StateStrings([]State{
			StateReceived, StateApproversReviewed, StateSelectedForSigning, StateSigned,
		})),
	).UpdateAll(ctx, s.db, models.M{
		models.OrderColumns.CancellationRequested: null.BoolFrom(true),
		models.OrderColumns.LastModifiedAt:        s.clock.Now(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to request cancellation for order %s", id)
	}

	if rowsAff != 1 {
		return ErrInvalidTransition
	}

	return nil
}

// SetTerminalError moves the order into ERROR recording code and message.
func (s *Store) SetTerminalError(ctx context.Context, id string, orderErr Error) error {
	raw, err := json.Marshal(orderErr)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order error")
	}

	return s.Transition(ctx, id, StateError, models.M{
		models.OrderColumns.Error: null.JSONFrom(raw),
	})
}

// UpdateData replaces the order data payload, used to persist the signed
// transaction blob returned by the signer authority.
func (s *Store) UpdateData(ctx context.Context, id string, data []byte) error {
	_, err := models.Orders(models.OrderWhere.ID.EQ(id)).UpdateAll(ctx, s.db, models.M{
		models.OrderColumns.Data:           data,
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	})

	return errors.Wrap(err, "failed to update order data")
}

// ListByKeyChainTypeState returns up to limit orders of the given key, chain,
// type and state, oldest first.
func (s *Store) ListByKeyChainTypeState(ctx context.Context, keyID string, chainID int64, orderType Type, state State, limit int) (models.OrderSlice, error) {
	orders, err := models.Orders(
		models.OrderWhere.KeyID.EQ(null.StringFrom(keyID)),
		models.OrderWhere.ChainID.EQ(null.Int64From(chainID)),
		models.OrderWhere.OrderType.EQ(string(orderType)),
		models.OrderWhere.State.EQ(string(state)),
		qm.OrderBy(models.OrderColumns.CreatedAt+" ASC, "+models.OrderColumns.ID+" ASC"),
		qm.Limit(limit),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by key, chain, type and state")
	}

	return orders, nil
}

// ListByTypeState returns up to limit orders of the given type and state,
// oldest first, for the engine sweeps.
func (s *Store) ListByTypeState(ctx context.Context, orderType Type, state State, limit int) (models.OrderSlice, error) {
	orders, err := models.Orders(
		models.OrderWhere.OrderType.EQ(string(orderType)),
		models.OrderWhere.State.EQ(string(state)),
		qm.OrderBy(models.OrderColumns.CreatedAt+" ASC, "+models.OrderColumns.ID+" ASC"),
		qm.Limit(limit),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by type and state")
	}

	return orders, nil
}

// SignedSponsoredUnwrapped returns sponsored orders that are signed but have
// no wrapper order yet.
func (s *Store) SignedSponsoredUnwrapped(ctx context.Context, limit int) (models.OrderSlice, error) {
	orders, err := models.Orders(
		models.OrderWhere.OrderType.EQ(string(TypeSponsored)),
		models.OrderWhere.State.EQ(string(StateSigned)),
		models.OrderWhere.ReplacedBy.IsNull(),
		qm.OrderBy(models.OrderColumns.CreatedAt+" ASC"),
		qm.Limit(limit),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unwrapped sponsored orders")
	}

	return orders, nil
}

// KeyChain identifies a signing lane: one key on one chain.
type KeyChain struct {
	KeyID   string `boil:"key_id"`
	ChainID int64  `boil:"chain_id"`
}

// SignedKeyChains returns the distinct (key, chain) pairs that currently have
// signed orders waiting for selection.
func (s *Store) SignedKeyChains(ctx context.Context, limit int) ([]KeyChain, error) {
	var lanes []KeyChain
	err := models.Orders(
		qm.Distinct(models.OrderColumns.KeyID+", "+models.OrderColumns.ChainID),
		models.OrderWhere.State.EQ(string(StateSigned)),
		models.OrderWhere.OrderType.NEQ(string(TypeSponsored)),
		models.OrderWhere.KeyID.IsNotNull(),
		models.OrderWhere.ChainID.IsNotNull(),
		qm.Limit(limit),
	).Bind(ctx, s.db, &lanes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list signed key chains")
	}

	return lanes, nil
}

// ActiveForKey returns the order currently holding the in-flight slot of the
// key on the chain, or nil when none exists.
func (s *Store) ActiveForKey(ctx context.Context, keyID string, chainID int64) (*models.Order, error) {
	o, err := models.Orders(
		models.OrderWhere.KeyID.EQ(null.StringFrom(keyID)),
		models.OrderWhere.ChainID.EQ(null.Int64From(chainID)),
		models.OrderWhere.State.IN(StateStrings(LockingStates)),
		qm.OrderBy(models.OrderColumns.LastModifiedAt+" DESC"),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to load active order")
	}

	return o, nil
}

// ListPendingForClient returns the non-terminal orders of a client, oldest first.
func (s *Store) ListPendingForClient(ctx context.Context, clientID string, limit int) (models.OrderSlice, error) {
	orders, err := models.Orders(
		models.OrderWhere.ClientID.EQ(clientID),
		models.OrderWhere.State.IN(StateStrings(PendingStates)),
		qm.OrderBy(models.OrderColumns.CreatedAt+" ASC"),
		qm.Limit(limit),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending orders")
	}

	return orders, nil
}

// StaleSubmitted returns submitted orders of the given types whose last
// modification is older than the cutoff.
func (s *Store) StaleSubmitted(ctx context.Context, cutoff BoundedTime, types []Type) (models.OrderSlice, error) {
	typeStrings := make([]string, 0, len(types))
	for _, t := range types {
		typeStrings = append(typeStrings, string(t))
	}

	orders, err := models.Orders(
		models.OrderWhere.State.EQ(string(StateSubmitted)),
		models.OrderWhere.OrderType.IN(typeStrings),
		models.OrderWhere.LastModifiedAt.LT(cutoff.Time),
		qm.OrderBy(models.OrderColumns.LastModifiedAt+" ASC"),
		qm.Limit(cutoff.Limit),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale submitted orders")
	}

	return orders, nil
}

// StaleInState returns orders stuck in the given state since before the cutoff.
func (s *Store) StaleInState(ctx context.Context, state State, cutoff BoundedTime) (models.OrderSlice, error) {
	orders, err := models.Orders(
		models.OrderWhere.State.EQ(string(state)),
		models.OrderWhere.LastModifiedAt.LT(cutoff.Time),
		qm.OrderBy(models.OrderColumns.LastModifiedAt+" ASC"),
		qm.Limit(cutoff.Limit),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list stale orders in state %s", state)
	}

	return orders, nil
}

// ByTransactionHash returns the order carrying the given transaction hash on a chain.
func (s *Store) ByTransactionHash(ctx context.Context, chainID int64, hash string) (*models.Order, error) {
	o, err := models.Orders(
		models.OrderWhere.ChainID.EQ(null.Int64From(chainID)),
		models.OrderWhere.TransactionHash.EQ(null.StringFrom(hash)),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to load order by transaction hash")
	}

	return o, nil
}

// ReorgByTransactionHashes moves all orders whose transactions sat in reorged
// blocks to the given target state, returning the number of affected orders.
// Orders in states the transition map does not allow to reach the target are
// left untouched.
func (s *Store) ReorgByTransactionHashes(ctx context.Context, chainID int64, hashes []string, target State) (int64, error) {
	if len(hashes) == 0 {
		return 0, nil
	}

	allowed, err := PossibleCurrentStates(target)
	if err != nil {
		return 0, err
	}

	rowsAff, err := models.Orders(
		models.OrderWhere.ChainID.EQ(null.Int64From(chainID)),
		models.OrderWhere.TransactionHash.IN(hashes),
		models.OrderWhere.State.IN(StateStrings(allowed)),
	).UpdateAll(ctx, s.db, models.M{
		models.OrderColumns.State:          string(target),
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark orders as reorged")
	}

	return rowsAff, nil
}

// CreateLinkedReplacement inserts the replacement order and links the original
// to it in a single transaction. The replacement carries replaces, the
// original gains replaced_by.
func (s *Store) CreateLinkedReplacement(ctx context.Context, original *models.Order, replacement *models.Order) error {
	now := s.clock.Now()
	replacement.CreatedAt = now
	replacement.LastModifiedAt = now
	replacement.Replaces = null.StringFrom(original.ID)

	return dbutil.WithTransaction(ctx, s.db, func(exec boil.ContextExecutor) error {
		if err := replacement.Insert(ctx, exec, boil.Infer()); err != nil {
			return errors.Wrap(err, "failed to insert replacement order")
		}

		rowsAff, err := models.Orders(
			models.OrderWhere.ID.EQ(original.ID),
			models.OrderWhere.ReplacedBy.IsNull(),
		).UpdateAll(ctx, exec, models.M{
			models.OrderColumns.ReplacedBy:     null.StringFrom(replacement.ID),
			models.OrderColumns.LastModifiedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to link original order to replacement")
		}

		if rowsAff != 1 {
			return errors.Errorf("order %s is already replaced", original.ID)
		}

		return nil
	})
}

// ReplaceWith inserts the replacement order and terminally replaces the
// original in a single transaction. Either both records change or neither.
// Returns ErrInvalidTransition when the original left its replaceable state
// concurrently.
func (s *Store) ReplaceWith(ctx context.Context, original *models.Order, replacement *models.Order) error {
	now := s.clock.Now()
	replacement.CreatedAt = now
	replacement.LastModifiedAt = now
	replacement.Replaces = null.StringFrom(original.ID)

	return dbutil.WithTransaction(ctx, s.db, func(exec boil.ContextExecutor) error {
		if err := replacement.Insert(ctx, exec, boil.Infer()); err != nil {
			return errors.Wrap(err, "failed to insert replacement order")
		}

		return s.TransitionExec(ctx, exec, original.ID, StateReplaced, models.M{
			models.OrderColumns.ReplacedBy: null.StringFrom(replacement.ID),
		})
	})
}

// MarkReplaced terminally replaces the original order once its replacement
// confirmed on chain.
func (s *Store) MarkReplaced(ctx context.Context, originalID string, replacementID string) error {
	return s.Transition(ctx, originalID, StateReplaced, models.M{
		models.OrderColumns.ReplacedBy: null.StringFrom(replacementID),
	})
}

// CancelPending transitions every pending order that has not been broadcast
// yet to Cancelled. A non-empty clientID scopes the sweep. Submitted orders
// are left alone, they need a replacement cancellation.
func (s *Store) CancelPending(ctx context.Context, clientID string) (int64, error) {
	mods := []qm.QueryMod{
		models.OrderWhere.State.IN([]string{
			string(StateReceived),
			string(StateApproversReviewed),
			string(StateSigned),
			string(StateSelectedForSigning),
		}),
	}
	if clientID != "" {
		mods = append(mods, models.OrderWhere.ClientID.EQ(clientID))
	}

	rowsAff, err := models.Orders(mods...).UpdateAll(ctx, s.db, models.M{
		models.OrderColumns.State:          string(StateCancelled),
		models.OrderColumns.LastModifiedAt: s.clock.Now(),
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to cancel pending orders")
	}

	util.LogFromContext(ctx).Info().
		Int64("orders", rowsAff).
		Str("client_id", clientID).
		Msg("Cancelled pending orders")

	return rowsAff, nil
}

// CountsByState returns the number of orders per state, for gauge export.
func (s *Store) CountsByState(ctx context.Context) (map[string]int64, error) {
	type row struct {
		State string `boil:"state"`
		Count int64  `boil:"count"`
	}

	var rows []row
	err := models.Orders(
		qm.Select(models.OrderColumns.State, "COUNT(*) AS count"),
		qm.GroupBy(models.OrderColumns.State),
	).Bind(ctx, s.db, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by state")
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.State] = r.Count
	}

	return counts, nil
}
