package keys

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/maestro"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
	dbutil "github/custodia/signing-service/internal/util/db"
)

// Creator runs key creation orders: it asks the signer authority for a new
// key pair, derives the EVM address locally and records the key row together
// with the order transition.
type Creator struct {
	db     *sql.DB
	orders *order.Store
	keys   *Directory
	signer *maestro.Client
}

func NewCreator(db *sql.DB, orders *order.Store, keys *Directory, signer *maestro.Client) *Creator {
	return &Creator{
		db:     db,
		orders: orders,
		keys:   keys,
		signer: signer,
	}
}

// CreateOrder records a new key creation order in RECEIVED.
func (c *Creator) CreateOrder(ctx context.Context, clientID string, clientUserID string, owningUserID string, orderVersion string) (*models.Order, error) {
	raw, err := json.Marshal(&order.KeyCreationData{
		ClientUserID: clientUserID,
		OwningUserID: owningUserID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal key creation order data")
	}

	o := &models.Order{
		ID:           uuid.NewString(),
		OrderVersion: orderVersion,
		OrderType:    string(order.TypeKeyCreation),
		State:        string(order.StateReceived),
		ClientID:     clientID,
		Data:         raw,
	}

	if err := c.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// Process drives a key creation order to completion. Key creation carries no
// approver review, so the review step completes vacuously before the signer
// authority is asked for the key pair. A signer failure terminates the order
// with an error instead of leaving it pending.
func (c *Creator) Process(ctx context.Context, o *models.Order) error {
	err := c.orders.Transition(ctx, o.ID, order.StateApproversReviewed, nil)
	if err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return nil
		}
		return err
	}

	res, err := c.signer.GenerateKey(ctx, o.ClientID)
	if err != nil {
		return c.orders.SetTerminalError(ctx, o.ID, order.Error{
			Code:    "key_generation_failed",
			Message: err.Error(),
		})
	}

	address, err := AddressFromPublicKeyHex(res.PublicKey)
	if err != nil {
		return c.orders.SetTerminalError(ctx, o.ID, order.Error{
			Code:    "key_generation_failed",
			Message: err.Error(),
		})
	}

	data, err := order.DecodeKeyCreationData(o.Data)
	if err != nil {
		return err
	}

	keyID, err := uuid.Parse(res.KeyID)
	if err != nil {
		return errors.Wrap(err, "signer authority returned a malformed key id")
	}

	data.KeyID = keyID
	data.Address = address
	data.PublicKey = res.PublicKey

	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key creation order data")
	}

	err = dbutil.WithTransaction(ctx, c.db, func(exec boil.ContextExecutor) error {
		err := c.orders.TransitionExec(ctx, exec, o.ID, order.StateSigned, models.M{
			models.OrderColumns.Data:    raw,
			models.OrderColumns.KeyID:   null.StringFrom(res.KeyID),
			models.OrderColumns.Address: null.StringFrom(address),
		})
		if err != nil {
			return err
		}

		return c.keys.Create(ctx, exec, &models.Key{
			ID:           res.KeyID,
			ClientID:     o.ClientID,
			ClientUserID: null.NewString(data.ClientUserID, data.ClientUserID != ""),
			OwningUserID: null.NewString(data.OwningUserID, data.OwningUserID != ""),
			Address:      address,
			PublicKey:    res.PublicKey,
			OrderID:      o.ID,
			OrderType:    o.OrderType,
			OrderVersion: o.OrderVersion,
		})
	})
	if err != nil {
		return err
	}

	if err := c.orders.Transition(ctx, o.ID, order.StateCompleted, nil); err != nil && !errors.Is(err, order.ErrInvalidTransition) {
		return err
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("key_id", res.KeyID).
		Str("address", address).
		Msg("Created key")

	return nil
}

// Finalize completes a key creation order stuck in SIGNED. The SIGNED
// transition commits together with the key row, so an order found in SIGNED
// only misses the final transition, typically after a crash between the two.
func (c *Creator) Finalize(ctx context.Context, o *models.Order) error {
	err := c.orders.Transition(ctx, o.ID, order.StateCompleted, nil)
	if err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return nil
		}
		return err
	}

	util.LogFromContext(ctx).Info().Str("order_id", o.ID).Msg("Completed stuck key creation order")

	return nil
}
