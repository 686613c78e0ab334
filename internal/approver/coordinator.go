package approver

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/maestro"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/policy"
	"github/custodia/signing-service/internal/util"
)

const sweepBatchLimit = 100

// Coordinator runs the approval flow of an order: it resolves the applicable
// policy, snapshots the approver list, dispatches signing requests, collects
// the responses and, once every approver answered, either hands the order to
// the signer authority or terminates it as NOT_SIGNED.
type Coordinator struct {
	config   config.Engine
	orders   *order.Store
	policies *policy.Resolver
	signer   *maestro.Client
	bus      *Bus
	clock    time2.Clock
}

func NewCoordinator(cfg config.Engine, orders *order.Store, policies *policy.Resolver, signer *maestro.Client, bus *Bus, clock time2.Clock) *Coordinator {
	return &Coordinator{
		config:   cfg,
		orders:   orders,
		policies: policies,
		signer:   signer,
		bus:      bus,
		clock:    clock,
	}
}

// Begin resolves the order's policy, snapshots the approver list onto the
// order and dispatches the signing request to every approver. An order whose
// policy has no approvers is decided immediately.
func (c *Coordinator) Begin(ctx context.Context, o *models.Order) error {
	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return err
	}

	var toAddress *string
	if data.Transaction.To != "" {
		to := strings.ToLower(data.Transaction.To)
		toAddress = &to
	}

	policyName, err := c.policies.Resolve(ctx, o.ClientID, data.Transaction.ChainID, toAddress)
	if err != nil {
		return err
	}

	def, err := c.signer.FetchPolicy(ctx, policyName, o.ClientID)
	if err != nil {
		return err
	}

	snapshot := snapshotPolicy(policyName, def)
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal policy snapshot")
	}

	if err := c.orders.SetPolicy(ctx, o.ID, raw); err != nil {
		return err
	}

	normalized, err := normalizedTransaction(&data.Transaction)
	if err != nil {
		return err
	}

	for _, a := range snapshot.Approvals {
		err := c.bus.PublishRequest(ctx, &RequestEnvelope{
			OrderID:         o.ID,
			ApproverName:    a.Name,
			ClientID:        o.ClientID,
			PolicyName:      policyName,
			TransactionType: data.Transaction.Kind(),
			Transaction:     normalized,
		})
		if err != nil {
			return err
		}
	}

	util.LogFromContext(ctx).Info().
		Str("order_id", o.ID).
		Str("policy_name", policyName).
		Int("approvers", len(snapshot.Approvals)).
		Msg("Dispatched approval requests")

	if len(snapshot.Approvals) == 0 {
		return c.decide(ctx, o.ID, snapshot)
	}

	return nil
}

// IngestResponse records one approver's decision. The first response per
// approver wins, later duplicates and responses arriving after the order left
// RECEIVED are dropped. When the response completes the set, the order is
// decided.
func (c *Coordinator) IngestResponse(ctx context.Context, resp *order.ApprovalResponse, approverName string) error {
	var complete bool
	var snapshot *order.Policy

	orderID := resp.OrderID.String()
	err := c.orders.WithOrderForUpdate(ctx, orderID, func(exec boil.ContextExecutor, o *models.Order) error {
		if o.State != string(order.StateReceived) {
			util.LogFromContext(ctx).Info().
				Str("order_id", o.ID).
				Str("approver_name", approverName).
				Str("state", o.State).
				Msg("Dropping approval response for order no longer awaiting approvals")
			return nil
		}

		pol, err := order.DecodePolicy(o.Policy.JSON)
		if err != nil {
			return err
		}

		slot := pol.ApprovalFor(approverName)
		if slot == nil {
			util.LogFromContext(ctx).Warn().
				Str("order_id", o.ID).
				Str("approver_name", approverName).
				Msg("Dropping approval response from approver not in policy")
			return nil
		}
		if slot.Response != nil {
			return nil
		}

		slot.Response = resp
		raw, err := json.Marshal(pol)
		if err != nil {
			return errors.Wrap(err, "failed to marshal policy snapshot")
		}
		if err := c.orders.UpdatePolicyExec(ctx, exec, o.ID, raw); err != nil {
			return err
		}

		complete = pol.Complete()
		snapshot = pol

		return nil
	})
	if err != nil || !complete {
		return err
	}

	return c.decide(ctx, orderID, snapshot)
}

// decide terminates the review phase. It runs once every approver responded:
// a required rejection moves the order to NOT_SIGNED, full approval hands it
// to the signer authority and stores the signed artifacts.
func (c *Coordinator) decide(ctx context.Context, orderID string, pol *order.Policy) error {
	err := c.orders.Transition(ctx, orderID, order.StateApproversReviewed, nil)
	if err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return nil
		}
		return err
	}

	if !pol.Approved() {
		reason := strings.Join(pol.RejectionReasons(), "; ")
		util.LogFromContext(ctx).Info().
			Str("order_id", orderID).
			Str("reason", reason).
			Msg("Order rejected by approvers")

		return c.notSigned(ctx, orderID, order.Error{Code: "approvals_rejected", Message: reason})
	}

	return c.sign(ctx, orderID, pol)
}

// sign asks the signer authority for the nonce-zero signature and moves the
// order to SIGNED with the returned artifacts in its data payload.
func (c *Coordinator) sign(ctx context.Context, orderID string, pol *order.Policy) error {
	o, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	data, err := order.DecodeSignatureData(o.Data)
	if err != nil {
		return err
	}

	normalized, err := normalizedTransaction(&data.Transaction)
	if err != nil {
		return err
	}

	res, err := c.signer.Sign(ctx, &maestro.SignRequest{
		OrderID:             o.ID,
		KeyID:               data.KeyID.String(),
		TransactionType:     data.Transaction.Kind(),
		Transaction:         normalized,
		PolicyName:          pol.Name,
		AuthorizingEntities: AuthorizingEntities(pol),
	})
	if err != nil {
		var rejected *maestro.ErrRejected
		if errors.As(err, &rejected) {
			return c.notSigned(ctx, o.ID, order.Error{Code: "signer_rejected", Message: rejected.Reason})
		}
		return err
	}

	data.MaestroSignature = res.SignedTransaction
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal signed order data")
	}

	return c.orders.Transition(ctx, o.ID, order.StateSigned, models.M{
		models.OrderColumns.Data: raw,
	})
}

func (c *Coordinator) notSigned(ctx context.Context, orderID string, orderErr order.Error) error {
	raw, err := json.Marshal(orderErr)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order error")
	}

	return c.orders.Transition(ctx, orderID, order.StateNotSigned, models.M{
		models.OrderColumns.Error: null.JSONFrom(raw),
	})
}

// SweepTimeouts terminates orders that sat in RECEIVED beyond the approval
// timeout. Approvers responding after the sweep are ignored by IngestResponse.
func (c *Coordinator) SweepTimeouts(ctx context.Context) error {
	cutoff := order.BoundedTime{
		Time:  c.clock.Now().Add(-c.config.ApprovalTimeout),
		Limit: sweepBatchLimit,
	}

	stale, err := c.orders.StaleInState(ctx, order.StateReceived, cutoff)
	if err != nil {
		return err
	}

	for _, o := range stale {
		err := c.notSigned(ctx, o.ID, order.Error{
			Code:    "approval_timeout",
			Message: "order timed out waiting for approver responses",
		})
		if err != nil && !errors.Is(err, order.ErrInvalidTransition) {
			return err
		}

		util.LogFromContext(ctx).Info().
			Str("order_id", o.ID).
			Msg("Timed out order waiting for approvals")
	}

	return nil
}

// snapshotPolicy turns the fetched policy definition into the per-order
// approval tracker, every slot starting without a response.
func snapshotPolicy(name string, def *maestro.PolicyDefinition) *order.Policy {
	approvals := make([]*order.Approval, 0, len(def.Required)+len(def.Optional))
	for _, a := range def.Required {
		approvals = append(approvals, &order.Approval{Name: a.Name, Level: a.Level, Required: true})
	}
	for _, a := range def.Optional {
		approvals = append(approvals, &order.Approval{Name: a.Name, Level: a.Level})
	}

	return &order.Policy{Name: name, Approvals: approvals}
}

// normalizedTransaction renders the transaction with the nonce zeroed. The
// real nonce is assigned at selection time and passed to the signer authority
// separately, keeping the payload the approvers signed off on stable.
func normalizedTransaction(tx *order.Transaction) (json.RawMessage, error) {
	normalized := *tx
	normalized.Nonce = (*order.U256)(big.NewInt(0))

	raw, err := json.Marshal(&normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal normalized transaction")
	}

	return raw, nil
}

// AuthorizingEntities collects the responded approvals in the form the signer
// authority verifies.
func AuthorizingEntities(pol *order.Policy) []maestro.AuthorizingEntity {
	entities := make([]maestro.AuthorizingEntity, 0, len(pol.Approvals))
	for _, a := range pol.Approvals {
		if a.Response == nil {
			continue
		}
		entities = append(entities, maestro.AuthorizingEntity{
			Name:              a.Name,
			Level:             a.Level,
			Metadata:          a.Response.Metadata,
			MetadataSignature: a.Response.MetadataSignature,
		})
	}

	return entities
}
