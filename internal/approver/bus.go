package approver

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

const (
	requestChannelPrefix = "approvals:requests:"
	responseChannel      = "approvals:responses"
)

// RequestEnvelope is the signing request dispatched to a single approver. The
// transaction is the normalized form with the nonce zeroed, the real nonce is
// assigned after approval.
type RequestEnvelope struct {
	OrderID         string          `json:"order_id"`
	ApproverName    string          `json:"approver_name"`
	ClientID        string          `json:"client_id"`
	PolicyName      string          `json:"policy_name"`
	TransactionType string          `json:"transaction_type"`
	Transaction     json.RawMessage `json:"transaction"`
}

// Bus carries approval traffic over redis pub/sub. Requests go out on a
// per-approver channel, responses come back on a shared one.
type Bus struct {
	rdb *redis.Client
}

func NewBus(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

// PublishRequest dispatches the envelope to the approver's ingress channel.
func (b *Bus) PublishRequest(ctx context.Context, env *RequestEnvelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "failed to encode approval request envelope")
	}

	err = b.rdb.Publish(ctx, requestChannelPrefix+env.ApproverName, payload).Err()

	return errors.Wrapf(err, "failed to publish approval request for approver %s", env.ApproverName)
}

// ConsumeResponses subscribes to the response channel and feeds every decoded
// response to handle until the context is cancelled. Malformed messages are
// logged and skipped.
func (b *Bus) ConsumeResponses(ctx context.Context, handle func(ctx context.Context, resp *order.ApprovalResponse, approverName string) error) error {
	sub := b.rdb.Subscribe(ctx, responseChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return errors.New("approval response channel closed")
			}

			var resp order.ApprovalResponse
			if err := json.Unmarshal([]byte(msg.Payload), &resp); err != nil {
				util.LogFromContext(ctx).Warn().Err(err).Msg("Dropping malformed approval response")
				continue
			}

			if err := handle(ctx, &resp, resp.ApproverName); err != nil {
				util.LogFromContext(ctx).Error().Err(err).
					Str("order_id", resp.OrderID.String()).
					Str("approver_name", resp.ApproverName).
					Msg("Failed to process approval response")
			}
		}
	}
}
