package fixtures

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
)

// Upsertable is implemented by all sqlboiler models, allowing the fixture set
// to be applied in one pass.
type Upsertable interface {
	Upsert(ctx context.Context, exec boil.ContextExecutor, updateOnConflict bool, conflictColumns []string, updateColumns boil.Columns, insertColumns boil.Columns) error
}

// FixtureMap holds a consistent set of development and test rows: one client
// with a completed key creation, a submitted signature order and the
// supporting policy, sponsor and nonce rows.
type FixtureMap struct {
	Client1KeyCreationOrder *models.Order
	Client1Key              *models.Key
	Client1SignatureOrder   *models.Order
	Client1DefaultPolicy    *models.AddressPolicy
	Client1SponsorAddress   *models.SponsorAddress
	Client1Nonce            *models.Nonce
}

const (
	ClientID1 = "client-fixture-1"

	Key1ID      = "f3f2e541-3e2b-40bc-b4b8-07b4a9847a09"
	Key1Address = "0x3efdbcbfc4a1e75f09c41d7bce1f0a4a13219e41"
)

var fixtureTime = time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

func Fixtures() FixtureMap {
	keyCreationOrderID := "9e1d6a4f-af09-4598-9c0c-3ed392c6cbb0"
	signatureOrderID := "5c73c1e2-9da2-489c-b996-7a1f44a4b50f"

	return FixtureMap{
		Client1KeyCreationOrder: &models.Order{
			ID:             keyCreationOrderID,
			OrderVersion:   "1",
			OrderType:      string(order.TypeKeyCreation),
			State:          string(order.StateCompleted),
			ClientID:       ClientID1,
			KeyID:          null.StringFrom(Key1ID),
			Address:        null.StringFrom(Key1Address),
			Data:           []byte(`{"client_user_id":"user-fixture-1"}`),
			CreatedAt:      fixtureTime,
			LastModifiedAt: fixtureTime,
		},
		Client1Key: &models.Key{
			ID:           Key1ID,
			ClientID:     ClientID1,
			ClientUserID: null.StringFrom("user-fixture-1"),
			Address:      Key1Address,
			PublicKey:    "0x04bfcab3b8d0aa26b6b3b1a9c2b7f74e9b5a3c8d1e0f2a4b6c8d0e2f4a6b8c0d2e4f6a8b0c2d4e6f8a0b2c4d6e8f0a2b4c6d8e0f2a4b6c8d0e2f4a6b8c0d2e4f6a8",
			OrderID:      keyCreationOrderID,
			OrderType:    string(order.TypeKeyCreation),
			OrderVersion: "1",
			CreatedAt:    fixtureTime,
		},
		Client1SignatureOrder: &models.Order{
			ID:              signatureOrderID,
			OrderVersion:    "1",
			OrderType:       string(order.TypeSignature),
			State:           string(order.StateSubmitted),
			ClientID:        ClientID1,
			KeyID:           null.StringFrom(Key1ID),
			Address:         null.StringFrom(Key1Address),
			ChainID:         null.Int64From(11155111),
			TransactionHash: null.StringFrom("0x09a3cfb13bd1c72e6ab3614764ffc5f6335d6f7e860de7e6018ee865cbd2b291"),
			Data:            []byte(`{"address":"` + Key1Address + `","key_id":"` + Key1ID + `","transaction":{"to":"0x52908400098527886e0f7030069857d2e4169ee7","chain_id":11155111,"gas":"21000","value":"1","nonce":"0","max_fee_per_gas":"1000000000","max_priority_fee_per_gas":"1000000000"}}`),
			CreatedAt:       fixtureTime,
			LastModifiedAt:  fixtureTime,
		},
		Client1DefaultPolicy: &models.AddressPolicy{
			ID:         "69df267a-6f04-4ea5-98f0-fbed12a7a788",
			ClientID:   ClientID1,
			ChainID:    11155111,
			PolicyName: "default-two-of-three",
			CreatedAt:  fixtureTime,
		},
		Client1SponsorAddress: &models.SponsorAddress{
			ID:               "a24c79da-d4a3-4f38-9a87-59b4e0a96a21",
			ClientID:         ClientID1,
			ChainID:          11155111,
			GasPoolAddress:   "0x8ba1f109551bd432803012645ac136ddd64dba72",
			ForwarderAddress: "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae",
			ForwarderName:    "FixtureForwarder",
			CreatedAt:        fixtureTime,
		},
		Client1Nonce: &models.Nonce{
			Address:        Key1Address,
			ChainID:        11155111,
			Nonce:          0,
			CreatedAt:      fixtureTime,
			LastModifiedAt: fixtureTime,
		},
	}
}

// Inserts returns the fixture rows in dependency order.
func Inserts() []Upsertable {
	fix := Fixtures()

	return []Upsertable{
		fix.Client1KeyCreationOrder,
		fix.Client1Key,
		fix.Client1SignatureOrder,
		fix.Client1DefaultPolicy,
		fix.Client1SponsorAddress,
		fix.Client1Nonce,
	}
}
