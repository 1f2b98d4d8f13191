package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
)

// TxRunner is the unit of work for a sync run: every store write made
// inside fn shares one Mongo session and commits or rolls back
// together. The session travels to the stores through the context fn
// receives. client must be the same client the stores' collections
// were opened on, the driver rejects operations whose session belongs
// to another client.
type TxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return &apperr.PersistenceError{Collection: "session", Err: err}
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
