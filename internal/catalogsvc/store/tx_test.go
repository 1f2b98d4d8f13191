package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
)

// The driver refuses any collection operation whose session context
// comes from a different client, so wiring the unit of work with its
// own client would make every transactional write fail. The check is
// client-side, no server is needed.
func TestTxRunnerMustShareClientWithStores(t *testing.T) {
	ctx := context.Background()

	clientA, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	defer clientA.Disconnect(ctx)

	clientB, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	defer clientB.Disconnect(ctx)

	entities := NewEntityStore(clientA.Database("catalog"))
	tx := NewTxRunner(clientB)

	err = tx.Run(ctx, func(txCtx context.Context) error {
		_, err := entities.UpsertMany(txCtx, []models.Entity{
			{RawgID: 1, Type: models.EntityTag, Name: "Singleplayer"},
		})
		return err
	})
	require.Error(t, err)

	var pe *apperr.PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "session was not created by this client")
}
