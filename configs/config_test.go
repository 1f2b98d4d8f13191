package config

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUniqueInstanceExposesId(t *testing.T) {
	id := CreateUniqueInstance("catalog")

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetInstanceId())

	_, err := uuid.FromString(id)
	assert.NoError(t, err)
}
