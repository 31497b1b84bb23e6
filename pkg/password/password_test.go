package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-tracker/pkg/password"
)

func TestHash_MismaEntradaProduceHashesDistintos(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "la sal aleatoria debe producir hashes distintos")
	assert.NotContains(t, a, "secret1")
}

func TestVerify(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
	assert.False(t, h.Verify("secret1", "no-es-un-hash"))
}

func TestHash_VacioRetornaError(t *testing.T) {
	_, err := password.NewHasher(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestNewHasher_CostFueraDeRangoUsaDefault(t *testing.T) {
	h := password.NewHasher(0)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.Cost, cost)
}

func TestVerifyDummy_SiempreFalso(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	assert.False(t, h.VerifyDummy("inventory-tracker-dummy"))
	assert.False(t, h.VerifyDummy("cualquiera"))
}
