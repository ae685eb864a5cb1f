package deploy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"

	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
	"github.com/complychain/attestation-contract/rpc/attestation"
)

// testBlockchain implements only the contract state lookup, other Blockchain
// methods are inherited from the nil embedded interface and must not be
// called.
type testBlockchain struct {
	Blockchain

	state *state.Contract
	err   error
}

func (x *testBlockchain) GetContractStateByHash(util.Uint160) (*state.Contract, error) {
	return x.state, x.err
}

// testRegistryInvoker serves a fixed response to safe method calls, other
// invoker methods must not be called.
type testRegistryInvoker struct {
	res *result.Invoke
	err error
}

func (x *testRegistryInvoker) Call(util.Uint160, string, ...any) (*result.Invoke, error) {
	return x.res, x.err
}

func (x *testRegistryInvoker) CallAndExpandIterator(util.Uint160, string, int, ...any) (*result.Invoke, error) {
	panic("not expected to be called")
}

func (x *testRegistryInvoker) TerminateSession(uuid.UUID) error {
	panic("not expected to be called")
}

func (x *testRegistryInvoker) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	panic("not expected to be called")
}

func TestIsRegistryInitialized(t *testing.T) {
	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	var addr util.Uint160

	r := attestation.NewReader(&testRegistryInvoker{res: &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.NewByteArray(priv.PublicKey().Bytes())},
	}}, addr)
	ok, err := isRegistryInitialized(r)
	require.NoError(t, err)
	require.True(t, ok)

	r = attestation.NewReader(&testRegistryInvoker{res: &result.Invoke{
		State:          "FAULT",
		FaultException: attestconst.ErrNotInitialized,
	}}, addr)
	ok, err = isRegistryInitialized(r)
	require.NoError(t, err)
	require.False(t, ok)

	// Transient transport failures must surface instead of looking like an
	// uninitialized registry.
	r = attestation.NewReader(&testRegistryInvoker{err: errors.New("connection refused")}, addr)
	_, err = isRegistryInitialized(r)
	require.ErrorContains(t, err, "connection refused")
}

func TestIsContractDeployed(t *testing.T) {
	var addr util.Uint160

	ok, err := isContractDeployed(&testBlockchain{state: &state.Contract{}}, addr)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = isContractDeployed(&testBlockchain{err: errors.New("Unknown contract")}, addr)
	require.NoError(t, err)
	require.False(t, ok)

	anyErr := errors.New("connection refused")
	_, err = isContractDeployed(&testBlockchain{err: anyErr}, addr)
	require.ErrorIs(t, err, anyErr)
}
