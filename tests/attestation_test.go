package tests

import (
	"crypto/sha256"
	"path"
	"testing"

	"github.com/complychain/attestation-contract/common"
	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const attestationPath = "../contracts/attestation"

func deployAttestationContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, attestationPath,
		path.Join(attestationPath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

type testAuthority struct {
	signer neotest.SingleSigner
	pub    []byte
}

func newAuthority(t *testing.T, e *neotest.Executor) testAuthority {
	s := e.NewAccount(t).(neotest.SingleSigner)
	return testAuthority{
		signer: s,
		pub:    s.Account().PrivateKey().PublicKey().Bytes(),
	}
}

// newRegistryInvoker deploys the contract, runs init and returns an invoker
// signed by the registry authority.
func newRegistryInvoker(t *testing.T) (*neotest.ContractInvoker, testAuthority) {
	e := newExecutor(t)
	h := deployAttestationContract(t, e)

	auth := newAuthority(t, e)
	c := e.NewInvoker(h, auth.signer)
	c.Invoke(t, stackitem.Null{}, "init", auth.pub)
	return c, auth
}

// attestationID mirrors the contract's content-addressed ID derivation.
func attestationID(auditHash []byte) []byte {
	d := sha256.Sum256(append([]byte("attestation"), auditHash...))
	return d[:]
}

type testAttestation struct {
	jurisdiction int64
	typ          int64
	taxYear      int64
	auditHash    []byte
	expiresAt    int64
	wallets      []interface{}
	id           []byte
}

func dummyAttestation(wallets int) testAttestation {
	hash := randomBytes(32)
	ws := make([]interface{}, wallets)
	for i := range ws {
		ws[i] = randomBytes(33)
	}
	return testAttestation{
		jurisdiction: int64(attestconst.JurisdictionUS),
		typ:          int64(attestconst.TypeTaxCompliance),
		taxYear:      2024,
		auditHash:    hash,
		expiresAt:    1767225600000,
		wallets:      ws,
		id:           attestationID(hash),
	}
}

func createAttestation(t *testing.T, c *neotest.ContractInvoker, a testAttestation) util.Uint256 {
	return c.Invoke(t, stackitem.NewByteArray(a.id), "createAttestation",
		a.jurisdiction, a.typ, a.taxYear, a.auditHash, a.expiresAt, a.wallets)
}

// getRecord reads the attestation back and returns its raw structure fields.
func getRecord(t *testing.T, c *neotest.ContractInvoker, id []byte) []stackitem.Item {
	s, err := c.TestInvoke(t, "get", id)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 10)
	return arr
}

func intField(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func bytesField(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func recordStatus(t *testing.T, c *neotest.ContractInvoker, id []byte) int64 {
	return intField(t, getRecord(t, c, id)[3])
}

func TestInit(t *testing.T) {
	e := newExecutor(t)
	h := deployAttestationContract(t, e)

	auth := newAuthority(t, e)
	stranger := newAuthority(t, e)

	cStranger := e.NewInvoker(h, stranger.signer)
	cStranger.InvokeFail(t, common.ErrAuthorityWitnessFailed, "init", auth.pub)

	c := e.NewInvoker(h, auth.signer)
	c.InvokeFail(t, attestconst.ErrInvalidKey, "init", auth.pub[:16])

	txH := c.Invoke(t, stackitem.Null{}, "init", auth.pub)
	aer := c.CheckHalt(t, txH)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ProgramInitialized", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{stackitem.NewByteArray(auth.pub)}),
		aer.Events[0].Item)

	c.Invoke(t, stackitem.NewByteArray(auth.pub), "authority")
	c.Invoke(t, stackitem.Make(0), "attestationCount")
	c.Invoke(t, stackitem.Make(common.Version), "version")

	c.InvokeFail(t, attestconst.ErrAlreadyInitialized, "init", auth.pub)
	c.InvokeFail(t, attestconst.ErrAlreadyInitialized, "init", stranger.pub)
}

func TestCreateAttestation(t *testing.T) {
	c, auth := newRegistryInvoker(t)

	t.Run("not initialized", func(t *testing.T) {
		e := newExecutor(t)
		h := deployAttestationContract(t, e)
		a := dummyAttestation(1)

		e.NewInvoker(h, newAuthority(t, e).signer).
			InvokeFail(t, attestconst.ErrNotInitialized, "createAttestation",
				a.jurisdiction, a.typ, a.taxYear, a.auditHash, a.expiresAt, a.wallets)
	})

	a := dummyAttestation(2)
	txH := createAttestation(t, c, a)

	aer := c.CheckHalt(t, txH)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "AttestationCreated", aer.Events[0].Name)

	ev := aer.Events[0].Item.Value().([]stackitem.Item)
	require.Len(t, ev, 8)
	require.Equal(t, a.id, bytesField(t, ev[0]))
	require.Equal(t, a.jurisdiction, intField(t, ev[2]))
	require.Equal(t, a.typ, intField(t, ev[3]))
	require.Equal(t, a.taxYear, intField(t, ev[4]))
	require.Equal(t, a.auditHash, bytesField(t, ev[5]))
	require.Equal(t, a.expiresAt, intField(t, ev[7]))

	c.Invoke(t, stackitem.Make(1), "attestationCount")

	rec := getRecord(t, c, a.id)
	require.Equal(t, auth.pub, bytesField(t, rec[0]))
	require.Equal(t, a.jurisdiction, intField(t, rec[1]))
	require.Equal(t, a.typ, intField(t, rec[2]))
	require.Equal(t, int64(attestconst.StatusActive), intField(t, rec[3]))
	require.Equal(t, a.taxYear, intField(t, rec[4]))
	require.Equal(t, a.auditHash, bytesField(t, rec[5]))
	require.Positive(t, intField(t, rec[6])) // issuedAt comes from the ledger clock
	require.Equal(t, a.expiresAt, intField(t, rec[7]))
	require.Zero(t, intField(t, rec[8])) // never revoked
	wallets := rec[9].Value().([]stackitem.Item)
	require.Len(t, wallets, 2)
	for i := range wallets {
		require.Equal(t, a.wallets[i], bytesField(t, wallets[i]))
	}

	t.Run("duplicate audit hash", func(t *testing.T) {
		dup := dummyAttestation(3)
		dup.auditHash = a.auditHash
		c.InvokeFail(t, attestconst.ErrAlreadyExists, "createAttestation",
			dup.jurisdiction, dup.typ, dup.taxYear, dup.auditHash, dup.expiresAt, dup.wallets)
	})

	t.Run("unauthorized", func(t *testing.T) {
		other := c.NewAccount(t)
		b := dummyAttestation(1)
		c.WithSigners(other).InvokeFail(t, common.ErrAuthorityWitnessFailed,
			"createAttestation", b.jurisdiction, b.typ, b.taxYear, b.auditHash,
			b.expiresAt, b.wallets)

		_, err := c.TestInvoke(t, "get", b.id)
		require.Error(t, err)
		c.Invoke(t, stackitem.Make(1), "attestationCount")
	})

	t.Run("wallet count", func(t *testing.T) {
		b := dummyAttestation(0)
		c.InvokeFail(t, attestconst.ErrInvalidWalletCount, "createAttestation",
			b.jurisdiction, b.typ, b.taxYear, b.auditHash, b.expiresAt, b.wallets)

		b = dummyAttestation(11)
		c.InvokeFail(t, attestconst.ErrInvalidWalletCount, "createAttestation",
			b.jurisdiction, b.typ, b.taxYear, b.auditHash, b.expiresAt, b.wallets)

		b = dummyAttestation(10)
		createAttestation(t, c, b)
	})

	t.Run("field validation", func(t *testing.T) {
		b := dummyAttestation(1)
		c.InvokeFail(t, attestconst.ErrInvalidJurisdiction, "createAttestation",
			int64(9), b.typ, b.taxYear, b.auditHash, b.expiresAt, b.wallets)
		c.InvokeFail(t, attestconst.ErrInvalidType, "createAttestation",
			b.jurisdiction, int64(5), b.taxYear, b.auditHash, b.expiresAt, b.wallets)
		c.InvokeFail(t, attestconst.ErrInvalidAuditHash, "createAttestation",
			b.jurisdiction, b.typ, b.taxYear, b.auditHash[:16], b.expiresAt, b.wallets)
		c.InvokeFail(t, attestconst.ErrInvalidKey, "createAttestation",
			b.jurisdiction, b.typ, b.taxYear, b.auditHash, b.expiresAt,
			[]interface{}{randomBytes(20)})
	})

	t.Run("tax year range", func(t *testing.T) {
		b := dummyAttestation(1)
		c.InvokeFail(t, attestconst.ErrInvalidTaxYear, "createAttestation",
			b.jurisdiction, b.typ, int64(-5), b.auditHash, b.expiresAt, b.wallets)
		c.InvokeFail(t, attestconst.ErrInvalidTaxYear, "createAttestation",
			b.jurisdiction, b.typ, int64(70000), b.auditHash, b.expiresAt, b.wallets)

		// Rejected transactions must not occupy the content address.
		_, err := c.TestInvoke(t, "get", b.id)
		require.Error(t, err)

		b.taxYear = int64(attestconst.MaxTaxYear)
		createAttestation(t, c, b)
		require.Equal(t, b.taxYear, intField(t, getRecord(t, c, b.id)[4]))
	})
}

func TestUpdateStatus(t *testing.T) {
	c, _ := newRegistryInvoker(t)

	a := dummyAttestation(1)
	createAttestation(t, c, a)

	t.Run("unauthorized", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrAuthorityWitnessFailed,
			"updateStatus", a.id, int64(attestconst.StatusExpired))
		require.Equal(t, int64(attestconst.StatusActive), recordStatus(t, c, a.id))
	})

	t.Run("unknown record", func(t *testing.T) {
		c.InvokeFail(t, attestconst.ErrNotFound, "updateStatus",
			randomBytes(32), int64(attestconst.StatusExpired))
	})

	t.Run("rejected from Active", func(t *testing.T) {
		for _, status := range []int64{
			int64(attestconst.StatusPending),
			int64(attestconst.StatusActive), // self-transition
			int64(7),                        // unknown status
		} {
			c.InvokeFail(t, attestconst.ErrInvalidStatusTransition, "updateStatus", a.id, status)
		}
	})

	txH := c.Invoke(t, stackitem.Null{}, "updateStatus", a.id, int64(attestconst.StatusExpired))
	aer := c.CheckHalt(t, txH)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "StatusUpdated", aer.Events[0].Name)

	ev := aer.Events[0].Item.Value().([]stackitem.Item)
	require.Len(t, ev, 3)
	require.Equal(t, a.id, bytesField(t, ev[0]))
	require.Equal(t, int64(attestconst.StatusActive), intField(t, ev[1]))
	require.Equal(t, int64(attestconst.StatusExpired), intField(t, ev[2]))

	t.Run("Expired is terminal", func(t *testing.T) {
		for _, status := range []int64{
			int64(attestconst.StatusPending),
			int64(attestconst.StatusActive),
			int64(attestconst.StatusExpired),
			int64(attestconst.StatusRevoked),
		} {
			c.InvokeFail(t, attestconst.ErrInvalidStatusTransition, "updateStatus", a.id, status)
		}
	})

	t.Run("revocation via the generic path", func(t *testing.T) {
		b := dummyAttestation(1)
		createAttestation(t, c, b)

		rec := getRecord(t, c, b.id)
		issuedAt := intField(t, rec[6])

		c.Invoke(t, stackitem.Null{}, "updateStatus", b.id, int64(attestconst.StatusRevoked))

		rec = getRecord(t, c, b.id)
		require.Equal(t, int64(attestconst.StatusRevoked), intField(t, rec[3]))
		require.GreaterOrEqual(t, intField(t, rec[8]), issuedAt)

		t.Run("Revoked is terminal", func(t *testing.T) {
			c.InvokeFail(t, attestconst.ErrInvalidStatusTransition, "updateStatus",
				b.id, int64(attestconst.StatusActive))
		})
	})
}

func TestRevokeAttestation(t *testing.T) {
	c, _ := newRegistryInvoker(t)

	a := dummyAttestation(2)
	createAttestation(t, c, a)

	t.Run("unauthorized", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrAuthorityWitnessFailed,
			"revokeAttestation", a.id)
		require.Equal(t, int64(attestconst.StatusActive), recordStatus(t, c, a.id))
	})

	t.Run("unknown record", func(t *testing.T) {
		c.InvokeFail(t, attestconst.ErrNotFound, "revokeAttestation", randomBytes(32))
	})

	txH := c.Invoke(t, stackitem.Null{}, "revokeAttestation", a.id)
	aer := c.CheckHalt(t, txH)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "AttestationRevoked", aer.Events[0].Name)

	ev := aer.Events[0].Item.Value().([]stackitem.Item)
	require.Len(t, ev, 3)
	require.Equal(t, a.id, bytesField(t, ev[0]))
	require.Len(t, ev[1].Value().([]stackitem.Item), 2)
	require.Positive(t, intField(t, ev[2]))

	rec := getRecord(t, c, a.id)
	require.Equal(t, int64(attestconst.StatusRevoked), intField(t, rec[3]))
	require.Equal(t, intField(t, ev[2]), intField(t, rec[8]))

	// Counter is never decremented, revoked records still count.
	c.Invoke(t, stackitem.Make(1), "attestationCount")

	t.Run("already revoked", func(t *testing.T) {
		c.InvokeFail(t, attestconst.ErrNotActive, "revokeAttestation", a.id)
	})

	t.Run("expired record", func(t *testing.T) {
		b := dummyAttestation(1)
		createAttestation(t, c, b)
		c.Invoke(t, stackitem.Null{}, "updateStatus", b.id, int64(attestconst.StatusExpired))
		c.InvokeFail(t, attestconst.ErrNotActive, "revokeAttestation", b.id)
	})
}

func TestCalculateID(t *testing.T) {
	c, _ := newRegistryInvoker(t)

	hash := randomBytes(32)
	c.Invoke(t, stackitem.NewByteArray(attestationID(hash)), "calculateID", hash)
	c.InvokeFail(t, attestconst.ErrInvalidAuditHash, "calculateID", hash[:31])
}

func TestListAndIterate(t *testing.T) {
	c, _ := newRegistryInvoker(t)

	s, err := c.TestInvoke(t, "list")
	require.NoError(t, err)
	require.Equal(t, stackitem.Null{}, s.Pop().Item())

	created := make(map[string]bool)
	for i := 0; i < 3; i++ {
		a := dummyAttestation(1)
		createAttestation(t, c, a)
		created[string(a.id)] = true
	}

	s, err = c.TestInvoke(t, "list")
	require.NoError(t, err)
	ids := s.Pop().Array()
	require.Len(t, ids, 3)
	for i := range ids {
		require.True(t, created[string(bytesField(t, ids[i]))])
	}

	s, err = c.TestInvoke(t, "iterate")
	require.NoError(t, err)
	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	items := iteratorToArray(iter)
	require.Len(t, items, 3)
	for i := range items {
		rec := items[i].Value().([]stackitem.Item)
		require.Len(t, rec, 10)
		require.True(t, created[string(attestationID(bytesField(t, rec[5])))])
	}
}

func TestScenario(t *testing.T) {
	c, _ := newRegistryInvoker(t)

	wallets := []interface{}{randomBytes(33), randomBytes(33)}
	h1 := randomBytes(32)
	id := attestationID(h1)

	c.Invoke(t, stackitem.NewByteArray(id), "createAttestation",
		int64(attestconst.JurisdictionUS), int64(attestconst.TypeTaxCompliance),
		int64(2024), h1, int64(1767225600000), wallets)

	require.Equal(t, int64(attestconst.StatusActive), recordStatus(t, c, id))
	c.Invoke(t, stackitem.Make(1), "attestationCount")

	c.InvokeFail(t, attestconst.ErrAlreadyExists, "createAttestation",
		int64(attestconst.JurisdictionEU), int64(attestconst.TypeAuditComplete),
		int64(2023), h1, int64(1798761600000), []interface{}{randomBytes(33)})

	c.Invoke(t, stackitem.Null{}, "updateStatus", id, int64(attestconst.StatusExpired))
	require.Equal(t, int64(attestconst.StatusExpired), recordStatus(t, c, id))

	c.InvokeFail(t, attestconst.ErrNotActive, "revokeAttestation", id)
}
