package attestation

import (
	"github.com/complychain/attestation-contract/common"
	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Attestation is an authority-issued claim that the listed wallets
	// satisfied a compliance requirement for the given tax year, backed by
	// an off-ledger audit artifact referenced by hash. Everything except
	// Status and RevokedAt is immutable after creation.
	Attestation struct {
		Authority       interop.PublicKey
		Jurisdiction    int
		AttestationType int
		Status          int
		TaxYear         int
		AuditHash       []byte
		IssuedAt        int
		ExpiresAt       int
		RevokedAt       int
		Wallets         []interop.PublicKey
	}
)

const (
	authorityKey = "authority"
	countKey     = "count"

	attestationKeyPrefix = 'a'

	// attestationIDSeed is the fixed namespace tag mixed into record ID
	// derivation.
	attestationIDSeed = "attestation"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)

		return
	}

	runtime.Log("attestation contract deployed")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the registry authority.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(currentAuthority(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("attestation contract updated")
}

// Init sets the registry authority and resets the attestation counter. It can
// be invoked exactly once per deployment and must be witnessed by the
// authority key itself. All subsequent mutating calls require the witness of
// this key.
func Init(authority interop.PublicKey) {
	ctx := storage.GetContext()
	if storage.Get(ctx, authorityKey) != nil {
		panic(attestconst.ErrAlreadyInitialized)
	}

	if len(authority) != interop.PublicKeyCompressedLen {
		panic(attestconst.ErrInvalidKey)
	}

	common.CheckAuthorityWitness(authority)

	storage.Put(ctx, authorityKey, authority)
	storage.Put(ctx, countKey, 0)

	runtime.Notify("ProgramInitialized", authority)
}

// CreateAttestation records a new attestation covering 1..10 wallets and
// returns its ID. The ID is derived from the audit hash, see CalculateID, so
// at most one attestation can ever be recorded per audit artifact. The record
// starts in Active status with issuance time taken from the ledger clock.
// It can be invoked only by the registry authority.
func CreateAttestation(jurisdiction int, attestationType int, taxYear int, auditHash []byte, expiresAt int, wallets []interop.PublicKey) interop.Hash256 {
	ctx := storage.GetContext()
	authority := currentAuthority(ctx)
	common.CheckAuthorityWitness(authority)

	if jurisdiction < attestconst.JurisdictionUS || jurisdiction > attestconst.JurisdictionSG {
		panic(attestconst.ErrInvalidJurisdiction)
	}
	if attestationType < attestconst.TypeTaxCompliance || attestationType > attestconst.TypeAnnualReview {
		panic(attestconst.ErrInvalidType)
	}
	// Years are stored as plain ints, so the 16-bit range is checked here.
	if taxYear < 0 || taxYear > attestconst.MaxTaxYear {
		panic(attestconst.ErrInvalidTaxYear)
	}
	if len(auditHash) != interop.Hash256Len {
		panic(attestconst.ErrInvalidAuditHash)
	}
	if len(wallets) == 0 || len(wallets) > attestconst.MaxWallets {
		panic(attestconst.ErrInvalidWalletCount)
	}
	for i := range wallets {
		if len(wallets[i]) != interop.PublicKeyCompressedLen {
			panic(attestconst.ErrInvalidKey)
		}
	}

	id := calculateID(auditHash)
	key := attestationKey(id)
	if storage.Get(ctx, key) != nil {
		panic(attestconst.ErrAlreadyExists)
	}

	now := runtime.GetTime()
	a := Attestation{
		Authority:       authority,
		Jurisdiction:    jurisdiction,
		AttestationType: attestationType,
		Status:          attestconst.StatusActive,
		TaxYear:         taxYear,
		AuditHash:       auditHash,
		IssuedAt:        now,
		ExpiresAt:       expiresAt,
		RevokedAt:       0,
		Wallets:         wallets,
	}
	common.SetSerialized(ctx, key, a)

	cnt := storage.Get(ctx, countKey).(int)
	storage.Put(ctx, countKey, cnt+1)

	runtime.Notify("AttestationCreated", id, wallets, jurisdiction,
		attestationType, taxYear, auditHash, now, expiresAt)

	return id
}

// UpdateStatus moves the attestation to a new status along the transition
// table: Pending->Active, Active->Expired, Active->Revoked, Pending->Revoked.
// Expired and Revoked are terminal. Entering Revoked stamps the revocation
// time. It can be invoked only by the registry authority.
//
// Note that nothing expires attestations automatically: once expiresAt
// passes, the record stays Active until this method is called with Expired.
func UpdateStatus(id []byte, newStatus int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(currentAuthority(ctx))

	a := getAttestation(ctx, id)
	oldStatus := a.Status

	if !isValidStatusTransition(oldStatus, newStatus) {
		panic(attestconst.ErrInvalidStatusTransition)
	}

	a.Status = newStatus
	if newStatus == attestconst.StatusRevoked {
		a.RevokedAt = runtime.GetTime()
	}

	common.SetSerialized(ctx, attestationKey(id), a)

	runtime.Notify("StatusUpdated", id, oldStatus, newStatus)
}

// RevokeAttestation revokes an Active attestation and stamps the revocation
// time. Unlike UpdateStatus it refuses Pending records: the dedicated
// revocation path is deliberately narrower than the transition table. It can
// be invoked only by the registry authority.
func RevokeAttestation(id []byte) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(currentAuthority(ctx))

	a := getAttestation(ctx, id)
	if a.Status != attestconst.StatusActive {
		panic(attestconst.ErrNotActive)
	}

	a.Status = attestconst.StatusRevoked
	a.RevokedAt = runtime.GetTime()

	common.SetSerialized(ctx, attestationKey(id), a)

	runtime.Notify("AttestationRevoked", id, a.Wallets, a.RevokedAt)
}

// Get returns the attestation stored under the given ID.
func Get(id []byte) Attestation {
	ctx := storage.GetReadOnlyContext()
	return getAttestation(ctx, id)
}

// CalculateID derives the attestation ID from the audit hash. The derivation
// is pure, any party knowing the hash of the audit artifact can re-locate the
// record without an off-ledger index.
func CalculateID(auditHash []byte) interop.Hash256 {
	if len(auditHash) != interop.Hash256Len {
		panic(attestconst.ErrInvalidAuditHash)
	}
	return calculateID(auditHash)
}

// List returns IDs of all recorded attestations.
func List() [][]byte {
	ctx := storage.GetReadOnlyContext()
	it := storage.Find(ctx, []byte{attestationKeyPrefix}, storage.KeysOnly)

	var result [][]byte

	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // iterator MUST BE `storage.KeysOnly`
		result = append(result, key[1:])
	}

	return result
}

// Iterate returns an iterator over all recorded attestations. Items are
// Attestation structures.
func Iterate() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{attestationKeyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// AttestationCount returns the number of attestations ever created. It is
// never decremented, revoked records still count.
func AttestationCount() int {
	ctx := storage.GetReadOnlyContext()
	cnt := storage.Get(ctx, countKey)
	if cnt == nil {
		return 0
	}
	return cnt.(int)
}

// Authority returns the public key permitted to mutate the registry.
func Authority() interop.PublicKey {
	ctx := storage.GetReadOnlyContext()
	return currentAuthority(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func isValidStatusTransition(from, to int) bool {
	switch from {
	case attestconst.StatusPending:
		return to == attestconst.StatusActive || to == attestconst.StatusRevoked
	case attestconst.StatusActive:
		return to == attestconst.StatusExpired || to == attestconst.StatusRevoked
	default:
		// Expired and Revoked are terminal.
		return false
	}
}

func calculateID(auditHash []byte) interop.Hash256 {
	return crypto.Sha256(append([]byte(attestationIDSeed), auditHash...))
}

func attestationKey(id []byte) []byte {
	return append([]byte{attestationKeyPrefix}, id...)
}

func getAttestation(ctx storage.Context, id []byte) Attestation {
	a := common.GetSerialized(ctx, attestationKey(id))
	if a == nil {
		panic(attestconst.ErrNotFound)
	}
	return a.(Attestation)
}

// currentAuthority reads the authority set by Init. Mutations are always
// gated on this current value, not on the authority frozen inside a record at
// issuance time.
func currentAuthority(ctx storage.Context) interop.PublicKey {
	authority := storage.Get(ctx, authorityKey)
	if authority == nil {
		panic(attestconst.ErrNotInitialized)
	}
	return authority.(interop.PublicKey)
}
