// Package attestation contains RPC wrappers for Compliance Attestation Registry contract.
package attestation

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// AttestationAttestation is a contract-specific attestation.Attestation type used by its methods.
type AttestationAttestation struct {
	Authority *keys.PublicKey
	Jurisdiction *big.Int
	AttestationType *big.Int
	Status *big.Int
	TaxYear *big.Int
	AuditHash []byte
	IssuedAt *big.Int
	ExpiresAt *big.Int
	RevokedAt *big.Int
	Wallets keys.PublicKeys
}

// ProgramInitializedEvent represents "ProgramInitialized" event emitted by the contract.
type ProgramInitializedEvent struct {
	Authority *keys.PublicKey
}

// AttestationCreatedEvent represents "AttestationCreated" event emitted by the contract.
type AttestationCreatedEvent struct {
	ID util.Uint256
	Wallets keys.PublicKeys
	Jurisdiction *big.Int
	AttestationType *big.Int
	TaxYear *big.Int
	AuditHash []byte
	IssuedAt *big.Int
	ExpiresAt *big.Int
}

// StatusUpdatedEvent represents "StatusUpdated" event emitted by the contract.
type StatusUpdatedEvent struct {
	ID []byte
	OldStatus *big.Int
	NewStatus *big.Int
}

// AttestationRevokedEvent represents "AttestationRevoked" event emitted by the contract.
type AttestationRevokedEvent struct {
	ID []byte
	Wallets keys.PublicKeys
	RevokedAt *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AttestationCount invokes `attestationCount` method of contract.
func (c *ContractReader) AttestationCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "attestationCount"))
}

// Authority invokes `authority` method of contract.
func (c *ContractReader) Authority() (*keys.PublicKey, error) {
	return unwrap.PublicKey(c.invoker.Call(c.hash, "authority"))
}

// CalculateID invokes `calculateID` method of contract.
func (c *ContractReader) CalculateID(auditHash []byte) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "calculateID", auditHash))
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(id []byte) (*AttestationAttestation, error) {
	return itemToAttestationAttestation(unwrap.Item(c.invoker.Call(c.hash, "get", id)))
}

// Iterate invokes `iterate` method of contract.
func (c *ContractReader) Iterate() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterate"))
}

// IterateExpanded is similar to Iterate (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterate", _numOfIteratorItems))
}

// List invokes `list` method of contract.
func (c *ContractReader) List() ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "list"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateAttestation creates a transaction invoking `createAttestation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateAttestation(jurisdiction *big.Int, attestationType *big.Int, taxYear *big.Int, auditHash []byte, expiresAt *big.Int, wallets keys.PublicKeys) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createAttestation", jurisdiction, attestationType, taxYear, auditHash, expiresAt, wallets)
}

// CreateAttestationTransaction creates a transaction invoking `createAttestation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateAttestationTransaction(jurisdiction *big.Int, attestationType *big.Int, taxYear *big.Int, auditHash []byte, expiresAt *big.Int, wallets keys.PublicKeys) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createAttestation", jurisdiction, attestationType, taxYear, auditHash, expiresAt, wallets)
}

// CreateAttestationUnsigned creates a transaction invoking `createAttestation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateAttestationUnsigned(jurisdiction *big.Int, attestationType *big.Int, taxYear *big.Int, auditHash []byte, expiresAt *big.Int, wallets keys.PublicKeys) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createAttestation", nil, jurisdiction, attestationType, taxYear, auditHash, expiresAt, wallets)
}

// Init creates a transaction invoking `init` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Init(authority *keys.PublicKey) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "init", authority)
}

// InitTransaction creates a transaction invoking `init` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitTransaction(authority *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "init", authority)
}

// InitUnsigned creates a transaction invoking `init` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitUnsigned(authority *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "init", nil, authority)
}

// RevokeAttestation creates a transaction invoking `revokeAttestation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeAttestation(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeAttestation", id)
}

// RevokeAttestationTransaction creates a transaction invoking `revokeAttestation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeAttestationTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeAttestation", id)
}

// RevokeAttestationUnsigned creates a transaction invoking `revokeAttestation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeAttestationUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeAttestation", nil, id)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateStatus creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateStatus(id []byte, newStatus *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateStatus", id, newStatus)
}

// UpdateStatusTransaction creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateStatusTransaction(id []byte, newStatus *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateStatus", id, newStatus)
}

// UpdateStatusUnsigned creates a transaction invoking `updateStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateStatusUnsigned(id []byte, newStatus *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateStatus", nil, id, newStatus)
}

// itemToAttestationAttestation converts stack item into *AttestationAttestation.
func itemToAttestationAttestation(item stackitem.Item, err error) (*AttestationAttestation, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AttestationAttestation)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AttestationAttestation from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AttestationAttestation) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Authority, err = func (item stackitem.Item) (*keys.PublicKey, error) {
		b, err := item.TryBytes()
		if err != nil {
			return nil, err
		}
		k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
		if err != nil {
			return nil, err
		}
		return k, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.Jurisdiction, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Jurisdiction: %w", err)
	}

	index++
	res.AttestationType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AttestationType: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.TaxYear, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaxYear: %w", err)
	}

	index++
	res.AuditHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuditHash: %w", err)
	}

	index++
	res.IssuedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IssuedAt: %w", err)
	}

	index++
	res.ExpiresAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpiresAt: %w", err)
	}

	index++
	res.RevokedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevokedAt: %w", err)
	}

	index++
	res.Wallets, err = func (item stackitem.Item) (keys.PublicKeys, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make(keys.PublicKeys, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (*keys.PublicKey, error) {
				b, err := item.TryBytes()
				if err != nil {
					return nil, err
				}
				k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
				if err != nil {
					return nil, err
				}
				return k, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Wallets: %w", err)
	}

	return nil
}

// ProgramInitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProgramInitialized" name from the provided [result.ApplicationLog].
func ProgramInitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProgramInitializedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProgramInitializedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProgramInitialized" {
				continue
			}
			event := new(ProgramInitializedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProgramInitializedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProgramInitializedEvent or
// returns an error if it's not possible to do to so.
func (e *ProgramInitializedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Authority, err = func (item stackitem.Item) (*keys.PublicKey, error) {
		b, err := item.TryBytes()
		if err != nil {
			return nil, err
		}
		k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
		if err != nil {
			return nil, err
		}
		return k, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	return nil
}

// AttestationCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AttestationCreated" name from the provided [result.ApplicationLog].
func AttestationCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AttestationCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AttestationCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AttestationCreated" {
				continue
			}
			event := new(AttestationCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AttestationCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AttestationCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *AttestationCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Wallets, err = func (item stackitem.Item) (keys.PublicKeys, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make(keys.PublicKeys, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (*keys.PublicKey, error) {
				b, err := item.TryBytes()
				if err != nil {
					return nil, err
				}
				k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
				if err != nil {
					return nil, err
				}
				return k, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Wallets: %w", err)
	}

	index++
	e.Jurisdiction, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Jurisdiction: %w", err)
	}

	index++
	e.AttestationType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AttestationType: %w", err)
	}

	index++
	e.TaxYear, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaxYear: %w", err)
	}

	index++
	e.AuditHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuditHash: %w", err)
	}

	index++
	e.IssuedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field IssuedAt: %w", err)
	}

	index++
	e.ExpiresAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpiresAt: %w", err)
	}

	return nil
}

// StatusUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "StatusUpdated" name from the provided [result.ApplicationLog].
func StatusUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StatusUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StatusUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StatusUpdated" {
				continue
			}
			event := new(StatusUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StatusUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StatusUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *StatusUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.OldStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// AttestationRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "AttestationRevoked" name from the provided [result.ApplicationLog].
func AttestationRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AttestationRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AttestationRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AttestationRevoked" {
				continue
			}
			event := new(AttestationRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AttestationRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AttestationRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *AttestationRevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Wallets, err = func (item stackitem.Item) (keys.PublicKeys, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make(keys.PublicKeys, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (*keys.PublicKey, error) {
				b, err := item.TryBytes()
				if err != nil {
					return nil, err
				}
				k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
				if err != nil {
					return nil, err
				}
				return k, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Wallets: %w", err)
	}

	index++
	e.RevokedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevokedAt: %w", err)
	}

	return nil
}
