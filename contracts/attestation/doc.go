/*
Package attestation implements the Compliance Attestation Registry contract.

The registry keeps a tamper-evident record of authority-issued compliance
attestations: claims that a set of wallets satisfied a jurisdiction-specific
regulatory requirement (tax compliance, audit completion, etc.) for a given
tax year, each backed by an off-ledger audit artifact referenced by its
SHA-256 fingerprint. Records are created once, transition through a small
status machine and are never deleted.

A single authority key, fixed by the one-shot init method, gates every
mutating method. The gate always checks the current stored authority, so if
an authority rotation method is ever added it will retroactively govern
previously issued records as well.

Record IDs are content-addressed: SHA-256 over a fixed namespace tag and the
audit hash. This makes duplicate issuance for the same audit artifact
impossible and lets anyone re-derive a record's location off-chain.

# Contract notifications

ProgramInitialized notification. This notification is produced when the
registry authority is set by the init method.

	ProgramInitialized
	  - name: authority
	    type: PublicKey

AttestationCreated notification. This notification is produced when a new
attestation is recorded via CreateAttestation.

	AttestationCreated
	  - name: id
	    type: Hash256
	  - name: wallets
	    type: Array
	  - name: jurisdiction
	    type: Integer
	  - name: attestationType
	    type: Integer
	  - name: taxYear
	    type: Integer
	  - name: auditHash
	    type: ByteArray
	  - name: issuedAt
	    type: Integer
	  - name: expiresAt
	    type: Integer

StatusUpdated notification. This notification is produced when an attestation
changes status via UpdateStatus.

	StatusUpdated
	  - name: id
	    type: ByteArray
	  - name: oldStatus
	    type: Integer
	  - name: newStatus
	    type: Integer

AttestationRevoked notification. This notification is produced when an
attestation is revoked via RevokeAttestation.

	AttestationRevoked
	  - name: id
	    type: ByteArray
	  - name: wallets
	    type: Array
	  - name: revokedAt
	    type: Integer
*/
package attestation

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'authority' -> interop.PublicKey
   compressed 33-byte public key of the registry authority
 - 'count' -> int
   number of attestations ever created, never decremented
 - 'a<id>' -> std.Serialize(Attestation)
   attestation record where <id> is SHA-256 over the fixed "attestation"
   namespace tag concatenated with the 32-byte audit hash

All timestamps (issuedAt, expiresAt, revokedAt) are Unix milliseconds as
returned by the ledger clock; revokedAt of 0 means the record was never
revoked.

# Registry
Contract stores one record per issued attestation plus the singleton
authority/counter state. No secondary indexes are maintained, records are
located by re-deriving their content address from the audit hash.
*/
