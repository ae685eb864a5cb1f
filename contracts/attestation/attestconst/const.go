package attestconst

// MaxWallets is the maximum number of wallets a single attestation can cover.
const MaxWallets = 10

// MaxTaxYear is the highest tax year an attestation can be issued for, years
// are 16-bit unsigned values.
const MaxTaxYear = 65535

// Attestation statuses. Pending is a valid source state in the transition
// table but no method currently produces it, createAttestation always starts
// records in Active. The state is kept for a future propose-then-activate
// flow.
const (
	StatusPending = 0
	StatusActive  = 1
	StatusExpired = 2
	StatusRevoked = 3
)

// Jurisdictions an attestation can be issued for.
const (
	JurisdictionUS = 0
	JurisdictionEU = 1
	JurisdictionBR = 2
	JurisdictionUK = 3
	JurisdictionJP = 4
	JurisdictionAU = 5
	JurisdictionCA = 6
	JurisdictionCH = 7
	JurisdictionSG = 8
)

// Kinds of compliance claims an attestation can carry.
const (
	TypeTaxCompliance     = 0
	TypeAuditComplete     = 1
	TypeReportingComplete = 2
	TypeQuarterlyReview   = 3
	TypeAnnualReview      = 4
)

const (
	// ErrNotInitialized is returned when the registry authority has not been set yet.
	ErrNotInitialized = "registry is not initialized"
	// ErrAlreadyInitialized is returned on repeated init calls.
	ErrAlreadyInitialized = "registry is already initialized"
	// ErrNotFound is returned if the requested attestation is missing.
	ErrNotFound = "attestation not found"
	// ErrAlreadyExists is returned when an attestation with the same audit
	// hash has been recorded before.
	ErrAlreadyExists = "attestation already exists"
	// ErrInvalidWalletCount is returned on out-of-range wallet sets.
	ErrInvalidWalletCount = "invalid wallet count: must be 1..10"
	// ErrInvalidStatusTransition is returned on status changes outside the
	// transition table.
	ErrInvalidStatusTransition = "invalid status transition"
	// ErrNotActive is returned by revokeAttestation for any non-Active record.
	ErrNotActive = "attestation is not active"
	// ErrInvalidJurisdiction is returned on unknown jurisdiction codes.
	ErrInvalidJurisdiction = "invalid jurisdiction"
	// ErrInvalidType is returned on unknown attestation type codes.
	ErrInvalidType = "invalid attestation type"
	// ErrInvalidTaxYear is returned on tax years outside the 16-bit range.
	ErrInvalidTaxYear = "invalid tax year: must be 0..65535"
	// ErrInvalidAuditHash is returned when the audit hash is not 32 bytes.
	ErrInvalidAuditHash = "invalid audit hash length"
	// ErrInvalidKey is returned on malformed public keys.
	ErrInvalidKey = "invalid public key length"
)
