package attestation

import (
	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
)

const (
	// MaxWallets is the maximum number of wallets a single attestation can cover.
	MaxWallets = attestconst.MaxWallets

	// NotFoundError is returned if the requested attestation is missing.
	NotFoundError = attestconst.ErrNotFound

	// AlreadyExistsError is returned on duplicate issuance for the same audit hash.
	AlreadyExistsError = attestconst.ErrAlreadyExists

	// InvalidWalletCountError is returned on out-of-range wallet sets.
	InvalidWalletCountError = attestconst.ErrInvalidWalletCount

	// InvalidTaxYearError is returned on tax years outside the 16-bit range.
	InvalidTaxYearError = attestconst.ErrInvalidTaxYear

	// InvalidStatusTransitionError is returned on status changes outside the
	// transition table.
	InvalidStatusTransitionError = attestconst.ErrInvalidStatusTransition

	// NotActiveError is returned by revokeAttestation for non-Active records.
	NotActiveError = attestconst.ErrNotActive
)
