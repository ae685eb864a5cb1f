package attestation

import (
	"math/big"

	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
)

// Possible attestation statuses in [AttestationAttestation].
var (
	// StatusPending is defined in the transition table but not currently
	// produced by any contract method.
	StatusPending = big.NewInt(int64(attestconst.StatusPending))

	// StatusActive is used by freshly created attestations.
	StatusActive = big.NewInt(int64(attestconst.StatusActive))

	// StatusExpired is used by attestations explicitly marked as expired.
	StatusExpired = big.NewInt(int64(attestconst.StatusExpired))

	// StatusRevoked is used by attestations withdrawn by the authority.
	StatusRevoked = big.NewInt(int64(attestconst.StatusRevoked))
)

// Jurisdictions an attestation can be issued for.
var (
	JurisdictionUS = big.NewInt(int64(attestconst.JurisdictionUS))
	JurisdictionEU = big.NewInt(int64(attestconst.JurisdictionEU))
	JurisdictionBR = big.NewInt(int64(attestconst.JurisdictionBR))
	JurisdictionUK = big.NewInt(int64(attestconst.JurisdictionUK))
	JurisdictionJP = big.NewInt(int64(attestconst.JurisdictionJP))
	JurisdictionAU = big.NewInt(int64(attestconst.JurisdictionAU))
	JurisdictionCA = big.NewInt(int64(attestconst.JurisdictionCA))
	JurisdictionCH = big.NewInt(int64(attestconst.JurisdictionCH))
	JurisdictionSG = big.NewInt(int64(attestconst.JurisdictionSG))
)

// Kinds of compliance claims an attestation can carry.
var (
	TypeTaxCompliance     = big.NewInt(int64(attestconst.TypeTaxCompliance))
	TypeAuditComplete     = big.NewInt(int64(attestconst.TypeAuditComplete))
	TypeReportingComplete = big.NewInt(int64(attestconst.TypeReportingComplete))
	TypeQuarterlyReview   = big.NewInt(int64(attestconst.TypeQuarterlyReview))
	TypeAnnualReview      = big.NewInt(int64(attestconst.TypeAnnualReview))
)
