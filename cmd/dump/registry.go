package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"

	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
	"github.com/complychain/attestation-contract/rpc/attestation"
)

var statusNames = map[int64]string{
	attestconst.StatusPending: "Pending",
	attestconst.StatusActive:  "Active",
	attestconst.StatusExpired: "Expired",
	attestconst.StatusRevoked: "Revoked",
}

var jurisdictionNames = map[int64]string{
	attestconst.JurisdictionUS: "US",
	attestconst.JurisdictionEU: "EU",
	attestconst.JurisdictionBR: "BR",
	attestconst.JurisdictionUK: "UK",
	attestconst.JurisdictionJP: "JP",
	attestconst.JurisdictionAU: "AU",
	attestconst.JurisdictionCA: "CA",
	attestconst.JurisdictionCH: "CH",
	attestconst.JurisdictionSG: "SG",
}

var typeNames = map[int64]string{
	attestconst.TypeTaxCompliance:     "TaxCompliance",
	attestconst.TypeAuditComplete:     "AuditComplete",
	attestconst.TypeReportingComplete: "ReportingComplete",
	attestconst.TypeQuarterlyReview:   "QuarterlyReview",
	attestconst.TypeAnnualReview:      "AnnualReview",
}

// remoteRegistry is a read-only view of a deployed attestation contract.
type remoteRegistry struct {
	rpc    *rpcclient.Client
	reader *attestation.ContractReader
}

// newRemoteRegistry dials the Neo RPC server and binds a contract reader to
// the given contract hash. Connection and all requests are done within 15s
// timeout.
func newRemoteRegistry(blockChainRPCEndpoint string, contract util.Uint160) (*remoteRegistry, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	return &remoteRegistry{
		rpc:    c,
		reader: attestation.NewReader(invoker.New(c, nil), contract),
	}, nil
}

func (x *remoteRegistry) close() {
	x.rpc.Close()
}

// dumpAll prints every attestation recorded in the registry.
func (x *remoteRegistry) dumpAll() error {
	ids, err := x.reader.List()
	if err != nil {
		return fmt.Errorf("list attestations: %w", err)
	}

	cnt, err := x.reader.AttestationCount()
	if err != nil {
		return fmt.Errorf("get attestation count: %w", err)
	}

	fmt.Printf("attestations ever created: %s, currently listed: %d\n", cnt, len(ids))

	for i := range ids {
		if err := x.dumpOne(ids[i]); err != nil {
			return err
		}
	}

	return nil
}

// dumpOne prints a single attestation referenced by its ID.
func (x *remoteRegistry) dumpOne(id []byte) error {
	a, err := x.reader.Get(id)
	if err != nil {
		return fmt.Errorf("get attestation '%s': %w", base58.Encode(id), err)
	}

	fmt.Printf("%s: %s %s/%d %s\n", base58.Encode(id),
		typeNames[a.AttestationType.Int64()],
		jurisdictionNames[a.Jurisdiction.Int64()],
		a.TaxYear.Int64(),
		statusNames[a.Status.Int64()])
	fmt.Printf("  audit hash: %x\n", a.AuditHash)
	fmt.Printf("  issued: %s, expires: %s, revoked: %s\n",
		formatTimestamp(a.IssuedAt.Int64()),
		formatTimestamp(a.ExpiresAt.Int64()),
		formatTimestamp(a.RevokedAt.Int64()))

	for i := range a.Wallets {
		fmt.Printf("  wallet: %x\n", a.Wallets[i].Bytes())
	}

	return nil
}
