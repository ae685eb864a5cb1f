package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE hex hash of the attestation contract")
	attestationID := flag.String("id", "", "Base58-encoded attestation ID (dump a single record)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing attestation contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	r, err := newRemoteRegistry(*neoRPCEndpoint, h)
	if err != nil {
		log.Fatal(fmt.Errorf("init remote registry: %w", err))
	}

	defer r.close()

	if *attestationID != "" {
		id, err := base58.Decode(*attestationID)
		if err != nil {
			log.Fatal(fmt.Errorf("decode attestation ID: %w", err))
		}

		err = r.dumpOne(id)
	} else {
		err = r.dumpAll()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func formatTimestamp(ms int64) string {
	if ms == 0 {
		return "never"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
