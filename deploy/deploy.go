// Package deploy provides deployment procedure of the Compliance Attestation
// Registry contract to the Neo blockchain.
package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"

	"github.com/complychain/attestation-contract/contracts/attestation/attestconst"
	"github.com/complychain/attestation-contract/rpc/attestation"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the attestation contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the attestation contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Compiled contract to be deployed.
	NEF      nef.File
	Manifest manifest.Manifest

	// Compliance authority to initialize the deployed registry with. If
	// unset, the registry is left uninitialized.
	Authority *keys.PublicKey
}

// Deploy deploys the attestation contract represented by given Prm.NEF and
// Prm.Manifest to the Neo blockchain and, if Prm.Authority is set,
// initializes the registry with it. Deploy is idempotent: a contract already
// present on the chain is not redeployed, an already initialized registry is
// not reinitialized.
//
// Returns on-chain address of the deployed contract.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	contractAddress := state.CreateContractHash(localActor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	l := prm.Logger.With(zap.Stringer("contract", contractAddress))

	alreadyDeployed, err := isContractDeployed(prm.Blockchain, contractAddress)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check contract presence on the chain: %w", err)
	}

	if alreadyDeployed {
		l.Info("contract is already deployed, skip")
	} else {
		l.Info("contract is missing on the chain, deploying...")

		if err := ctx.Err(); err != nil {
			return util.Uint160{}, fmt.Errorf("wait for contract deployment: %w", err)
		}

		txHash, vub, err := management.New(localActor).Deploy(&prm.NEF, &prm.Manifest, nil)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("send transaction deploying the contract: %w", err)
		}

		l.Info("transaction deploying the contract has been successfully sent, waiting...",
			zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

		aer, err := localActor.Wait(txHash, vub, nil)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("wait for contract deployment: %w", err)
		} else if aer.VMState != vmstate.Halt {
			return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %s", txHash, aer.FaultException)
		}

		l.Info("contract has been successfully deployed")
	}

	if prm.Authority == nil {
		return contractAddress, nil
	}

	registry := attestation.New(localActor, contractAddress)

	initialized, err := isRegistryInitialized(&registry.ContractReader)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check registry initialization: %w", err)
	}

	if initialized {
		l.Info("registry is already initialized, skip")
		return contractAddress, nil
	}

	l.Info("initializing the registry...", zap.String("authority", prm.Authority.StringCompressed()))

	txHash, vub, err := registry.Init(prm.Authority)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send transaction initializing the registry: %w", err)
	}

	aer, err := localActor.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for registry initialization: %w", err)
	} else if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("initialization transaction %s failed: %s", txHash, aer.FaultException)
	}

	l.Info("registry has been successfully initialized")

	return contractAddress, nil
}

// isRegistryInitialized checks whether the registry authority has already
// been set. Only the dedicated not-initialized fault counts as a negative
// answer, any other failure (e.g. a transient RPC error) is returned to the
// caller so that it does not trigger a spurious init transaction.
func isRegistryInitialized(r *attestation.ContractReader) (bool, error) {
	_, err := r.Authority()
	if err == nil {
		return true, nil
	}

	if strings.Contains(err.Error(), attestconst.ErrNotInitialized) {
		return false, nil
	}

	return false, err
}

// isContractDeployed checks if the contract with the given address is
// deployed on the chain.
func isContractDeployed(b Blockchain, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err == nil {
		return true, nil
	}

	if strings.Contains(err.Error(), "Unknown contract") {
		return false, nil
	}

	return false, err
}
