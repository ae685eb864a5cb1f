package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrAuthorityWitnessFailed appears when a mutating method must be
	// witnessed by the registry authority but was not.
	ErrAuthorityWitnessFailed = "authority witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain public key but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckAuthorityWitness checks witness of the registry authority.
// It panics with ErrAuthorityWitnessFailed message on fail.
func CheckAuthorityWitness(authority []byte) {
	checkWitnessWithPanic(authority, ErrAuthorityWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
