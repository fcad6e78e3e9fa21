// witness.go builds the multi-signature verification script and the
// BFT address derived from it, and estimates witness size for the fee
// calculation external layers perform (spec §4.F, `_witnessSize`).
package block

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/ripemd160"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

// opcodes for the small script dialect used by the multi-sig redeem
// script: push-length, push-pubkey, CHECKMULTISIG. Values are arbitrary
// but stable — only this module's own MultiSigScript and Address need
// to agree on them.
const (
	opPushInt    = 0x50
	opPushPubKey = 0x0c
	opCheckMulti = 0xae
)

// MultiSigScript is the serialized verification script for an (M, N)
// committee: "M pubkey_0 pubkey_1 ... pubkey_{N-1} N CHECKMULTISIG".
func MultiSigScript(m int, validators []ledger.PublicKey) []byte {
	script := make([]byte, 0, 2+len(validators)*34)
	script = append(script, opPushInt, byte(m))
	for _, v := range validators {
		script = append(script, opPushPubKey, byte(len(v)))
		script = append(script, v[:]...)
	}
	script = append(script, opPushInt, byte(len(validators)), opCheckMulti)
	return script
}

// Address derives the NEO-style script-hash address for a verification
// script: RIPEMD160(SHA256(script)).
func Address(script []byte) common.Address {
	sha := sha256.Sum256(script)
	r := ripemd160.New()
	r.Write(sha[:])
	var addr common.Address
	copy(addr[:], r.Sum(nil))
	return addr
}

// WitnessSize is an upper-bound estimate of the serialized size of a
// Witness whose invocation script concatenates m 64-byte signature
// pushes and whose verification script is MultiSigScript(m, validators).
// It is recomputed whenever the validator-set size changes (spec
// §4.F); the core caches it rather than recomputing it per fee query.
func WitnessSize(m int, validators []ledger.PublicKey) int {
	invocation := m * (1 + 64) // push-opcode + 64-byte signature, per signer
	verification := len(MultiSigScript(m, validators))
	const lenPrefixes = 8 // two uint32 length prefixes for the witness pair
	return invocation + verification + lenPrefixes
}
