// Package keystore holds secp256k1 authority keys and signs election
// payloads with them. Messages are keccak-256 prehashed before signing,
// and signatures carry a recovery id so verification works from the
// public key alone.
package keystore

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/blob-chain/substrate/internal/logging"
	"github.com/blob-chain/substrate/types"
)

var (
	// ErrNoLocalKey indicates the keystore holds no private key for the
	// requested public key.
	ErrNoLocalKey = errors.New("no local private key for public key")

	// ErrInvalidKey indicates a key could not be parsed or imported.
	ErrInvalidKey = errors.New("invalid key material")
)

// PublicKey is a compressed secp256k1 public key.
type PublicKey [33]byte

// String returns the key as a 0x-prefixed hex string.
func (p PublicKey) String() string {
	return hexutil.Encode(p[:])
}

// Signature is a 65-byte [R || S || V] signature over the keccak-256
// digest of a message.
type Signature [65]byte

// Keystore is an in-memory store of authority key pairs. It is not safe
// for concurrent use.
type Keystore struct {
	keys   map[PublicKey]*ecdsa.PrivateKey
	order  []PublicKey
	logger types.Logger
}

// New creates an empty keystore.
func New(opts ...Option) *Keystore {
	options := newOptions(opts)

	return &Keystore{
		keys:   make(map[PublicKey]*ecdsa.PrivateKey),
		logger: options.logger,
	}
}

// Generate creates a fresh key pair, stores it, and returns the public
// key.
func (k *Keystore) Generate() (PublicKey, error) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		return PublicKey{}, fmt.Errorf("generate key: %w", err)
	}

	return k.Import(priv), nil
}

// Import stores an existing private key and returns its public key.
// Re-importing a known key is a no-op.
func (k *Keystore) Import(priv *ecdsa.PrivateKey) PublicKey {
	public := PublicKey(crypto.CompressPubkey(&priv.PublicKey))
	if _, ok := k.keys[public]; !ok {
		k.keys[public] = priv
		k.order = append(k.order, public)
	}

	return public
}

// ImportHex stores a private key given as a hex string.
func (k *Keystore) ImportHex(hexKey string) (PublicKey, error) {
	priv, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", ErrInvalidKey, err)
	}

	return k.Import(priv), nil
}

// Sign signs message with the private key matching public. The message
// is keccak-256 prehashed; the digest is what gets signed.
func (k *Keystore) Sign(public PublicKey, message []byte) (Signature, error) {
	priv, ok := k.keys[public]
	if !ok {
		return Signature{}, ErrNoLocalKey
	}

	digest := crypto.Keccak256(message)
	raw, err := crypto.Sign(digest, priv)
	if err != nil {
		return Signature{}, fmt.Errorf("sign: %w", err)
	}

	return Signature(raw), nil
}

// Verify reports whether sig is an authentic signature of message by
// public. It needs no private key.
func Verify(public PublicKey, sig Signature, message []byte) bool {
	digest := crypto.Keccak256(message)

	// The recovery byte is not part of the verified payload.
	return crypto.VerifySignature(public[:], digest, sig[:64])
}

// LocalAuthorityID returns the first key in keys for which the store
// holds a private key. Holding more than one of the offered keys is a
// configuration smell and gets logged.
func (k *Keystore) LocalAuthorityID(keys []PublicKey) (PublicKey, bool) {
	local := make([]PublicKey, 0, 1)
	for _, key := range keys {
		if _, ok := k.keys[key]; ok {
			local = append(local, key)
		}
	}

	if len(local) > 1 {
		k.logger.Warn("multiple local private keys found for authority set",
			"count", len(local))
	}

	if len(local) == 0 {
		return PublicKey{}, false
	}

	return local[0], true
}

// PublicKeys returns all stored public keys in insertion order.
func (k *Keystore) PublicKeys() []PublicKey {
	out := make([]PublicKey, len(k.order))
	copy(out, k.order)

	return out
}

// Option configures a Keystore.
type Option func(*options)

type options struct {
	logger types.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
