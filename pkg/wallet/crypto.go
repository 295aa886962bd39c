/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"crypto/rand"
	"encoding/json"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/box"
)

const nonceSize = 24

var ErrDecrypt = errors.New("unable to decrypt message")

// authEnvelope is the plaintext inside an anonymous box that carries an authenticated box.
type authEnvelope struct {
	Sender     string `json:"sender"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

type keyPair struct {
	pub  *[32]byte
	priv *[32]byte
}

func newKeyPair() (*keyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate key pair")
	}

	return &keyPair{pub: pub, priv: priv}, nil
}

func (r *keyPair) verkey() string {
	return base58.Encode(r.pub[:])
}

func (r *keyPair) did() string {
	return base58.Encode(r.pub[:16])
}

func decodeVerkey(verkey string) (*[32]byte, error) {
	raw, err := base58.Decode(verkey)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid verkey %s", verkey)
	}

	if len(raw) != 32 {
		return nil, errors.Errorf("invalid verkey length %d", len(raw))
	}

	out := new([32]byte)
	copy(out[:], raw)
	return out, nil
}

func anonEncrypt(theirVerkey string, msg []byte) ([]byte, error) {
	pub, err := decodeVerkey(theirVerkey)
	if err != nil {
		return nil, err
	}

	out, err := box.SealAnonymous(nil, msg, pub, rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to anoncrypt message")
	}

	return out, nil
}

func anonDecrypt(kp *keyPair, msg []byte) ([]byte, error) {
	out, ok := box.OpenAnonymous(nil, msg, kp.pub, kp.priv)
	if !ok {
		return nil, ErrDecrypt
	}

	return out, nil
}

func authEncrypt(sender *keyPair, theirVerkey string, msg []byte) ([]byte, error) {
	pub, err := decodeVerkey(theirVerkey)
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	_, err = io.ReadFull(rand.Reader, nonce[:])
	if err != nil {
		return nil, errors.Wrap(err, "unable to create nonce")
	}

	env := &authEnvelope{
		Sender:     sender.verkey(),
		Nonce:      nonce[:],
		Ciphertext: box.Seal(nil, msg, &nonce, pub, sender.priv),
	}

	d, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal envelope")
	}

	return anonEncrypt(theirVerkey, d)
}

func authDecrypt(recipient *keyPair, theirVerkey string, msg []byte) ([]byte, error) {
	d, err := anonDecrypt(recipient, msg)
	if err != nil {
		return nil, err
	}

	env := &authEnvelope{}
	err = json.Unmarshal(d, env)
	if err != nil {
		return nil, errors.Wrap(ErrDecrypt, "invalid envelope")
	}

	if env.Sender != theirVerkey {
		return nil, errors.Wrapf(ErrDecrypt, "message was not sent by %s", theirVerkey)
	}

	if len(env.Nonce) != nonceSize {
		return nil, errors.Wrap(ErrDecrypt, "invalid nonce")
	}

	senderPub, err := decodeVerkey(env.Sender)
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], env.Nonce)

	out, ok := box.Open(nil, env.Ciphertext, &nonce, senderPub, recipient.priv)
	if !ok {
		return nil, ErrDecrypt
	}

	return out, nil
}
