package indy

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/schema"
)

const (
	rugDID  = "RugDID1111111111111111"
	gentDID = "GentDID222222222222222"
)

func transcriptRequest() *schema.ProofRequest {
	trusted := []schema.Filter{
		{IssuerDID: rugDID, SchemaName: "Transcript", SchemaVersion: "1.0"},
		{IssuerDID: gentDID, SchemaName: "Transcript", SchemaVersion: "1.0"},
	}

	return &schema.ProofRequest{
		Name:    "Transcript",
		Version: "1.0",
		Nonce:   "1234567890123456789012345678",
		RequestedAttributes: map[string]*schema.AttributeInfo{
			"degree":     {Name: "degree", Restrictions: trusted},
			"firstName":  {Name: "first_name", Restrictions: trusted},
			"motivation": {Name: "motivation"},
		},
	}
}

func revealed(idx int32, raw string) *schema.RevealedAttributeInfo {
	return &schema.RevealedAttributeInfo{SubProofIndex: idx, Raw: raw, Encoded: EncodeValue(raw)}
}

func cryptoProofJSON(t *testing.T, revealedAttrs map[string]string) json.RawMessage {
	enc := map[string]string{}
	for k, v := range revealedAttrs {
		enc[k] = EncodeValue(v)
	}

	cp := &schema.CryptoProof{Proofs: []*schema.SubProof{
		{Primary: &schema.PrimaryProof{EqProof: schema.PrimaryEqualProof{RevealedAttrs: enc}}},
	}}

	d, err := json.Marshal(cp)
	require.NoError(t, err)
	return d
}

func transcriptProof(t *testing.T, issuer string) *schema.IndyProof {
	return &schema.IndyProof{
		Proof: cryptoProofJSON(t, map[string]string{"degree": "Bachelor of Arts, Marketing", "first_name": "Alice"}),
		RequestedProof: &schema.IndyRequestedProof{
			RevealedAttrs: map[string]*schema.RevealedAttributeInfo{
				"degree":    revealed(0, "Bachelor of Arts, Marketing"),
				"firstName": revealed(0, "Alice"),
			},
			SelfAttestedAttrs: map[string]string{"motivation": "I like it"},
		},
		Identifiers: []*schema.Identifier{
			{SchemaID: issuer + ":2:Transcript:1.0", CredDefID: issuer + ":3:CL:12:default"},
		},
	}
}

func TestEngine_Verify(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		crypto := &MockCryptoVerifier{}
		engine := New(crypto)

		req := transcriptRequest()
		proof := transcriptProof(t, gentDID)

		crypto.On("VerifyCrypto", proof, mock.MatchedBy(func(sp []*SubProof) bool {
			return len(sp) == 1 && len(sp[0].RevealedAttrs) == 2 && sp[0].RevealedAttrs[0] == "degree"
		}), req.Nonce).Return(nil)

		attrs, err := engine.Verify(req, proof)
		require.NoError(t, err)
		require.Equal(t, []*schema.Attr{
			{Name: "degree", Value: "Bachelor of Arts, Marketing"},
			{Name: "firstName", Value: "Alice"},
			{Name: "motivation", Value: "I like it"},
		}, attrs)

		crypto.AssertExpectations(t)
	})

	t.Run("credential from untrusted issuer", func(t *testing.T) {
		crypto := &MockCryptoVerifier{}
		engine := New(crypto)

		attrs, err := engine.Verify(transcriptRequest(), transcriptProof(t, "SomeoneElse11111111111"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "does not satisfy any restriction")
		require.Nil(t, attrs)

		crypto.AssertNotCalled(t, "VerifyCrypto", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("restricted attribute self attested", func(t *testing.T) {
		engine := New(&MockCryptoVerifier{})

		proof := transcriptProof(t, rugDID)
		delete(proof.RequestedProof.RevealedAttrs, "degree")
		proof.RequestedProof.SelfAttestedAttrs["degree"] = "PhD"

		_, err := engine.Verify(transcriptRequest(), proof)
		require.Error(t, err)
		require.Contains(t, err.Error(), "self attested")
	})

	t.Run("missing attribute", func(t *testing.T) {
		engine := New(&MockCryptoVerifier{})

		proof := transcriptProof(t, rugDID)
		delete(proof.RequestedProof.SelfAttestedAttrs, "motivation")

		_, err := engine.Verify(transcriptRequest(), proof)
		require.Error(t, err)
		require.Contains(t, err.Error(), "do not correspond")
	})

	t.Run("tampered raw value", func(t *testing.T) {
		engine := New(&MockCryptoVerifier{})

		proof := transcriptProof(t, rugDID)
		proof.RequestedProof.RevealedAttrs["degree"].Raw = "PhD"

		_, err := engine.Verify(transcriptRequest(), proof)
		require.Error(t, err)
		require.Contains(t, err.Error(), "does not match its raw value")
	})

	t.Run("encoded value differs from crypto proof", func(t *testing.T) {
		engine := New(&MockCryptoVerifier{})

		proof := transcriptProof(t, rugDID)
		proof.Proof = cryptoProofJSON(t, map[string]string{"degree": "PhD", "first_name": "Alice"})

		_, err := engine.Verify(transcriptRequest(), proof)
		require.Error(t, err)
		require.Contains(t, err.Error(), "are different")
	})

	t.Run("sub proof index out of range", func(t *testing.T) {
		engine := New(&MockCryptoVerifier{})

		proof := transcriptProof(t, rugDID)
		proof.RequestedProof.RevealedAttrs["degree"].SubProofIndex = 3

		_, err := engine.Verify(transcriptRequest(), proof)
		require.Error(t, err)
		require.Contains(t, err.Error(), "out of range")
	})

	t.Run("unrevealed attribute has no value", func(t *testing.T) {
		crypto := &MockCryptoVerifier{}
		engine := New(crypto)

		proof := transcriptProof(t, rugDID)
		delete(proof.RequestedProof.RevealedAttrs, "firstName")
		proof.RequestedProof.UnrevealedAttrs = map[string]*schema.SubProofReferent{"firstName": {SubProofIndex: 0}}
		crypto.On("VerifyCrypto", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := engine.Verify(transcriptRequest(), proof)
		require.Error(t, err)
		require.Contains(t, err.Error(), "was not revealed")
	})

	t.Run("crypto failure", func(t *testing.T) {
		crypto := &MockCryptoVerifier{}
		engine := New(crypto)

		crypto.On("VerifyCrypto", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bad signature"))

		_, err := engine.Verify(transcriptRequest(), transcriptProof(t, rugDID))
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad signature")
	})

	t.Run("malformed proof", func(t *testing.T) {
		engine := New(&MockCryptoVerifier{})

		_, err := engine.Verify(transcriptRequest(), &schema.IndyProof{})
		require.Error(t, err)
	})
}
