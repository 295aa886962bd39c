package ursa

import (
	"testing"

	"github.com/hyperledger/indy-vdr/wrappers/golang/vdr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/presentproof/engine/indy"
	"github.com/scoir/studybits/pkg/schema"
)

func TestDecodeSchemaAttributes(t *testing.T) {
	t.Run("ledger reply", func(t *testing.T) {
		rply := &vdr.ReadReply{
			Data: map[string]interface{}{
				"name":       "Diploma",
				"version":    "1.0",
				"attr_names": []interface{}{"firstname", "degree"},
			},
		}

		attrs, err := decodeSchemaAttributes(rply)
		require.NoError(t, err)
		require.Equal(t, []string{"firstname", "degree"}, attrs)
	})

	t.Run("not on ledger", func(t *testing.T) {
		_, err := decodeSchemaAttributes(&vdr.ReadReply{})
		require.Error(t, err)
		_, err = decodeSchemaAttributes(nil)
		require.Error(t, err)
	})

	t.Run("no attributes", func(t *testing.T) {
		rply := &vdr.ReadReply{Data: map[string]interface{}{"name": "Diploma", "version": "1.0"}}
		_, err := decodeSchemaAttributes(rply)
		require.Error(t, err)
	})
}

func TestVerifier_VerifyCrypto(t *testing.T) {
	t.Run("schema lookup failure", func(t *testing.T) {
		client := &MockVDRClient{}
		client.On("GetSchema", "did:2:Diploma:1.0").Return(nil, errors.New("ledger down"))

		target := NewVerifier(client)
		err := target.VerifyCrypto(&schema.IndyProof{}, []*indy.SubProof{
			{
				Identifier:    &schema.Identifier{SchemaID: "did:2:Diploma:1.0", CredDefID: "did:3:CL:1:default"},
				RevealedAttrs: []string{"First Name"},
			},
		}, "12345678901234567890123456789")
		require.Error(t, err)
		require.Contains(t, err.Error(), "ledger down")
		client.AssertNotCalled(t, "GetCredDef", "did:3:CL:1:default")
	})

	t.Run("missing identifier", func(t *testing.T) {
		target := NewVerifier(&MockVDRClient{})
		err := target.VerifyCrypto(&schema.IndyProof{}, []*indy.SubProof{{}}, "1")
		require.Error(t, err)
	})
}
