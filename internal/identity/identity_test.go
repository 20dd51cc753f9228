package identity

import (
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) *service {
	return &service{random: rand.Reader, now: func() time.Time { return now }}
}

func TestMintDID_Format(t *testing.T) {
	svc := NewService()

	did, err := svc.MintDID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(did.DID, "did:key:z6Mk"), did.DID)
	assert.Len(t, did.PublicKey, 32)
	assert.Len(t, did.PrivateKey, 64)
	assert.Equal(t, did.DID+"#"+strings.TrimPrefix(did.DID, "did:key:"), did.KeyID())

	other, err := svc.MintDID()
	require.NoError(t, err)
	assert.NotEqual(t, did.DID, other.DID)
}

func TestPublicKeyFromDID_RoundTrip(t *testing.T) {
	did, err := mintDID(rand.Reader)
	require.NoError(t, err)

	pub, err := PublicKeyFromDID(did.DID)
	require.NoError(t, err)
	assert.Equal(t, did.PublicKey, pub)

	pub, err = PublicKeyFromDID(did.KeyID())
	require.NoError(t, err)
	assert.Equal(t, did.PublicKey, pub)
}

func TestPublicKeyFromDID_Invalid(t *testing.T) {
	for _, did := range []string{
		"",
		"did:ion:abc",
		"did:key:",
		"did:key:z111",
		"did:key:fdeadbeef",
	} {
		_, err := PublicKeyFromDID(did)
		assert.ErrorIs(t, err, ErrInvalidDID, did)
	}
}

func TestBuildCredential_RequiresIssuerAndSubject(t *testing.T) {
	svc := NewService()

	_, err := svc.BuildCredential(CredentialSpec{Type: "Will", Issuer: "did:key:z"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestSignAndParse_SelfIssued(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	did, err := svc.MintDID()
	require.NoError(t, err)

	cred, err := svc.BuildCredential(CredentialSpec{
		Type:    "Will",
		Issuer:  did.DID,
		Subject: did.DID,
		Data: map[string]any{
			"title":         "Last will",
			"description":   "everything to the cat",
			"subjectTarget": "did:key:zBeneficiary",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"VerifiableCredential", "Will"}, cred.Types)
	assert.True(t, strings.HasPrefix(cred.ID, "urn:uuid:"))

	token, err := svc.SignCredential(cred, did)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	parsed, err := svc.ParseCredential(token)
	require.NoError(t, err)
	assert.Equal(t, "Will", parsed.Type)
	assert.Equal(t, did.DID, parsed.Issuer)
	assert.Equal(t, parsed.Issuer, parsed.Subject)
	assert.Equal(t, cred.ID, parsed.ID)
	assert.Equal(t, now, parsed.IssuanceDate)
	assert.Equal(t, "Last will", parsed.StringField("title"))
	assert.Equal(t, "everything to the cat", parsed.StringField("description"))
	assert.Equal(t, "did:key:zBeneficiary", parsed.StringField("subjectTarget"))
	assert.Empty(t, parsed.StringField("missing"))
	_, hasID := parsed.Fields["id"]
	assert.False(t, hasID)
}

func TestSignCredential_IssuerMismatch(t *testing.T) {
	svc := NewService()

	did, err := svc.MintDID()
	require.NoError(t, err)
	other, err := svc.MintDID()
	require.NoError(t, err)

	cred, err := svc.BuildCredential(CredentialSpec{Type: "Will", Issuer: other.DID, Subject: other.DID})
	require.NoError(t, err)

	_, err = svc.SignCredential(cred, did)
	assert.ErrorIs(t, err, ErrIssuerMismatch)
}

func TestSignCredential_FreshTokens(t *testing.T) {
	svc := NewService()

	var tokens []string
	for range 2 {
		did, err := svc.MintDID()
		require.NoError(t, err)
		cred, err := svc.BuildCredential(CredentialSpec{Type: "Will", Issuer: did.DID, Subject: did.DID})
		require.NoError(t, err)
		token, err := svc.SignCredential(cred, did)
		require.NoError(t, err)
		tokens = append(tokens, token)
	}

	assert.NotEqual(t, tokens[0], tokens[1])
}

func TestParseCredential_WrongSigner(t *testing.T) {
	svc := NewService()

	claimed, err := svc.MintDID()
	require.NoError(t, err)
	attacker, err := svc.MintDID()
	require.NoError(t, err)

	claims := vcClaims{
		VC: vcDataModel{
			Type:              []string{baseType, "Will"},
			Issuer:            claimed.DID,
			IssuanceDate:      time.Now().UTC().Format(time.RFC3339),
			CredentialSubject: map[string]any{"id": claimed.DID},
		},
		RegisteredClaims: jwt.RegisteredClaims{Issuer: claimed.DID, Subject: claimed.DID},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(attacker.PrivateKey)
	require.NoError(t, err)

	_, err = svc.ParseCredential(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseCredential_RejectsHMAC(t *testing.T) {
	svc := NewService()

	did, err := svc.MintDID()
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: did.DID}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ParseCredential(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseCredential_Garbage(t *testing.T) {
	_, err := NewService().ParseCredential("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDeclaredType(t *testing.T) {
	assert.Equal(t, "Will", declaredType([]string{"VerifiableCredential", "Will"}))
	assert.Equal(t, "Legal Document", declaredType([]string{"Legal Document", "VerifiableCredential"}))
	assert.Equal(t, "VerifiableCredential", declaredType([]string{"VerifiableCredential"}))
	assert.Equal(t, "VerifiableCredential", declaredType(nil))
}
