package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testAddress = "RCMRCAFDZDCGYQKEHSP7VGW6DBB5FAICOFLEHPIVQNI3HVZWNE3CCWW4TY"

func TestJWTIssueAndVerify(t *testing.T) {
	issuer := NewJWTIssuer("secret")
	verifier := NewJWTVerifier("secret")

	token, err := issuer.Issue(testAddress, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	address, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, testAddress, address)
}

func TestJWTVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTIssuer("secret")
	verifier := NewJWTVerifier("other-secret")

	token, err := issuer.Issue(testAddress, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTVerify_Expired(t *testing.T) {
	issuer := NewJWTIssuer("secret")
	verifier := NewJWTVerifier("secret")

	token, err := issuer.Issue(testAddress, -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTVerify_Garbage(t *testing.T) {
	verifier := NewJWTVerifier("secret")
	_, err := verifier.Verify("not-a-token")
	require.Error(t, err)
}
