package security_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/pkg/security"
)

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	secret := []byte("whsec_test")
	payload := []byte(`{"type":"member.added"}`)

	sig := security.SignPayload(secret, payload)
	require.True(t, security.VerifySignature(secret, payload, sig))

	require.False(t, security.VerifySignature(secret, []byte(`{"type":"member.removed"}`), sig))
	require.False(t, security.VerifySignature([]byte("other"), payload, sig))
	require.False(t, security.VerifySignature(secret, payload, "not-hex"))
}
