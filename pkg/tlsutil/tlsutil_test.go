package tlsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loancalc/pkg/tlsutil"
)

func TestWriteDevCertificates_LoadsAsCredentials(t *testing.T) {
	certs, err := tlsutil.WriteDevCertificates([]string{"localhost", "127.0.0.1"}, t.TempDir())
	require.NoError(t, err)

	for _, f := range []string{certs.CAFile, certs.CertFile, certs.KeyFile} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	server, err := tlsutil.ServerCredentials(certs.CertFile, certs.KeyFile)
	require.NoError(t, err)
	assert.Equal(t, "tls", server.Info().SecurityProtocol)

	client, err := tlsutil.ClientCredentials(certs.CAFile, "localhost")
	require.NoError(t, err)
	assert.Equal(t, "localhost", client.Info().ServerName)
}

func TestServerCredentials_MissingFiles(t *testing.T) {
	_, err := tlsutil.ServerCredentials("/nonexistent/cert.pem", "/nonexistent/key.pem")
	assert.ErrorContains(t, err, "load server key pair")
}

func TestClientCredentials_RejectsNonPEM(t *testing.T) {
	ca := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(ca, []byte("not a certificate"), 0o600))

	_, err := tlsutil.ClientCredentials(ca, "")
	assert.ErrorContains(t, err, "no certificates")
}
