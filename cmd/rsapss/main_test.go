package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/rsapss"
	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// testEnv returns a Config with captured streams and a fixed environment.
func testEnv(stdin string, env map[string]string) (Config, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return Config{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return env[k] },
	}, &stdout, &stderr
}

// emptyEnvFile returns an empty env file so tests do not pick up a .env
// from the working directory.
func emptyEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func generateKeyFile(t *testing.T, args ...string) (string, *rsapss.ExportedKey) {
	t.Helper()
	r := require.New(t)

	cfg, stdout, _ := testEnv("", nil)
	base := []string{"rsapss", "keygen", "--bits", "1024", "--env-file", emptyEnvFile(t)}
	r.NoError(run(append(base, args...), cfg))

	var exported rsapss.ExportedKey
	r.NoError(json.Unmarshal(stdout.Bytes(), &exported))

	path := filepath.Join(t.TempDir(), "key.json")
	r.NoError(os.WriteFile(path, stdout.Bytes(), 0o600))
	return path, &exported
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, os.Stdin, cfg.Stdin)
	assert.Equal(t, os.Stdout, cfg.Stdout)
	assert.Equal(t, os.Stderr, cfg.Stderr)
	assert.NotNil(t, cfg.Getenv)
}

func TestKeygen(t *testing.T) {
	_, exported := generateKeyFile(t)

	assert.Equal(t, rsapss.ExportVersion, exported.Version)
	assert.Equal(t, 1024, exported.Bits)
	assert.Equal(t, "SHA-256", exported.Hash)
	assert.True(t, exported.IsPrivate())
	assert.NoError(t, exported.Validate())
}

func TestKeygen_Flags(t *testing.T) {
	_, exported := generateKeyFile(t, "--hash", "sha3-384", "--exponent", "random")

	assert.Equal(t, "SHA3-384", exported.Hash)
	pub, _, err := rsapss.ImportPublicKey(exported)
	require.NoError(t, err)
	assert.NotEqual(t, int64(rsapss.FixedPublicExponent), pub.E.Int64())
}

func TestKeygen_Environment(t *testing.T) {
	r := require.New(t)
	cfg, stdout, _ := testEnv("", map[string]string{
		envBits: "768",
		envHash: "blake2b-256",
	})
	r.NoError(run([]string{"rsapss", "keygen", "--env-file", emptyEnvFile(t)}, cfg))

	var exported rsapss.ExportedKey
	r.NoError(json.Unmarshal(stdout.Bytes(), &exported))
	r.Equal(768, exported.Bits)
	r.Equal("BLAKE2b-256", exported.Hash)
}

func TestKeygen_EnvFile(t *testing.T) {
	r := require.New(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	r.NoError(os.WriteFile(envFile, []byte("RSAPSS_BITS=640\nRSAPSS_HASH=SHA-224\n"), 0o600))

	// The process environment wins over the file, flags win over both.
	cfg, stdout, _ := testEnv("", map[string]string{envHash: "sha384"})
	r.NoError(run([]string{"rsapss", "keygen", "--env-file", envFile, "--bits", "800"}, cfg))

	var exported rsapss.ExportedKey
	r.NoError(json.Unmarshal(stdout.Bytes(), &exported))
	r.Equal(800, exported.Bits)
	r.Equal("SHA-384", exported.Hash)

	cfg, stdout, _ = testEnv("", nil)
	r.NoError(run([]string{"rsapss", "keygen", "--env-file", envFile}, cfg))
	r.NoError(json.Unmarshal(stdout.Bytes(), &exported))
	r.Equal(640, exported.Bits)
	r.Equal("SHA-224", exported.Hash)
}

func TestKeygen_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr string
	}{
		{"too small for hash", []string{"--bits", "512", "--hash", "sha512"}, nil, "encoding too short"},
		{"unknown hash", []string{"--hash", "md5"}, nil, "unknown hash"},
		{"odd bits", []string{"--bits", "1025"}, nil, "invalid key size"},
		{"bad exponent flag", []string{"--exponent", "huge"}, nil, "must be one of"},
		{"bad bits env", nil, map[string]string{envBits: "many"}, envBits},
		{"bad exponent env", nil, map[string]string{envExponent: "huge"}, "unknown exponent mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, _ := testEnv("", tt.env)
			args := append([]string{"rsapss", "keygen", "--env-file", emptyEnvFile(t)}, tt.args...)
			err := run(args, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvFile_ExplicitMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	cfg, stdout, _ := testEnv("", nil)
	err := run([]string{"rsapss", "version", "--env-file", missing}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
	assert.Empty(t, stdout.String())
}

func TestEnvFile_EmptyExplicit(t *testing.T) {
	cfg, stdout, _ := testEnv("", nil)
	require.NoError(t, run([]string{"rsapss", "version", "--env-file", emptyEnvFile(t)}, cfg))
	assert.Equal(t, "rsapss dev\n", stdout.String())
}

func TestLoadEnvironment(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	getenv := func(string) string { return "" }

	env, err := loadEnvironment(getenv, missing, false)
	require.NoError(t, err)
	assert.Empty(t, env.lookup(envBits))

	_, err = loadEnvironment(getenv, missing, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSignVerify(t *testing.T) {
	r := require.New(t)
	keyPath, _ := generateKeyFile(t)

	cfg, stdout, _ := testEnv("hello from stdin", nil)
	r.NoError(run([]string{"rsapss", "sign", "--key", keyPath}, cfg))

	var signed SignOutput
	r.NoError(json.Unmarshal(stdout.Bytes(), &signed))
	r.Equal("SHA-256", signed.Hash)
	r.NotEmpty(signed.Signature)

	cfg, stdout, _ = testEnv("hello from stdin", nil)
	r.NoError(run([]string{"rsapss", "verify", "--key", keyPath, "--signature", signed.Signature}, cfg))

	var verdict VerifyOutput
	r.NoError(json.Unmarshal(stdout.Bytes(), &verdict))
	r.True(verdict.Valid)
	r.Empty(verdict.Reason)
}

func TestSignVerify_MessageFile(t *testing.T) {
	r := require.New(t)
	keyPath, _ := generateKeyFile(t)
	msgPath := filepath.Join(t.TempDir(), "msg.txt")
	r.NoError(os.WriteFile(msgPath, []byte("file message"), 0o600))

	cfg, stdout, _ := testEnv("", nil)
	r.NoError(run([]string{"rsapss", "sign", "--key", keyPath, "--message-file", msgPath}, cfg))
	var signed SignOutput
	r.NoError(json.Unmarshal(stdout.Bytes(), &signed))

	cfg, stdout, _ = testEnv("file message", nil)
	r.NoError(run([]string{"rsapss", "verify", "--key", keyPath, "--signature", signed.Signature}, cfg))
}

func TestVerify_Invalid(t *testing.T) {
	r := require.New(t)
	keyPath, _ := generateKeyFile(t)

	cfg, stdout, _ := testEnv("original", nil)
	r.NoError(run([]string{"rsapss", "sign", "--key", keyPath}, cfg))
	var signed SignOutput
	r.NoError(json.Unmarshal(stdout.Bytes(), &signed))

	cfg, stdout, _ = testEnv("altered", nil)
	err := run([]string{"rsapss", "verify", "--key", keyPath, "--signature", signed.Signature}, cfg)
	r.ErrorIs(err, errInvalidSignature)

	var verdict VerifyOutput
	r.NoError(json.Unmarshal(stdout.Bytes(), &verdict))
	r.False(verdict.Valid)
	r.Equal(rsapss.StageHash, verdict.Reason)
}

func TestVerify_PublicKeyDocument(t *testing.T) {
	r := require.New(t)
	_, exported := generateKeyFile(t)
	priv, hash, err := rsapss.ImportPrivateKey(exported)
	r.NoError(err)

	pubPath := filepath.Join(t.TempDir(), "pub.json")
	data, err := json.Marshal(priv.Public().Export(hash))
	r.NoError(err)
	r.NoError(os.WriteFile(pubPath, data, 0o600))

	sig, err := rsapss.Sign(priv, []byte("m"), rsapss.WithHash(hash))
	r.NoError(err)

	cfg, _, _ := testEnv("m", nil)
	r.NoError(run([]string{"rsapss", "verify", "--key", pubPath, "--signature", crypto.ToBase64URL(sig)}, cfg))

	// A public document cannot sign.
	cfg, _, _ = testEnv("m", nil)
	r.ErrorIs(run([]string{"rsapss", "sign", "--key", pubPath}, cfg), rsapss.ErrInvalidImportData)
}

func TestVerify_BadInput(t *testing.T) {
	keyPath, _ := generateKeyFile(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing signature flag", []string{"--key", keyPath}, "signature"},
		{"bad base64", []string{"--key", keyPath, "--signature", "***"}, "decode signature"},
		{"missing key file", []string{"--key", "/nonexistent/key.json", "--signature", "AA"}, "read key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, _ := testEnv("m", nil)
			err := run(append([]string{"rsapss", "verify"}, tt.args...), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInspect(t *testing.T) {
	r := require.New(t)
	keyPath, _ := generateKeyFile(t, "--hash", "sha384")

	cfg, stdout, _ := testEnv("", nil)
	r.NoError(run([]string{"rsapss", "inspect", "--key", keyPath}, cfg))

	var out InspectOutput
	r.NoError(json.Unmarshal(stdout.Bytes(), &out))
	r.Equal(InspectOutput{
		Bits:           1024,
		Hash:           "SHA-384",
		HashSize:       48,
		EncodedLen:     128,
		SignatureSize:  128,
		PublicExponent: "65537",
		Private:        true,
	}, out)
	r.NotContains(stdout.String(), `"d"`)
}

func TestVersion(t *testing.T) {
	cfg, stdout, _ := testEnv("", nil)
	require.NoError(t, run([]string{"rsapss", "version"}, cfg))
	assert.Equal(t, "rsapss dev\n", stdout.String())
}

func TestLogging(t *testing.T) {
	r := require.New(t)
	cfg, _, stderr := testEnv("", nil)
	r.NoError(run([]string{"rsapss", "keygen", "--bits", "768", "--env-file", emptyEnvFile(t),
		"--loglevel", "debug", "--logformat", "json"}, cfg))

	logs := stderr.String()
	r.Contains(logs, `"msg":"generating key"`)
	r.Contains(logs, `"msg":"rsa key generated"`)
}

func TestUnknownCommand(t *testing.T) {
	cfg, _, _ := testEnv("", nil)
	require.Error(t, run([]string{"rsapss", "frobnicate"}, cfg))
}
