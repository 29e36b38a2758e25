package lib_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbox/agentbox/pkg/lib"
)

func newTestClient(t *testing.T) *lib.Client {
	t.Helper()

	// The e2b backend is a placeholder without a remote control plane, which
	// makes it usable for SDK tests without real infrastructure.
	client, err := lib.New(context.TODO(), lib.Config{
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
		Provider: "e2b",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestClientGetOrStartSandbox(t *testing.T) {
	require := require.New(t)
	client := newTestClient(t)

	handle, err := client.GetOrStartSandbox(context.TODO(), "sbx-1")
	require.NoError(err)
	assert.Equal(t, "sbx-1", handle.Sandbox.ID)
	assert.Equal(t, "e2b", handle.Provider)
	assert.False(t, handle.Usable)
}

func TestClientGetOrStartSandboxMissingID(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetOrStartSandbox(context.TODO(), "")
	require.ErrorIs(t, err, lib.ErrNotValid)
}

func TestClientCreateSandboxNotImplemented(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateSandbox(context.TODO(), lib.CreateSandboxOpts{Password: "s3cret"})
	require.ErrorIs(t, err, lib.ErrNotImplemented)
}

func TestClientProviderEscapeHatch(t *testing.T) {
	require := require.New(t)
	client := newTestClient(t)

	p := client.Provider()
	assert.Equal(t, "e2b", p.Name())

	handle, err := p.GetOrStartSandbox(context.TODO(), "sbx-1")
	require.NoError(err)
	assert.False(t, handle.Usable)

	// The placeholder bootstrap is a no-op.
	require.NoError(p.StartSupervisordSession(context.TODO(), handle))
}

func TestClientListSandboxesEmpty(t *testing.T) {
	require := require.New(t)
	client := newTestClient(t)

	recs, err := client.ListSandboxes(context.TODO())
	require.NoError(err)
	assert.Empty(t, recs)
}
