package docker_test

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider/docker"
	"github.com/agentbox/agentbox/internal/provider/docker/dockermock"
)

func inspectResponse(status string, labels map[string]string) container.InspectResponse {
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			State: &container.State{Status: status},
		},
		Config: &container.Config{Labels: labels},
	}
}

func newTestProvider(t *testing.T, mc *dockermock.MockDockerClient) *docker.Provider {
	t.Helper()

	p, err := docker.NewProvider(docker.ProviderConfig{
		Client:       mc,
		SandboxImage: "agentbox/browser-sandbox:latest",
	})
	require.NoError(t, err)

	return p
}

func TestProviderGetOrStartSandbox(t *testing.T) {
	tests := map[string]struct {
		sandboxID  string
		mockClient func(m *dockermock.MockDockerClient)
		expState   model.SandboxState
		expErr     error
	}{
		"a running container is returned without a start": {
			sandboxID: "01jc3qkwvyasdfgzxcvbnmlkjh",
			mockClient: func(m *dockermock.MockDockerClient) {
				m.On("ContainerInspect", mock.Anything, "agentbox-01jc3qkwvyasdfgzxcvbnmlkjh").Once().
					Return(inspectResponse("running", nil), nil)
			},
			expState: model.SandboxStateRunning,
		},

		"an exited container is started, re-inspected and bootstrapped": {
			sandboxID: "01jc3qkwvyasdfgzxcvbnmlkjh",
			mockClient: func(m *dockermock.MockDockerClient) {
				m.On("ContainerInspect", mock.Anything, "agentbox-01jc3qkwvyasdfgzxcvbnmlkjh").Once().
					Return(inspectResponse("exited", nil), nil)
				m.On("ContainerStart", mock.Anything, "agentbox-01jc3qkwvyasdfgzxcvbnmlkjh", mock.Anything).Once().Return(nil)
				m.On("ContainerInspect", mock.Anything, "agentbox-01jc3qkwvyasdfgzxcvbnmlkjh").Once().
					Return(inspectResponse("running", nil), nil)
				m.On("ContainerExecCreate", mock.Anything, "agentbox-01jc3qkwvyasdfgzxcvbnmlkjh", mock.MatchedBy(func(opts container.ExecOptions) bool {
					return slices.Contains(opts.Cmd, "exec /usr/bin/supervisord -n -c /etc/supervisor/conf.d/supervisord.conf")
				})).Once().Return(container.ExecCreateResponse{ID: "exec-1"}, nil)
				m.On("ContainerExecStart", mock.Anything, "exec-1", mock.Anything).Once().Return(nil)
			},
			expState: model.SandboxStateRunning,
		},

		"a missing container surfaces not found": {
			sandboxID: "missing",
			mockClient: func(m *dockermock.MockDockerClient) {
				m.On("ContainerInspect", mock.Anything, "agentbox-missing").Once().
					Return(container.InspectResponse{}, fmt.Errorf("Error: No such container: agentbox-missing"))
			},
			expErr: model.ErrNotFound,
		},

		"a daemon failure surfaces as transient": {
			sandboxID: "01jc3qkwvyasdfgzxcvbnmlkjh",
			mockClient: func(m *dockermock.MockDockerClient) {
				m.On("ContainerInspect", mock.Anything, mock.Anything).Once().
					Return(container.InspectResponse{}, fmt.Errorf("cannot connect to the Docker daemon"))
			},
			expErr: model.ErrTransient,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			mc := &dockermock.MockDockerClient{}
			test.mockClient(mc)
			p := newTestProvider(t, mc)

			handle, err := p.GetOrStartSandbox(context.TODO(), test.sandboxID)
			if test.expErr != nil {
				require.ErrorIs(err, test.expErr)
			} else {
				require.NoError(err)
				assert.Equal(t, test.expState, handle.Sandbox.State)
				assert.Equal(t, test.sandboxID, handle.Sandbox.ID)
				assert.True(t, handle.Usable)
			}

			mc.AssertExpectations(t)
		})
	}
}

func TestProviderCreateSandbox(t *testing.T) {
	mc := &dockermock.MockDockerClient{}

	mc.On("ImagePull", mock.Anything, "agentbox/browser-sandbox:latest", mock.Anything).Once().
		Return(io.NopCloser(strings.NewReader("")), nil)
	mc.On("ContainerCreate", mock.Anything,
		mock.MatchedBy(func(cfg *container.Config) bool {
			return cfg.Image == "agentbox/browser-sandbox:latest" &&
				slices.Contains(cfg.Env, "VNC_PASSWORD=pw123") &&
				cfg.Labels["id"] == "proj-9"
		}),
		mock.MatchedBy(func(cfg *container.HostConfig) bool {
			return cfg.Resources.NanoCPUs == 2e9 && cfg.Resources.Memory == 4*1024*1024*1024
		}),
		mock.Anything, mock.Anything,
		mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, "agentbox-") }),
	).Once().Return(container.CreateResponse{ID: "ctr-1"}, nil)
	mc.On("ContainerStart", mock.Anything, "ctr-1", mock.Anything).Once().Return(nil)
	mc.On("ContainerExecCreate", mock.Anything, mock.Anything, mock.Anything).Once().
		Return(container.ExecCreateResponse{ID: "exec-1"}, nil)
	mc.On("ContainerExecStart", mock.Anything, "exec-1", mock.Anything).Once().Return(nil)

	p := newTestProvider(t, mc)

	handle, err := p.CreateSandbox(context.TODO(), model.CreateConfig{Password: "pw123", ProjectID: "proj-9"})
	require.NoError(t, err)

	assert.True(t, handle.Usable)
	assert.Equal(t, model.SandboxStateRunning, handle.Sandbox.State)
	assert.Equal(t, map[string]string{"id": "proj-9"}, handle.Sandbox.Labels)
	assert.NotEmpty(t, handle.Sandbox.ID)

	mc.AssertExpectations(t)
}

func TestProviderCreateSandboxInvalidConfig(t *testing.T) {
	p := newTestProvider(t, &dockermock.MockDockerClient{})

	_, err := p.CreateSandbox(context.TODO(), model.CreateConfig{})
	require.ErrorIs(t, err, model.ErrNotValid)
}
