package resolve_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agentbox/agentbox/internal/app/resolve"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider/providermock"
	"github.com/agentbox/agentbox/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	runningHandle := &model.SandboxHandle{
		Provider: "daytona",
		Sandbox:  model.Sandbox{ID: "sbx-1", State: model.SandboxStateRunning},
		Usable:   true,
	}

	tests := map[string]struct {
		sandboxID string
		mock      func(mp *providermock.MockProvider, mr *storagemock.MockRepository)
		expHandle *model.SandboxHandle
		expErr    error
	}{
		"Resolving a sandbox should return its handle and touch the local record.": {
			sandboxID: "sbx-1",
			mock: func(mp *providermock.MockProvider, mr *storagemock.MockRepository) {
				mp.On("GetOrStartSandbox", mock.Anything, "sbx-1").Once().Return(runningHandle, nil)
				mr.On("TouchSandboxRecord", mock.Anything, "sbx-1", mock.Anything).Once().Return(nil)
			},
			expHandle: runningHandle,
		},

		"A sandbox without a local record should still resolve.": {
			sandboxID: "sbx-1",
			mock: func(mp *providermock.MockProvider, mr *storagemock.MockRepository) {
				mp.On("GetOrStartSandbox", mock.Anything, "sbx-1").Once().Return(runningHandle, nil)
				mr.On("TouchSandboxRecord", mock.Anything, "sbx-1", mock.Anything).Once().Return(fmt.Errorf("missing: %w", model.ErrNotFound))
			},
			expHandle: runningHandle,
		},

		"An empty sandbox id should fail before reaching the backend.": {
			sandboxID: "",
			mock:      func(mp *providermock.MockProvider, mr *storagemock.MockRepository) {},
			expErr:    model.ErrNotValid,
		},

		"An unknown sandbox should fail with not found.": {
			sandboxID: "missing",
			mock: func(mp *providermock.MockProvider, mr *storagemock.MockRepository) {
				mp.On("GetOrStartSandbox", mock.Anything, "missing").Once().Return(nil, fmt.Errorf("missing: %w", model.ErrNotFound))
			},
			expErr: model.ErrNotFound,
		},

		"A backend outage should fail with a transient error.": {
			sandboxID: "sbx-1",
			mock: func(mp *providermock.MockProvider, mr *storagemock.MockRepository) {
				mp.On("GetOrStartSandbox", mock.Anything, "sbx-1").Once().Return(nil, fmt.Errorf("boom: %w", model.ErrTransient))
			},
			expErr: model.ErrTransient,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mp := &providermock.MockProvider{}
			mr := &storagemock.MockRepository{}
			test.mock(mp, mr)

			svc, err := resolve.NewService(resolve.ServiceConfig{
				Provider:   mp,
				Repository: mr,
			})
			require.NoError(err)

			handle, err := svc.Run(context.TODO(), test.sandboxID)

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
			} else {
				assert.NoError(err)
				assert.Equal(test.expHandle, handle)
			}

			mp.AssertExpectations(t)
			mr.AssertExpectations(t)
		})
	}
}
