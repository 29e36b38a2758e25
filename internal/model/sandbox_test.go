package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentbox/agentbox/internal/model"
)

func TestSandboxStateDormant(t *testing.T) {
	tests := map[string]struct {
		state      model.SandboxState
		expDormant bool
	}{
		"stopped sandboxes are dormant": {
			state:      model.SandboxStateStopped,
			expDormant: true,
		},
		"archived sandboxes are dormant": {
			state:      model.SandboxStateArchived,
			expDormant: true,
		},
		"running sandboxes are not dormant": {
			state:      model.SandboxStateRunning,
			expDormant: false,
		},
		"transitional states are treated as already usable": {
			state:      model.SandboxStateStarting,
			expDormant: false,
		},
		"error states are treated as already usable": {
			state:      model.SandboxStateError,
			expDormant: false,
		},
		"unknown provider specific states pass through as usable": {
			state:      model.SandboxState("hibernating"),
			expDormant: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expDormant, test.state.Dormant())
		})
	}
}

func TestCreateConfigValidate(t *testing.T) {
	tests := map[string]struct {
		config model.CreateConfig
		expErr bool
	}{
		"a config with a password is valid": {
			config: model.CreateConfig{Password: "pw123"},
		},
		"a missing password is invalid": {
			config: model.CreateConfig{ProjectID: "proj-9"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.config.Validate()
			if test.expErr {
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateConfigLabels(t *testing.T) {
	tests := map[string]struct {
		config    model.CreateConfig
		expLabels map[string]string
	}{
		"a project id is attached as a grouping label": {
			config:    model.CreateConfig{Password: "pw123", ProjectID: "proj-9"},
			expLabels: map[string]string{"id": "proj-9"},
		},
		"no project id means no labels at all": {
			config:    model.CreateConfig{Password: "pw123"},
			expLabels: nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expLabels, test.config.Labels())
		})
	}
}
