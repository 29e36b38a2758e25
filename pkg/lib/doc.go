// Package lib provides a Go SDK for managing agentbox sandboxes programmatically.
//
// This package allows applications to create and resolve browser sandboxes on
// the configured backend without shelling out to the agentbox CLI binary.
//
// # Quick Start
//
// Create a client, create a sandbox and resolve it later:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	handle, err := client.CreateSandbox(ctx, lib.CreateSandboxOpts{
//	    Password:  "s3cret",
//	    ProjectID: "proj-9",
//	})
//
//	// Later, from any process: fetch the sandbox, starting it first if it
//	// is stopped or archived.
//	handle, err = client.GetOrStartSandbox(ctx, handle.Sandbox.ID)
//
// # Backends
//
// The backend is selected through configuration (Config.Provider or the
// AGENTBOX_PROVIDER environment variable). Unknown or empty selections fall
// back to the default backend.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: Sandbox does not exist on the backend.
//   - [ErrTransient]: Infrastructure hiccup, safe to retry.
//   - [ErrNotValid]: Invalid input or backend rejection.
//   - [ErrNotImplemented]: Operation not supported by the selected backend.
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines. The backend
// is constructed once, on the first lifecycle call.
package lib
