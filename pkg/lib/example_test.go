package lib_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/agentbox/agentbox/pkg/lib"
)

// Create a sandbox for a project and print its id.
func ExampleClient_CreateSandbox() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{})
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	handle, err := client.CreateSandbox(ctx, lib.CreateSandboxOpts{
		Password:  "s3cret",
		ProjectID: "proj-9",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(handle.Sandbox.ID)
}

// Resolve a sandbox, starting it first if it is dormant, and handle a
// missing sandbox explicitly.
func ExampleClient_GetOrStartSandbox() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{})
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	handle, err := client.GetOrStartSandbox(ctx, "sbx-1")
	if errors.Is(err, lib.ErrNotFound) {
		fmt.Println("sandbox does not exist")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s is %s\n", handle.Sandbox.ID, handle.Sandbox.State)
}
