package printer

import "github.com/agentbox/agentbox/internal/model"

// Printer knows how to print sandbox information in different formats.
type Printer interface {
	PrintList(records []model.SandboxRecord) error
	PrintHandle(handle model.SandboxHandle) error
	PrintMessage(msg string) error
}
