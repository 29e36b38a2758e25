package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/agentbox/agentbox/internal/model"
)

// JSONPrinter prints sandbox information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

type listItem struct {
	ID             string     `json:"id"`
	Provider       string     `json:"provider"`
	ProjectID      string     `json:"project_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastResolvedAt *time.Time `json:"last_resolved_at,omitempty"`
}

type handleOutput struct {
	ID       string            `json:"id"`
	Provider string            `json:"provider"`
	State    string            `json:"state"`
	Usable   bool              `json:"usable"`
	Labels   map[string]string `json:"labels,omitempty"`
}

type messageOutput struct {
	Message string `json:"message"`
}

// PrintList prints sandbox records in JSON format.
func (j *JSONPrinter) PrintList(records []model.SandboxRecord) error {
	items := make([]listItem, len(records))
	for i, r := range records {
		items[i] = listItem{
			ID:        r.ID,
			Provider:  r.Provider,
			ProjectID: r.ProjectID,
			CreatedAt: r.CreatedAt.UTC(),
		}
		if r.LastResolvedAt != nil {
			utcTime := r.LastResolvedAt.UTC()
			items[i].LastResolvedAt = &utcTime
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintHandle prints a resolved sandbox handle in JSON format.
func (j *JSONPrinter) PrintHandle(handle model.SandboxHandle) error {
	output := handleOutput{
		ID:       handle.Sandbox.ID,
		Provider: handle.Provider,
		State:    string(handle.Sandbox.State),
		Usable:   handle.Usable,
		Labels:   handle.Sandbox.Labels,
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(messageOutput{Message: msg})
}
