// Package backup exports and imports the full data set as one JSON file.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/printers"
)

// Backup writes an export to Path, or restores from it when Restore is
// true. Inspect summarizes a file without touching the store.
type Backup struct {
	Path    string
	Restore bool
	Inspect bool

	Service *app.Service
}

func (n *Backup) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not backup, no service")
	}
	if n.Path == "" {
		return errors.New("a backup file path is required")
	}

	pp := printers.PrettyPrint{}

	switch {
	case n.Inspect:
		payload, err := readPayload(n.Path)
		if err != nil {
			return err
		}
		fmt.Println("")
		pp.Title(n.Path)
		pp.BackupSummary(app.Summarize(payload))

	case n.Restore:
		payload, err := readPayload(n.Path)
		if err != nil {
			return err
		}
		if err := n.Service.Import(payload); err != nil {
			return err
		}
		fmt.Println("")
		pp.Title("restored")
		pp.BackupSummary(app.Summarize(payload))

	default:
		payload := n.Service.Export()
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(n.Path, data, 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", n.Path)
		pp.BackupSummary(app.Summarize(payload))
	}

	return nil
}

func readPayload(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%s is not a focus backup: %w", path, err)
	}
	return payload, nil
}
