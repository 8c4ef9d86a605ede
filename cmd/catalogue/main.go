package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
)

// Entry is one mechanic in the exported catalogue.
type Entry struct {
	Name        string             `json:"name"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
	Template    string             `json:"template"`
	Default     string             `json:"default"`
	Params      *jsonschema.Schema `json:"params"`
}

func main() {
	var outPath, query string
	flag.StringVar(&outPath, "out", "", "path to write the catalogue (default stdout)")
	flag.StringVar(&query, "q", "", "only export mechanics matching this search")
	flag.Parse()

	if err := mechanic.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "catalogue is inconsistent:\n%v\n", err)
		os.Exit(1)
	}

	entries := buildCatalogue(query)

	if outPath == "" {
		if err := writeCatalogue(os.Stdout, entries); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write catalogue: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := writeFile(outPath, entries); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write catalogue: %v\n", err)
		os.Exit(1)
	}
}

func buildCatalogue(query string) []Entry {
	found := mechanic.Search(query)
	entries := make([]Entry, len(found))
	for i, m := range found {
		entries[i] = Entry{
			Name:        mechanic.Name(m),
			Label:       mechanic.Label(m),
			Description: mechanic.Description(m),
			Template:    mechanic.Template(m),
			Default:     mechanic.Render(m),
			Params:      paramsSchema(m),
		}
	}
	return entries
}

func writeCatalogue(w io.Writer, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalogue: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeFile(outPath string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create catalogue directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp catalogue: %w", err)
	}
	if err := writeCatalogue(f, entries); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp catalogue: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace catalogue: %w", err)
	}
	return nil
}
