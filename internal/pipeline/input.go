package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Midhun81790/project-1B/internal/types"
)

// inputCandidates are the configuration filenames probed inside the input
// directory, in order.
var inputCandidates = []string{
	"persona.json",
	"input.json",
	"challenge1b_input.json",
	"input_academic.json",
	"input_business.json",
	"input_food.json",
}

// LoadCollectionInput finds and parses the collection input configuration in
// dir. When the configuration lists no documents, *.pdf and *.pdf.txt files
// in dir are auto-detected. A missing persona or job block is a fatal
// *types.InputError.
func LoadCollectionInput(dir string) (*types.CollectionInput, error) {
	var path string
	for _, candidate := range inputCandidates {
		p := filepath.Join(dir, candidate)
		if _, err := os.Stat(p); err == nil {
			path = p
			break
		}
	}
	if path == "" {
		return nil, &types.InputError{Message: fmt.Sprintf("no input configuration found in %s (tried %v)", dir, inputCandidates)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input configuration %s: %w", path, err)
	}

	var input types.CollectionInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, &types.InputError{Message: fmt.Sprintf("malformed input configuration: %v", err)}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if len(input.Documents) == 0 {
		detected, err := detectDocuments(dir)
		if err != nil {
			return nil, err
		}
		input.Documents = detected
	}

	return &input, nil
}

// detectDocuments globs the input directory for documents when the
// configuration does not list any.
func detectDocuments(dir string) ([]types.DocumentRef, error) {
	var refs []types.DocumentRef
	for _, pattern := range []string{"*.pdf", "*.pdf.txt"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s for documents: %w", dir, err)
		}
		for _, match := range matches {
			refs = append(refs, types.DocumentRef{Filename: filepath.Base(match)})
		}
	}
	return refs, nil
}
