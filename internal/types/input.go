package types

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// PersonaInput accepts either a structured {"role": ..., "focus": ...} object
// or a bare string (treated as the role).
type PersonaInput struct {
	Role  string `json:"role"`
	Focus string `json:"focus,omitempty"`
}

// UnmarshalJSON handles both the object and bare-string persona shapes.
func (p *PersonaInput) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		p.Role = bare
		p.Focus = ""
		return nil
	}

	type alias PersonaInput
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = PersonaInput(obj)
	return nil
}

// JobInput accepts either a structured {"task": ...} object or a bare string.
type JobInput struct {
	Task string `json:"task"`
}

// UnmarshalJSON handles both the object and bare-string job shapes.
func (j *JobInput) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		j.Task = bare
		return nil
	}

	type alias JobInput
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*j = JobInput(obj)
	return nil
}

// DocumentRef names one document in the collection. The input JSON may list
// documents as bare filenames or as {"filename": ..., "title": ...} objects.
type DocumentRef struct {
	Filename string `json:"filename" validate:"required"`
	Title    string `json:"title,omitempty"`
}

// UnmarshalJSON handles both the object and bare-string document shapes.
func (d *DocumentRef) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		d.Filename = bare
		d.Title = ""
		return nil
	}

	type alias DocumentRef
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = DocumentRef(obj)
	return nil
}

// CollectionInput is the request configuration for one pipeline run.
type CollectionInput struct {
	Persona     *PersonaInput `json:"persona" validate:"required"`
	JobToBeDone *JobInput     `json:"job_to_be_done" validate:"required"`
	Documents   []DocumentRef `json:"documents,omitempty" validate:"dive"`
}

// Validate checks the input for the fatal error cases: a missing persona or
// job block, or a listed document without a filename.
func (c *CollectionInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &InputError{Field: verrs[0].Field(), Message: "required field is missing or empty"}
		}
		return &InputError{Message: err.Error()}
	}
	return nil
}
