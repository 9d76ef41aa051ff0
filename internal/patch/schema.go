package patch

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/versionfile.schema.json
var schemaSource []byte

const schemaURL = "versionfile.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("adding patch schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling patch schema: %w", err)
	}
	return schema, nil
})

// validate checks a decoded JSON document against the patch schema.
func validate(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			return formatValidationError(verr)
		}
		return fmt.Errorf("validating patch: %w", err)
	}
	return nil
}

func formatValidationError(err *jsonschema.ValidationError) error {
	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)
	if len(messages) == 0 {
		return fmt.Errorf("invalid patch: %s", err.Message)
	}
	return fmt.Errorf("invalid patch: %s", strings.Join(messages, "; "))
}
