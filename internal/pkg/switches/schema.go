package switches

import (
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed switches.schema.json
var schemaData []byte

var compiled *jsonschema.Schema

func init() {
	var err error
	compiled, err = jsonschema.CompileString("switches.schema.json", string(schemaData))
	if err != nil {
		panic(fmt.Errorf("compile switches schema: %w", err))
	}
}

// validateDocument checks an already-decoded specification document
// against the embedded schema.
func validateDocument(data any) error {
	if err := compiled.Validate(data); err != nil {
		return fmt.Errorf("validate specification document: %w", err)
	}
	return nil
}
