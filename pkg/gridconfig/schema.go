package gridconfig

import _ "embed"

// definitionSchema is the JSON Schema LoadJSON validates documents against.
//
//go:embed schema/definition.schema.json
var definitionSchema []byte
