// Package yamlschema provides a validator for YAML documents against schemas
// written in a YAML dialect modelled on JSON Schema (draft 2020-12 subset).
//
// The module is organized into three collaborating packages:
//
//   - schema: the schema data model and the loader that builds it from a
//     parsed YAML tree ([go.yaml.in/yaml/v4] Node).
//   - validate: the validation engine that walks a target YAML document
//     against a loaded schema and accumulates diagnostics.
//   - schemaerr: the structured error types returned by both packages.
//
// # Quick start
//
//	root, err := schema.Load(schemaBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	diags, err := validate.ValidateBytes(root, documentBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    fmt.Println(d.Error())
//	}
//
// This root package only exposes build metadata; the CLI front-end, logging
// sink configuration, and file I/O are collaborators outside the core.
package yamlschema
