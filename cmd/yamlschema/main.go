// Command yamlschema validates a YAML document against a schema document
// written in the same YAML dialect.
package main

import (
	"flag"
	"fmt"
	"os"

	yamlschema "github.com/yamlschema/yamlschema"
	"github.com/yamlschema/yamlschema/schema"
	"github.com/yamlschema/yamlschema/validate"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version", "-v", "--version":
		fmt.Printf("yamlschema v%s\n", yamlschema.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		os.Exit(runValidate(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  yamlschema validate [flags] <schema.yaml> <document.yaml>
  yamlschema version

Flags:
  -fail-fast   stop at the first diagnostic instead of reporting every violation
`)
}

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	failFast := fs.Bool("fail-fast", false, "stop at the first diagnostic")
	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		printUsage()
		return 2
	}

	schemaPath, docPath := fs.Arg(0), fs.Arg(1)

	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yamlschema: reading schema: %v\n", err)
		return 2
	}
	root, err := schema.Load(schemaBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yamlschema: loading schema: %v\n", err)
		return 2
	}

	docBytes, err := os.ReadFile(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yamlschema: reading document: %v\n", err)
		return 2
	}

	var opts []validate.ValidateOption
	if *failFast {
		opts = append(opts, validate.WithFailFast())
	}

	diagnostics, err := validate.ValidateBytes(root, docBytes, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yamlschema: %v\n", err)
		return 2
	}

	for _, d := range diagnostics {
		fmt.Println(d.Error())
	}
	if len(diagnostics) > 0 {
		return 1
	}
	return 0
}
