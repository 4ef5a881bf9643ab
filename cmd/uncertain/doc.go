// Command uncertain evaluates a worksheet file and prints every named
// quantity with its propagated uncertainty.
//
// Usage:
//
//	uncertain [-format yaml|toml|json] [-json] [-max-steps N] sheet.yaml
package main
