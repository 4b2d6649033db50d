// Package cmd provides the CLI commands for the sqlformat tool.
//
// # Available Commands
//
//   - fmt: Format SQL from stdin, files or directory trees
//   - tokenize: Print the token stream of a SQL file
//   - dialects: List the supported dialects
//
// # Command Structure
//
// Each command is implemented as a function returning a *cli.Command, following the
// urfave/cli/v3 pattern. The functions are provided to fx in the "commands" value
// group and receive the *config.Config built by the config module.
//
// # Global Options
//
//   - --config, -c: Use a specific configuration file
//   - --verbose, -v: Enable debug logging
//   - --version: Display version information
//
// # Example Usage
//
//	sqlformat fmt -w db/                       # Format a directory tree in place
//	sqlformat fmt --check --dialect pg db/      # Fail when files need formatting
//	cat query.sql | sqlformat fmt --keyword-case upper
//	sqlformat tokenize query.sql
package cmd
