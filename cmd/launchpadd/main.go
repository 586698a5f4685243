// Launchpadd is the AI co-founder daemon: it persists startup projects
// and drives generation features (naming, logos, website and marketing
// plans, simulations) through a generative model provider. It serves an
// HTTP API and an MCP stdio transport for agent clients.
//
// Usage:
//
//	# Start the HTTP server
//	launchpadd serve
//
//	# Serve MCP over stdio
//	launchpadd mcp
//
//	# Manage projects from the command line
//	launchpadd project list
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
