// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables, with a .env file loaded first
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and [Load]
// for callers that bring their own argument list.
package config
