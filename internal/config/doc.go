// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. JSON config file
//
// The main entry point is [GetStructuredConfig]. The listen port is taken
// from PORT and falls back to [DefaultPort].
package config
