// Package config loads runtime configuration for the trace console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the trace-survey API
//	-s string   path of the credential store file
//	-d string   download subdirectory for saved PDFs
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:3000/api",
//	  "store_path": "/home/me/.config/trace-console/auth.json",
//	  "download_dir": "download"
//	}
//
// Environment variables: TRACE_API_BASE_URL, TRACE_AUTH_STORE,
// TRACE_DOWNLOAD_DIR.
package config
