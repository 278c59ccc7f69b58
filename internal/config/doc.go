// Package config resolves the chatbot backend settings from the process
// environment and an optional .env override file. Precedence: process
// environment > override file > documented defaults. The resulting Settings
// value is read-only and shared process-wide through Shared.
package config
