// Package domain contains the core business types for ScriptVault.
// It has no dependencies on adapters or external libraries beyond time,
// keeping the hexagonal core free of infrastructure concerns.
package domain
