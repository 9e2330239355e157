//go:build tools
// +build tools

package tools

import (
	// Linter
	_ "golang.org/x/lint/golint"
)
