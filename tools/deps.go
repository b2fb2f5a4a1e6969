//go:build tools

package tools

import (
	// Used by internal/mock.
	_ "go.uber.org/mock/mockgen"
	// Used by CI.
	_ "golang.org/x/lint"
	// Used by CI.
	_ "mvdan.cc/gofumpt"
)
