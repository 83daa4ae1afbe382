//go:build tools
// +build tools

// Package tools tracks Go-based tools invoked through go generate.
package todo_list

import (
	_ "go.uber.org/mock/mockgen"
)
