//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: authoring new migrations
//   (go tool goose -dir migrations create NAME sql)
// - github.com/matryer/moq: service and handler mocks (*_mock_test.go)
