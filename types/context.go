package types

import "github.com/lepinkainen/fileanonymizer/logging"

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string

	// Logger is created by the command when nil
	Logger *logging.Logger
}
