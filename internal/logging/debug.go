package logging

import (
	"os"
)

// DebugEnabled returns true if debug mode is enabled via the TP_DEBUG or
// DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TP_DEBUG") != "" || os.Getenv("DEBUG") != ""
}
