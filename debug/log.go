// Package debug provides env-gated debug flags and logging for the
// module. Flags are read once at startup from JX_DEBUG_* variables.
package debug

import (
	"fmt"
	"os"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

// Logf writes a debug line to stderr, rendering *ir.Value arguments in
// their canonical encoded form.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Value:
			s, err := encode.String(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Value] %v", x)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
