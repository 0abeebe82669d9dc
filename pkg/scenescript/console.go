package scenescript

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI implements console.log, console.warn, and console.error for
// scene scripts. Warnings and errors carry a level prefix and go to errOut,
// keeping script diagnostics separable from a batch renderer's own output.
type consoleAPI struct {
	out    io.Writer
	errOut io.Writer
}

func newConsoleAPI() *consoleAPI {
	return &consoleAPI{out: os.Stdout, errOut: os.Stderr}
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.print(c.out, ""))
	console.Set("warn", c.print(c.errOut, "warn: "))
	console.Set("error", c.print(c.errOut, "error: "))
	vm.Set("console", console)
}

func (c *consoleAPI) print(w io.Writer, prefix string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		fmt.Fprintln(w, prefix+strings.Join(parts, " "))
		return goja.Undefined()
	}
}
