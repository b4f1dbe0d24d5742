package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/keshon/shellcli/table"
)

// Driver is the interactive shell loop. A host configures it with a prompt
// and a set of commands, then calls Run; the driver reads one line per
// iteration, resolves it against the registry and dispatches it until a
// command signals termination.
type Driver struct {
	prompt     string
	registry   *Registry
	helpTokens map[string]struct{}
	ctx        *Context

	in   io.Reader
	out  io.Writer
	errw io.Writer

	log           *slog.Logger
	split         Splitter
	middlewares   []Middleware
	shutdown      func()
	recoverPanics bool
}

// New creates a driver reading stdin and writing stdout/stderr, with the
// default help tokens "?" and "help".
func New() *Driver {
	return &Driver{
		registry:      NewRegistry(),
		helpTokens:    map[string]struct{}{"?": {}, "help": {}},
		ctx:           NewContext(),
		in:            os.Stdin,
		out:           os.Stdout,
		errw:          os.Stderr,
		split:         SplitWhitespace,
		recoverPanics: true,
	}
}

// WithPrompt sets the prompt printed before each read.
func (d *Driver) WithPrompt(prompt string) *Driver {
	d.prompt = prompt
	return d
}

// WithCommand registers a command, wrapped with any middlewares installed
// via Use so far.
func (d *Driver) WithCommand(cmd Command) *Driver {
	d.registry.Add(Apply(cmd, d.middlewares...))
	return d
}

// WithCommands registers commands in order; later entries shadow earlier
// ones when names collide.
func (d *Driver) WithCommands(cmds []Command) *Driver {
	for _, cmd := range cmds {
		d.WithCommand(cmd)
	}
	return d
}

// WithProvider discovers the commands of a namespace through p and registers
// them. A discovery failure is logged and leaves the driver usable.
func (d *Driver) WithProvider(p Provider, namespace string) *Driver {
	cmds, err := p.Discover(namespace)
	if err != nil {
		d.logger().Warn("command discovery failed", "namespace", namespace, "error", err)
		return d
	}
	return d.WithCommands(cmds)
}

// WithContext replaces the shared session context. Useful when the host
// wants to pre-seed Values or share the context with its own code.
func (d *Driver) WithContext(ctx *Context) *Driver {
	d.ctx = ctx
	return d
}

// WithHelpTokens replaces the recognized help tokens. With no tokens, help
// rendering is disabled entirely and a command named "help" becomes
// reachable.
func (d *Driver) WithHelpTokens(tokens ...string) *Driver {
	d.helpTokens = make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		d.helpTokens[strings.ToLower(tok)] = struct{}{}
	}
	return d
}

// WithSplitter sets the argument splitter used on the remainder of each
// line. The default splits on runs of whitespace.
func (d *Driver) WithSplitter(split Splitter) *Driver {
	d.split = split
	return d
}

// WithShutdown sets a hook invoked once when the loop exits.
func (d *Driver) WithShutdown(fn func()) *Driver {
	d.shutdown = fn
	return d
}

// WithLogger replaces the driver logger. The default logs to the error
// stream.
func (d *Driver) WithLogger(log *slog.Logger) *Driver {
	d.log = log
	return d
}

// WithInput sets the stream lines are read from.
func (d *Driver) WithInput(in io.Reader) *Driver {
	d.in = in
	return d
}

// WithOutput sets the stream for the prompt, help and command output.
func (d *Driver) WithOutput(out io.Writer) *Driver {
	d.out = out
	return d
}

// WithErrOutput sets the stream for warnings and command error output.
func (d *Driver) WithErrOutput(errw io.Writer) *Driver {
	d.errw = errw
	return d
}

// WithPanicPropagation disables the recovery wrapper around command
// execution, letting a panicking command take the process down.
func (d *Driver) WithPanicPropagation() *Driver {
	d.recoverPanics = false
	return d
}

// Use installs middlewares applied to every command registered afterwards.
func (d *Driver) Use(mws ...Middleware) *Driver {
	d.middlewares = append(d.middlewares, mws...)
	return d
}

// Registry exposes the driver registry, for hosts that want to inspect it
// during setup. It must not be mutated once Run has started.
func (d *Driver) Registry() *Registry {
	return d.registry
}

// Run executes the loop until a command returns false or the input stream
// ends, then invokes the shutdown hook. No input line is ever fatal: unknown
// commands and malformed lines are reported and the loop continues. Lines
// are read unbounded, so length alone cannot end the loop.
func (d *Driver) Run() error {
	log := d.logger()
	reader := bufio.NewReader(d.in)
	var readErr error
	for {
		fmt.Fprint(d.out, d.prompt)
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if !d.dispatch(log, trimmed) {
				break
			}
		}
		if err != nil {
			if err != io.EOF {
				readErr = errors.Wrap(err, "reading input")
			}
			break
		}
	}

	if d.shutdown != nil {
		d.shutdown()
	}
	return readErr
}

// dispatch resolves one non-blank input line and acts on it. It returns
// false only when the resolved command signals termination.
func (d *Driver) dispatch(log *slog.Logger, line string) bool {
	name, remainder := splitLine(line)
	var args []string
	if remainder != "" {
		var err error
		args, err = d.split(remainder)
		if err != nil {
			log.Warn("could not parse arguments", "command", name, "error", err)
			return true
		}
	}

	// The whole-line check runs before the registry lookup, so help
	// tokens shadow any command registered under the same name.
	if d.isHelpToken(name) {
		d.printHelp(d.out)
		return true
	}

	cmd, ok := d.registry.Get(name)
	if !ok {
		log.Warn("no such command registered", "command", name)
		return true
	}

	if len(args) > 0 && d.isHelpToken(strings.TrimSpace(args[0])) {
		d.printCommandHelp(d.out, name, cmd)
		return true
	}

	d.ctx.update(name, args)
	return d.invoke(cmd)
}

// invoke runs cmd against the current context. Unless panic propagation was
// requested, a panicking command is reported and treated as "continue".
func (d *Driver) invoke(cmd Command) (cont bool) {
	if d.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				d.logger().Error("command panicked", "command", d.ctx.Name, "panic", r)
				cont = true
			}
		}()
	}
	return cmd.Run(d.ctx, d.out, d.errw)
}

func (d *Driver) isHelpToken(word string) bool {
	_, ok := d.helpTokens[strings.ToLower(word)]
	return ok
}

// printHelp renders the global listing: one row per distinct command, its
// aliases joined as the key and its brief description as the value.
func (d *Driver) printHelp(out io.Writer) {
	tbl := table.New(out).WithLines(false)
	for _, cmd := range d.registry.All() {
		tbl.AddRow(strings.Join(cmd.Names(), ", "), cmd.Brief())
	}
	tbl.Print()
}

func (d *Driver) printCommandHelp(out io.Writer, name string, cmd Command) {
	fmt.Fprintf(out, "%s command help:\n\n", name)
	fmt.Fprintln(out, "Command forms: "+strings.Join(cmd.Names(), ", "))
	if help := cmd.Help(); help != "" {
		fmt.Fprintln(out, help)
	}
}

func (d *Driver) logger() *slog.Logger {
	if d.log != nil {
		return d.log
	}
	// Not cached: the error stream may still be swapped out by a later
	// With* call during setup.
	return slog.New(slog.NewTextHandler(d.errw, nil))
}
