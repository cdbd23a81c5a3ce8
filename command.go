package nargs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muir/nject"
)

// Command ties a schema to a program entry point: it parses argv, runs
// the OnValid chain when the arguments are good, and otherwise reports
// the problem along with the usage line.
//
//	cmd, err := nargs.NewCommand("l,p#,d*",
//		nargs.OnValid(func(a *nargs.Args) {
//			serve(a.GetBoolean('l'), a.GetInteger('p'), a.GetString('d'))
//		}))
//	...
//	if err := cmd.Run(os.Args[1:]); err != nil {
//		os.Exit(1)
//	}
type Command struct {
	name      string
	schema    string
	parseOpts []Option
	output    io.Writer
	onValid   func(*Args) error
	onInvalid func(*Args) error
}

type CommandOpt func(*Command) error

// NewCommand validates the options but does not look at the schema
// until Run.
func NewCommand(schema string, opts ...CommandOpt) (*Command, error) {
	c := &Command{
		name:   filepath.Base(os.Args[0]),
		schema: schema,
		output: os.Stderr,
	}
	for _, f := range opts {
		err := f(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithName sets the program name shown in the usage line. The default
// is the base name of os.Args[0].
func WithName(name string) CommandOpt {
	return func(c *Command) error {
		c.name = name
		return nil
	}
}

// WithOutput is where the default invalid-arguments report is written.
// The default is os.Stderr.
func WithOutput(w io.Writer) CommandOpt {
	return func(c *Command) error {
		c.output = w
		return nil
	}
}

// WithParseOptions passes options through to Parse.
func WithParseOptions(opts ...Option) CommandOpt {
	return func(c *Command) error {
		c.parseOpts = append(c.parseOpts, opts...)
		return nil
	}
}

// OnValid is called with the parsed *Args when the arguments are valid.
// The chain is an nject chain: functions in it may take *Args and may
// return nject.TerminalError to stop.
func OnValid(chain ...interface{}) CommandOpt {
	return func(c *Command) error {
		return nject.Sequence("default-error-responder",
			nject.Provide("default-error", func() nject.TerminalError {
				return nil
			})).Append("on-valid", chain...).Bind(&c.onValid, nil)
	}
}

// OnInvalid replaces the default report written when the arguments are
// not valid. Run still returns the usage error afterwards.
func OnInvalid(chain ...interface{}) CommandOpt {
	return func(c *Command) error {
		return nject.Sequence("default-error-responder",
			nject.Provide("default-error", func() nject.TerminalError {
				return nil
			})).Append("on-invalid", chain...).Bind(&c.onInvalid, nil)
	}
}

// Usage is "Usage: name -[schema]".
func (c *Command) Usage() string {
	u := "Usage: " + c.name
	if c.schema != "" {
		u += " -[" + c.schema + "]"
	}
	return u
}

// Run parses argv (without the program name). A malformed schema is
// returned as is. Invalid arguments produce a usage error.
func (c *Command) Run(argv []string) error {
	debug("run", c.name, argv)
	a, err := Parse(c.schema, argv, c.parseOpts...)
	if err != nil {
		return err
	}
	if a.IsValid() {
		if c.onValid != nil {
			return c.onValid(a)
		}
		return nil
	}
	if c.onInvalid != nil {
		err := c.onInvalid(a)
		if err != nil {
			return err
		}
		return a.Err()
	}
	msg, err := a.ErrorMessage()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.output, "Argument error: %s\n%s\n", msg, c.Usage())
	return a.Err()
}
