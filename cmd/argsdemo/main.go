// argsdemo shows nargs driving a small program:
//
//	argsdemo -l -p 8080 -d /var/www
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/muir/nargs"
)

const schema = "l,p#,d*"

type options struct {
	Logging   bool   `args:"l"`
	Port      int    `args:"p" validate:"omitempty,min=1,max=65535"`
	Directory string `args:"d"`
}

func main() {
	var parsed *nargs.Args
	cmd, err := nargs.NewCommand(schema,
		nargs.WithName("argsdemo"),
		nargs.OnValid(func(a *nargs.Args) {
			parsed = a
		}),
		nargs.OnInvalid(func(a *nargs.Args) {
			msg, _ := a.ErrorMessage()
			color.New(color.FgRed).Fprintf(os.Stderr, "Argument error: %s\n", msg)
			fmt.Fprintf(os.Stderr, "Usage: argsdemo %s\n", a.Usage())
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cmd.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	var opts options
	if err := parsed.Fill(&opts, nargs.WithValidate(validator.New())); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	fmt.Printf("logging is %t, port: %d, directory: %s\n", opts.Logging, opts.Port, opts.Directory)
}
