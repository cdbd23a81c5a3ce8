/*
Package nargs parses single-letter command line flags described by a
compact schema string.

The schema is a comma separated list of flag letters, each optionally
followed by a type tag:

	l     boolean: present or not
	d*    string:  takes the next argument
	p#    integer: takes the next argument, base 10
	r##   double:  takes the next argument (only with AllowDoubles)

Whitespace around elements is ignored and empty elements are skipped,
so "l, p#, d*," is the same as "l,p#,d*". An element with any other tag
declares nothing. If a letter is declared twice the last declaration
wins.

Arguments that start with "-" are flag clusters: "-lp 8080" sets l and
reads 8080 for p. Other arguments are skipped.

	a, err := nargs.Parse("l,p#,d*", os.Args[1:])
	if err != nil {
		// the schema is malformed
	}
	if !a.IsValid() {
		msg, _ := a.ErrorMessage()
		fmt.Println(msg)
		fmt.Println(a.Usage())
		os.Exit(1)
	}
	port := a.GetInteger('p')

Undeclared letters are collected and scanning goes on. A string,
integer, or double flag with no following argument, or with one that
does not convert, stops the scan right there. ErrorMessage reports
undeclared letters first, otherwise that one value error.

Parsed values can be copied into a struct with Fill, and Command wraps
the whole parse-check-report sequence for a main function.
*/
package nargs
