package main

// options are the recognized boolean flags. They may appear anywhere in the
// argument list and are order-independent.
type options struct {
	help     bool
	config   bool
	debug    bool
	markdown bool
}

// parseArgs splits the raw argument list into recognized flags and the
// remaining free-text arguments. Flags are stripped so they never leak into
// the query sent to the model.
func parseArgs(args []string) (options, []string) {
	var opts options

	rest := make([]string, 0, len(args))

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			opts.help = true
		case "--config":
			opts.config = true
		case "--debug":
			opts.debug = true
		case "--markdown":
			opts.markdown = true
		default:
			rest = append(rest, arg)
		}
	}

	return opts, rest
}
