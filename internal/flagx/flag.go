// Package flagx contains helpers for parsing a subset of the command line
// ahead of the main flag set, so the config-file path can be read before the
// remaining flags are registered.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the arguments that belong to the given flags.
//
// Both spellings are recognized: a flag with its value as the next argument
// ("-c conf.json") and the combined form ("--config=conf.json"). Everything
// else, including positional arguments and unknown flags, is dropped.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, name := range allowedFlags {
		allowed[name] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if _, ok := allowed[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		kept = append(kept, arg)
		// A following token that does not look like a flag is this flag's value.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			kept = append(kept, args[i])
		}
	}
	return kept
}

// JsonConfigFlags extracts the config-file path given via -c or -config.
// Other flags on the command line are left for the caller's own flag set to
// parse later. Returns "" when neither flag is present.
func JsonConfigFlags() string {
	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	var path string
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (shorthand)")
	_ = fs.Parse(args)

	return path
}
