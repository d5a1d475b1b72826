// Package flagx contains helpers for cooperating flag sets: packages that
// parse their own subset of os.Args without tripping over flags owned by
// other packages.
package flagx

import "strings"

// FilterArgs returns the subset of args that belongs to allowedFlags,
// preserving order. Two forms are recognized:
//
//  1. flag and value as separate arguments:  -a http://localhost:3000
//  2. flag and value joined with '=':        --api-url=http://localhost:3000
//
// Unknown flags, their values, and positional arguments are dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// the next argument is this flag's value unless it looks like a flag
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
