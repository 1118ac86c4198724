package domain

import "strings"

// SourceSuffix is the suffix of C translation units.
const SourceSuffix = ".c"

// ParsedArgs is the result of parsing a toolchain argument vector.
type ParsedArgs struct {
	// Flags holds the preprocessor-affecting tokens in their original order.
	// A flag whose value is a separate token is followed by that token.
	Flags []string
	// Sources holds every dash-less token ending in SourceSuffix, as written.
	Sources []string
	// Operands holds every dash-less token that is not the value of a flag.
	Operands []string
	// Output is the declared output path, empty when none was given.
	Output string
	// CompileOnly reports that the invocation stops before linking.
	CompileOnly bool
}

// ActsAsLinker reports whether a compiler driver invocation also links.
func (p ParsedArgs) ActsAsLinker() bool {
	return !p.CompileOnly
}

// pairedFlags affect preprocessing and take their value from the next token
// when written alone.
var pairedFlags = map[string]bool{
	"-I":         true,
	"-D":         true,
	"-U":         true,
	"-include":   true,
	"-imacros":   true,
	"-isystem":   true,
	"-iquote":    true,
	"-idirafter": true,
}

// valueFlags take a separate value but do not affect preprocessing. Their
// value is skipped so it never reads as an operand.
var valueFlags = map[string]bool{
	"-MF":            true,
	"-MT":            true,
	"-MQ":            true,
	"-MJ":            true,
	"-x":             true,
	"-L":             true,
	"-l":             true,
	"-T":             true,
	"-u":             true,
	"-z":             true,
	"-e":             true,
	"-Xlinker":       true,
	"-Xassembler":    true,
	"-Xpreprocessor": true,
	"-Xclang":        true,
	"-target":        true,
	"-arch":          true,
}

// fusedPrefixes match preprocessing flags written with their value attached.
var fusedPrefixes = []string{
	"-I", "-D", "-U", "-std=",
	"-include", "-imacros", "-isystem", "-iquote", "-idirafter",
}

// stopEarly flags end the driver pipeline before the link step.
var stopEarly = map[string]bool{
	"-c":  true,
	"-S":  true,
	"-E":  true,
	"-M":  true,
	"-MM": true,
}

// ParseArgs extracts flags, sources and output from args.
// args must not include the program name.
func ParseArgs(args []string) ParsedArgs {
	var p ParsedArgs
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if pairedFlags[arg] {
			if i+1 >= len(args) {
				// Malformed: the value is missing.
				continue
			}
			p.Flags = append(p.Flags, arg, args[i+1])
			i++
			continue
		}

		if valueFlags[arg] {
			i++
			continue
		}

		if arg == "-o" {
			if i+1 < len(args) {
				p.Output = args[i+1]
				i++
			}
			continue
		}

		if strings.HasPrefix(arg, "-") {
			switch {
			case stopEarly[arg]:
				p.CompileOnly = true
			case strings.HasPrefix(arg, "-o") && !strings.HasPrefix(arg, "-objc"):
				p.Output = strings.TrimPrefix(arg, "-o")
			case hasFusedPrefix(arg):
				p.Flags = append(p.Flags, arg)
			}
			continue
		}

		p.Operands = append(p.Operands, arg)
		if strings.HasSuffix(arg, SourceSuffix) {
			p.Sources = append(p.Sources, arg)
		}
	}
	return p
}

func hasFusedPrefix(arg string) bool {
	for _, prefix := range fusedPrefixes {
		if strings.HasPrefix(arg, prefix) && len(arg) > len(prefix) {
			return true
		}
	}
	return false
}
