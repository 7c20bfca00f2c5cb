package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/ymdhms2jd/internal/julian"
)

// instantFields names the positional arguments in order.
var instantFields = []string{"year", "month", "day", "hour", "minute", "second"}

// ParseInstant parses the six positional arguments into an Instant.
// The first five must be base-10 integers; second may be any decimal real
// number, "inf" or "nan". Surrounding whitespace is ignored and single
// underscores between digits are accepted ("1_000"). Hex float literals
// are rejected. Errors name the offending argument and wrap the strconv
// error.
func ParseInstant(args []string) (julian.Instant, error) {
	if len(args) != len(instantFields) {
		return julian.Instant{}, fmt.Errorf("expected %d arguments, got %d", len(instantFields), len(args))
	}

	var ints [5]int
	for i := range ints {
		v, err := parseInt(args[i])
		if err != nil {
			return julian.Instant{}, fmt.Errorf("invalid %s %q: %w", instantFields[i], args[i], err)
		}
		ints[i] = v
	}

	second, err := parseFloat(args[5])
	if err != nil {
		return julian.Instant{}, fmt.Errorf("invalid second %q: %w", args[5], err)
	}

	return julian.Instant{
		Year:   ints[0],
		Month:  ints[1],
		Day:    ints[2],
		Hour:   ints[3],
		Minute: ints[4],
		Second: second,
	}, nil
}

func parseInt(s string) (int, error) {
	s, err := stripDigitSeparators(strings.TrimSpace(s), "Atoi")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func parseFloat(s string) (float64, error) {
	s, err := stripDigitSeparators(strings.TrimSpace(s), "ParseFloat")
	if err != nil {
		return 0, err
	}
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

// stripDigitSeparators removes underscores that sit between two digits.
// Any other underscore is a syntax error.
func stripDigitSeparators(s, fn string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}
		}
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// separateNegativeNumbers moves positionals behind a "--" terminator so a
// year like "-4712" is not parsed as a shorthand flag. Flags and their
// values stay in front. Args addressed to a subcommand are left untouched.
func separateNegativeNumbers(cmd *cobra.Command, args []string) []string {
	var flagArgs, positional []string
	negative := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			positional = append(positional, arg)
			negative = true
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagArgs = append(flagArgs, arg)
			if flagTakesValue(cmd, arg) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	if !negative || (len(positional) > 0 && isSubcommand(cmd, positional[0])) {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flagArgs...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// flagTakesValue reports whether arg is a flag whose value is the next arg.
func flagTakesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if f = cmd.PersistentFlags().Lookup(name); f == nil {
			f = cmd.Flags().Lookup(name)
		}
	} else {
		// Only the last letter of a shorthand group can take a value.
		name := arg[len(arg)-1:]
		if f = cmd.PersistentFlags().ShorthandLookup(name); f == nil {
			f = cmd.Flags().ShorthandLookup(name)
		}
	}

	return f != nil && f.NoOptDefVal == ""
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
