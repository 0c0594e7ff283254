package builtin

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"numops/registry"
)

// formatValue renders any built-in numeric value. Styles are fmt verbs
// ("X", "08b", ".2f"); the leading percent sign is optional. A locale
// switches to locale-aware digit grouping and decimal separators.
func formatValue(v any, opts registry.FormatOptions) (string, error) {
	if opts.Locale != language.Und {
		return formatLocalized(v, opts.Locale), nil
	}

	if opts.Verb == "" {
		return fmt.Sprintf("%v", v), nil
	}

	verb := opts.Verb
	if !strings.HasPrefix(verb, "%") {
		verb = "%" + verb
	}

	out := fmt.Sprintf(verb, v)
	if strings.HasPrefix(out, "%!") {
		return "", fmt.Errorf("invalid format verb %q for %T", opts.Verb, v)
	}

	return out, nil
}

func formatLocalized(v any, tag language.Tag) string {
	switch v.(type) {
	case *big.Int, decimal.Decimal:
		// no grouping support for these, keep the plain rendering
		return fmt.Sprintf("%v", v)
	}

	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(v))
}

func parseBase(opts registry.ParseOptions) int {
	switch opts.Base {
	case 0:
		return 10
	case registry.BaseAuto:
		return 0
	default:
		return opts.Base
	}
}
