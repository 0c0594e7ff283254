package ops_test

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"numops/nullable"
	"numops/ops"
)

// TestFormatCatalogue pins the rendering of every formatting path against a
// golden file, so an accidental change in any of them shows up as a diff.
func TestFormatCatalogue(t *testing.T) {
	var buf bytes.Buffer

	line := func(label, s string, err error) {
		require.NoError(t, err, label)
		fmt.Fprintf(&buf, "%s => %s\n", label, s)
	}

	s, err := ops.Format(42, "")
	line("int default", s, err)

	s, err = ops.Format(42, "+d")
	line("int %+d", s, err)

	s, err = ops.Format(uint8(255), "X")
	line("uint8 %X", s, err)

	s, err = ops.Format(uint8(5), "08b")
	line("uint8 %08b", s, err)

	s, err = ops.Format(int32(64), "o")
	line("int32 %o", s, err)

	s, err = ops.Format(3.5, "")
	line("float64 default", s, err)

	s, err = ops.Format(3.14159, ".2f")
	line("float64 %.2f", s, err)

	s, err = ops.Format(1250.0, "e")
	line("float64 %e", s, err)

	s, err = ops.Format(big.NewInt(0).Lsh(big.NewInt(1), 64), "")
	line("big.Int default", s, err)

	s, err = ops.Format(decimal.MustParse("3.75"), "")
	line("decimal default", s, err)

	s, err = ops.FormatLocalized(1234567, language.English)
	line("int en locale", s, err)

	s, err = ops.FormatLocalized(1234567, language.German)
	line("int de locale", s, err)

	s, err = ops.Format(nullable.None[int](), "")
	line("nullable absent", s, err)

	s, err = ops.Format(nullable.Some(42), "X")
	line("nullable present %X", s, err)

	g := goldie.New(t)
	g.Assert(t, "format_catalogue", buf.Bytes())
}
