package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var monthsPT = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// PTBR formats amounts as Brazilian reais and dates in long Portuguese form.
type PTBR struct {
	groupSep string
}

// New creates a pt-BR formatter. The thousands separator comes from the
// locale's number printer.
func New() *PTBR {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return &PTBR{groupSep: strings.Trim(p.Sprintf("%d", 1000), "01")}
}

// Currency renders amount as "R$ 1.234,56", rounding half away from zero to
// two places.
func (f *PTBR) Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(2).IntPart()

	out := fmt.Sprintf("R$ %s,%02d", f.group(whole.String()), cents)
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}

// group inserts the thousands separator into a string of digits. Working on
// the digits keeps amounts beyond int64 exact.
func (f *PTBR) group(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// LongDate renders t as "10 de novembro de 2020".
func (f *PTBR) LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsPT[t.Month()-1], t.Year())
}
