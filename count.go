package human

import (
	"strconv"
	"strings"
)

// countLadder scales counts by powers of 1000.
var countLadder = []scaleUnit{
	{threshold: 1, divisor: 1, symbol: "", word: ""},
	{threshold: 1e3, divisor: 1e3, symbol: "K", word: "thousand"},
	{threshold: 1e6, divisor: 1e6, symbol: "M", word: "million"},
	{threshold: 1e9, divisor: 1e9, symbol: "B", word: "billion"},
	{threshold: 1e12, divisor: 1e12, symbol: "T", word: "trillion"},
	{threshold: 1e15, divisor: 1e15, symbol: "Q", word: "quadrillion"},
	{threshold: 1e18, divisor: 1e18, symbol: "Qi", word: "quintillion"},
}

// Count formats a whole number by scaling it into thousands, millions,
// billions and beyond. Counts below 1000 render as the plain integer in
// both styles.
type Count struct {
	number uint64
}

// NewCount creates a count formatter for n.
func NewCount(n uint64) Count {
	return Count{number: n}
}

// Concise renders the count with a unit symbol and no space, such as "1.2K".
func (c Count) Concise() string {
	if c.number < 1000 {
		return strconv.FormatUint(c.number, 10)
	}
	u := pickUnit(countLadder, float64(c.number))
	return formatScaled(float64(c.number)/u.divisor) + u.symbol
}

// Full renders the count with the unit spelled out, such as "1.2 thousand".
func (c Count) Full() string {
	if c.number < 1000 {
		return strconv.FormatUint(c.number, 10)
	}
	u := pickUnit(countLadder, float64(c.number))
	return formatScaled(float64(c.number)/u.divisor) + " " + u.word
}

// String renders the full form.
func (c Count) String() string {
	return c.Full()
}

// Comma renders v with its integer digits grouped in threes and any
// fractional part preserved: Comma(1234567.89) == "1,234,567.89".
func Comma(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3)
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}
