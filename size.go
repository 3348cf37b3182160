package human

import "fmt"

// UnitSystem selects how byte counts scale: binary (IEC, 1024-based) or
// decimal (SI, 1000-based).
type UnitSystem int

// Supported unit systems.
const (
	// Binary scales by powers of 1024 (KiB, MiB, ...). This is the default.
	Binary UnitSystem = iota
	// Decimal scales by powers of 1000 (KB, MB, ...).
	Decimal
)

var (
	binaryLadder = sizeLadder(1024,
		[]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"},
		[]string{"byte", "kibibyte", "mebibyte", "gibibyte", "tebibyte", "pebibyte", "exbibyte", "zebibyte", "yobibyte"},
	)
	decimalLadder = sizeLadder(1000,
		[]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"},
		[]string{"byte", "kilobyte", "megabyte", "gigabyte", "terabyte", "petabyte", "exabyte", "zettabyte", "yottabyte"},
	)
)

func sizeLadder(step float64, symbols, words []string) []scaleUnit {
	ladder := make([]scaleUnit, len(symbols))
	magnitude := 1.0
	for i := range symbols {
		ladder[i] = scaleUnit{threshold: magnitude, divisor: magnitude, symbol: symbols[i], word: words[i]}
		magnitude *= step
	}
	return ladder
}

// Size formats a byte count, scaling binary (IEC) by default.
type Size struct {
	bytes  uint64
	system UnitSystem
}

// NewSize creates a size formatter for b bytes. Negative byte counts are
// not meaningful and are rejected with ErrInvalidInput.
func NewSize(b int64) (Size, error) {
	if b < 0 {
		return Size{}, fmt.Errorf("%w: byte count must be non-negative, got %d", ErrInvalidInput, b)
	}
	return Size{bytes: uint64(b)}, nil
}

// Decimal returns a copy of s that scales by powers of 1000.
func (s Size) Decimal() Size {
	s.system = Decimal
	return s
}

// Binary returns a copy of s that scales by powers of 1024.
func (s Size) Binary() Size {
	s.system = Binary
	return s
}

// Concise renders the size with a unit symbol, such as "5 MiB". Exact
// divisions render without decimals; everything else keeps one digit.
func (s Size) Concise() string {
	u := pickUnit(s.ladder(), float64(s.bytes))
	return formatScaled(float64(s.bytes)/u.divisor) + " " + u.symbol
}

// Full renders the size with the unit spelled out and pluralized, such as
// "5 mebibytes" or "1 kibibyte".
func (s Size) Full() string {
	u := pickUnit(s.ladder(), float64(s.bytes))
	scaled := formatScaled(float64(s.bytes) / u.divisor)
	word := u.word
	if scaled != "1" {
		word += "s"
	}
	return scaled + " " + word
}

// String renders the full form.
func (s Size) String() string {
	return s.Full()
}

func (s Size) ladder() []scaleUnit {
	if s.system == Decimal {
		return decimalLadder
	}
	return binaryLadder
}
