package mh10

// Delimiters defined by ISO/IEC 15434 for MH10.8.2 data streams.
const (
	GS  = '\x1d' // field separator
	RS  = '\x1e' // record separator
	EOT = '\x04' // message trailer

	// FormatHeader opens a format 06 envelope.
	FormatHeader = "06" + string(GS)

	// MessageHeader opens an ISO/IEC 15434 message.
	MessageHeader = "[)>" + string(RS)
)

// KeyUnresolved is returned by ResolveKey when no key can be derived.
const KeyUnresolved = -1

const (
	maxCategory     = 26
	maxPrefixDigits = 3
)

var reservedKeys = map[string]int{
	"+":           0,
	"&":           2,
	"=":           3,
	string(GS):    4,
	MessageHeader: 5,
	"-":           6,
	"!":           7,
}

// ResolveKey derives the catalog key for a data identifier token.
//
// Ordinary identifiers are up to three digits followed by one letter and map
// to category*1000 + prefix, where the letter gives the category (A=1 … Z=26,
// case-insensitive) and the digits the prefix (0 when absent):
//
//	ResolveKey("D")   // 4000
//	ResolveKey("9N")  // 14009
//	ResolveKey("25s") // 19025
//
// A few stand-alone control and punctuation tokens map to the reserved keys
// 0 and 2–7. Anything else, including the empty token, yields KeyUnresolved.
func ResolveKey(token string) int {
	if key, ok := reservedKeys[token]; ok {
		return key
	}
	if token == "" {
		return KeyUnresolved
	}

	category := letterCategory(token[len(token)-1])
	if category < 1 || category > maxCategory {
		return KeyUnresolved
	}

	prefix := token[:len(token)-1]
	if len(prefix) > maxPrefixDigits {
		return KeyUnresolved
	}
	item := 0
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < '0' || c > '9' {
			return KeyUnresolved
		}
		item = item*10 + int(c-'0')
	}

	return category*1000 + item
}

// letterCategory returns the 1-based alphabet index of c, or 0 if c is not
// an ASCII letter.
func letterCategory(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 1
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	default:
		return 0
	}
}
