package mh10

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// identifierPattern matches the data identifier at the start of a field.
var identifierPattern = regexp.MustCompile(`^[0-9]{0,3}[A-Za-z]`)

// splitRecords walks input record by record. A record is either a format
// envelope ("06" GS ... RS) or, when no record separator remains, the bare
// rest of the input. Every iteration consumes at least one character.
func (p *Parser) splitRecords(input string, pos int, fn func(*Resolved)) bool {
	rest := input
	for rest != "" {
		var record string
		consumed := len(rest)

		end := strings.IndexByte(rest, RS)
		header := strings.HasPrefix(rest, FormatHeader)
		switch {
		case end >= 0 && header:
			record = rest[:end]
			consumed = end + 1
		case end >= 0:
			// Terminator without a header: drop everything through the RS.
			consumed = end + 1
			if !p.envelopeError(pos, "record separator without format header", fn) {
				return false
			}
		case header:
			// Header that is never terminated: drop the remainder.
			if !p.envelopeError(pos, "format header without record separator", fn) {
				return false
			}
		default:
			record = rest
		}

		recordPos := pos
		if strings.HasPrefix(record, FormatHeader) {
			record = record[len(FormatHeader):]
			recordPos += utf8.RuneCountInString(FormatHeader)
		}

		if strings.TrimSpace(record) != "" {
			for _, h := range p.hooks.onRecord {
				h(recordPos, record)
			}
			if !p.splitFields(record, recordPos, fn) {
				return false
			}
		}

		pos += utf8.RuneCountInString(rest[:consumed])
		rest = rest[consumed:]
	}
	return true
}

func (p *Parser) envelopeError(pos int, detail string, fn func(*Resolved)) bool {
	p.logger.Debug("mh10: invalid envelope",
		slog.Int("position", pos),
		slog.String("detail", detail),
	)
	return p.emit(wrapResolved(nil, newErrorf(CodeInvalidEnvelope, "%s", detail), pos), fn)
}

// splitFields walks one record field by field, splitting on GS. Every
// iteration consumes the field and at most one separator.
func (p *Parser) splitFields(record string, pos int, fn func(*Resolved)) bool {
	rest := record
	for rest != "" {
		field := rest
		consumed := len(rest)
		if i := strings.IndexByte(rest, GS); i >= 0 {
			field = rest[:i]
			consumed = i + 1
		}

		fieldPos := pos
		pos += utf8.RuneCountInString(rest[:consumed])
		rest = rest[consumed:]

		loc := identifierPattern.FindStringIndex(field)
		if loc == nil {
			r := wrapResolved(newResolved(KeyUnresolved, "", field, "", "", fieldPos), newError(CodeNoIdentifier), fieldPos)
			if !p.emit(r, fn) {
				return false
			}
			continue
		}

		token, value := field[:loc[1]], field[loc[1]:]
		if !p.emit(p.Resolve(value, token, fieldPos+loc[1]), fn) {
			return false
		}
	}
	return true
}
