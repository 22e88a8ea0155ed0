// Package mh10 parses ANSI MH10.8.2 data streams: concatenated data
// identifier/value pairs separated by GS, optionally wrapped in an ISO/IEC
// 15434 envelope, as found in 2D barcodes and RFID tags on shipping labels.
//
// Each field is split off, its leading data identifier (DI) is resolved to
// an Entity from a Catalog, and the value is validated against the entity's
// pattern. One Resolved is delivered per field, left to right.
//
// # Quick Start
//
//	p := mh10.New()
//
//	err := p.Parse("[)>\x1e06\x1dD050203\x1d9N12345\x1e\x04", func(r *mh10.Resolved) {
//	    if r.HasError() {
//	        log.Printf("field at %d: %v", r.Position, r.Err())
//	        return
//	    }
//	    fmt.Printf("%s (%s): %s\n", r.Identifier, r.Title, r.Value)
//	})
//
// # Data Identifiers and Keys
//
// A DI is up to three digits followed by one letter ("D", "9N", "25S"). The
// letter selects a category (A=1 … Z=26) and the digits an item, giving the
// catalog key category*1000 + item. See ResolveKey.
//
// # Envelopes
//
// The input may start with the message header "[)>" RS and end with EOT.
// Inside, each record is a format envelope "06" GS ... RS. A record
// separator without a header, or a header that is never terminated, is
// reported as CodeInvalidEnvelope and the malformed part is skipped. Input
// without any envelope is parsed as a single bare record.
//
// # Catalogs
//
// DefaultCatalog covers common identifiers. Custom catalogs implement
// Catalog, or are loaded from JSON (LoadCatalogJSON) or YAML
// (LoadCatalogYAML):
//
//	c, err := mh10.LoadCatalogYAML(raw, mh10.WithMatchTimeout(50*time.Millisecond))
//	if err != nil {
//	    return err
//	}
//	p := mh10.New(mh10.WithCatalog(c))
//
// Patterns use regexp2 syntax and are compiled on first use. Each evaluation
// runs under a time budget; exceeding it yields the fatal CodeValidationTimeout.
//
// # Errors
//
// Malformed input never aborts Parse. Every problem is recorded as a
// *ParserError on the Resolved for the affected field:
//
//	3001 no data provided (fatal)
//	3002 invalid data identifier
//	3003 invalid envelope format
//	3004 no records provided (fatal)
//	3005 value invalid for data identifier
//	3006 value could not be evaluated
//	3007 validation timed out (fatal)
//	3008 field has no data identifier
//	3100 value does not match the required pattern
//
// A failed validation carries both 3005 and 3100. Fatal errors stop only the
// affected field; use WithHaltOnFatal to stop the whole parse.
//
// # Hooks
//
// Hooks observe parsing without coupling to a logging or metrics system:
//
//	p := mh10.New(
//	    mh10.WithOnRecord(func(pos int, record string) {
//	        metrics.Incr("mh10.record")
//	    }),
//	    mh10.WithOnFieldError(func(r *mh10.Resolved) {
//	        metrics.Incr("mh10.field_error")
//	    }),
//	)
//
// # Thread Safety
//
// Parser is safe for concurrent use. Callbacks run synchronously on the
// calling goroutine.
package mh10
