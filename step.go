package voikko

// drive runs one fetch-classify-advance protocol over text and collects
// the results. Each step sees the unconsumed tail and reports a
// classification plus the unit's length in characters; the unit's text
// is sliced after converting that length to bytes. A unit classified as
// the sentinel ends the scan; keepSentinel controls whether that final
// unit still belongs to the result.
func drive[T any, C comparable](
	text string,
	sentinel C,
	keepSentinel bool,
	step func(rest string) (C, int),
	build func(slice string, class C) T,
) []T {
	var out []T
	rest := text
	for len(rest) > 0 {
		class, chars := step(rest)
		if class == sentinel && !keepSentinel {
			break
		}
		n := byteLen(rest, chars)
		out = append(out, build(rest[:n], class))
		if class == sentinel {
			break
		}
		if n == 0 {
			// A zero-length unit would stall the cursor.
			break
		}
		rest = rest[n:]
	}
	return out
}
