// Package dtpsupport lays out Japanese personal names in fixed-width
// character cells for DTP work.
//
// Print shops reserve name slots measured in cells: five-cell (五字取り)
// and seven-cell (七字取り) slots are the common sizes for certificates,
// programs, and seating charts. The package splits each full name into
// surname and given name, then distributes the characters and full-width
// filler (U+3000) across the slot the way a typesetter would. One cell is
// one character; widths and positions never depend on font metrics.
//
// The central entry points are [Tokenize], [FormatFixedWidth], [Pad], and
// [Batch.Run].
//
// # Tokenizing
//
// Names arrive as single strings with no separator, so surnames are
// recognized against a caller-supplied [Dictionary] by prefix:
//
//	tok, err := dtpsupport.Tokenize("佐藤一郎", dict, dtpsupport.LongestMatch, dtpsupport.SkipUnmatched)
//
// [MatchPolicy] picks between [LongestMatch] and [FirstMatch];
// [FallbackPolicy] decides whether an unmatched name fails with
// [ErrNoSurnameMatch] or is split at its midpoint ([AutoSplit]).
//
// # Fixed-cell layout
//
// [Width5] and [Width7] map (surname length, given-name length) pairs to
// exact layout patterns:
//
//	out, ok := dtpsupport.FormatFixedWidth("佐藤", "一", 5) // 佐藤　　一
//
// Pairs outside a table concatenate the tokens untouched. The tables
// reproduce the legacy tool's output byte for byte, including its odd
// corners; see [Width5] for the 2/3 and 3/3 cases and [RuleTable.Without]
// for opting out of one.
//
// # Generic padding
//
// Other slot sizes use [Pad], which centers, left-, or right-aligns the
// joined name inside the slot with filler and reports lossy cuts:
//
//	out, truncated := dtpsupport.Pad("佐藤", "一郎", 8, dtpsupport.AlignCenter, "")
//
// [PadSpread] letter-spaces the whole name first (佐　藤　一　郎), the
// treatment plate makers use when the slot is much wider than the name.
//
// # Batches
//
// [Batch] runs whole name lists with per-row failure isolation: bad rows
// become [Diagnostic] values, good rows come back as [FormattedRow] in
// input order, and an optional [ProgressFunc] observes the run.
//
//	batch := dtpsupport.Batch{Dictionary: dict, Width: 5}
//	rows, diags := batch.Run(names)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoSurnameMatch] — no dictionary surname prefixes the name
//   - [ErrNarrowFiller] — configured filler is not a full-width glyph
//   - [ErrUnknownAlignment] — unparseable alignment name
//   - [ErrUnknownPolicy] — unparseable match or fallback policy name
package dtpsupport
