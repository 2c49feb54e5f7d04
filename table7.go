package dtpsupport

// Width7 is the layout table for seven-cell slots (七字取り).
//
// Pairs exist for given names of one to five cells. Short names spread
// their characters with interleaved filler (苗　苗　名　名); the rest put
// the whole remainder between the tokens. Given names of six cells or
// more concatenate.
var Width7 = RuleTable{
	Width: 7,
	rules: map[lengthKey]pattern{
		// given name: 1 cell
		{1, 1}: {sur(), fill(5), giv()},
		{2, 1}: {surRune(0), fill(1), surRune(1), fill(3), giv()},
		{3, 1}: {sur(), fill(3), giv()},
		{4, 1}: {sur(), fill(2), giv()},
		{5, 1}: {sur(), fill(1), giv()},
		// given name: 2 cells
		{1, 2}: {sur(), fill(3), givRune(0), fill(1), givRune(1)},
		{2, 2}: {surRune(0), fill(1), surRune(1), fill(1), givRune(0), fill(1), givRune(1)},
		{3, 2}: {sur(), fill(1), givRune(0), fill(1), givRune(1)},
		{4, 2}: {sur(), fill(1), giv()},
		// given name: 3 cells
		{1, 3}: {sur(), fill(3), giv()},
		{2, 3}: {surRune(0), fill(1), surRune(1), fill(1), giv()},
		{3, 3}: {sur(), fill(1), giv()},
		// given name: 4 cells
		{1, 4}: {sur(), fill(2), giv()},
		{2, 4}: {sur(), fill(1), giv()},
		// given name: 5 cells
		{1, 5}: {sur(), fill(1), giv()},
	},
}
