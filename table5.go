package dtpsupport

// Width5 is the layout table for five-cell slots (五字取り).
//
// Six pairs cover every combination that fits five cells with at least
// one filler between the tokens. Two more ship for parity with the legacy
// tool: the 2/3 pattern renders six cells, and the 3/3 pattern keeps only
// the first surname character. Downstream plates were made against both,
// so they stay. Use [RuleTable.Without] to drop 3/3 when a job must keep
// full surnames. Every other pair concatenates.
var Width5 = RuleTable{
	Width: 5,
	rules: map[lengthKey]pattern{
		{1, 1}: {sur(), fill(3), giv()},
		{2, 1}: {sur(), fill(2), giv()},
		{3, 1}: {sur(), fill(1), giv()},
		{1, 2}: {sur(), fill(2), giv()},
		{2, 2}: {sur(), fill(1), giv()},
		{1, 3}: {sur(), fill(1), giv()},
		{2, 3}: {sur(), fill(1), giv()},      // six cells, as the legacy tool printed it
		{3, 3}: {surRune(0), fill(1), giv()}, // drops surname[1:]
	},
}
