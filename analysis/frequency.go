package analysis

// AlphabetSize is the number of symbols in the Latin alphabet the statistics
// are defined over.
const AlphabetSize = 26

// letterCounts returns the per-letter occurrence counts of text (case-folded)
// and the total number of alphabetic bytes.
func letterCounts(text string) (counts [AlphabetSize]int, total int) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			counts[c-'A']++
			total++
		case c >= 'a' && c <= 'z':
			counts[c-'a']++
			total++
		}
	}
	return counts, total
}

// Frequencies returns the relative frequency of each letter in text, indexed
// 0..25 for 'A'..'Z' after case folding, together with the total alphabetic
// count the frequencies were normalised by.
//
// When text contains no alphabetic bytes the vector is all zeros and the
// count is 0.
func Frequencies(text string) ([AlphabetSize]float64, int) {
	var freqs [AlphabetSize]float64
	counts, total := letterCounts(text)
	if total == 0 {
		return freqs, 0
	}
	for i, n := range counts {
		freqs[i] = float64(n) / float64(total)
	}
	return freqs, total
}
