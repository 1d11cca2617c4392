package analysis

import "math"

// MaxEntropy is the entropy of a uniform 26-letter source, log2(26) ≈ 4.7004
// bits per character. It is the upper bound of [Entropy] and the baseline
// that [Redundancy] measures against.
var MaxEntropy = math.Log2(AlphabetSize)

// Entropy returns the Shannon entropy of text's letter distribution in bits
// per character: H = −Σ fᵢ·log2(fᵢ) over the non-zero relative frequencies.
//
// It returns 0.0 for a text with no alphabetic content.
func Entropy(text string) float64 {
	freqs, total := Frequencies(text)
	if total == 0 {
		return 0.0
	}
	entropy := 0.0
	for _, f := range freqs {
		if f > 0 {
			entropy -= f * math.Log2(f)
		}
	}
	return entropy
}

// Redundancy returns [MaxEntropy] minus the observed entropy of text.
//
// The result is ≥ 0 for every input, with equality only for a perfectly
// uniform letter distribution. Highly repetitive text scores close to
// [MaxEntropy].
func Redundancy(text string) float64 {
	return MaxEntropy - Entropy(text)
}

// IndexOfCoincidence returns Σ nᵢ(nᵢ−1) / (N(N−1)) over the letter counts nᵢ
// and the total alphabetic count N of text.
//
// It returns 0.0 when N < 2, since the measure is undefined for fewer than
// two letters.
func IndexOfCoincidence(text string) float64 {
	counts, total := letterCounts(text)
	if total < 2 {
		return 0.0
	}
	sum := 0.0
	for _, n := range counts {
		sum += float64(n) * float64(n-1)
	}
	return sum / (float64(total) * float64(total-1))
}
