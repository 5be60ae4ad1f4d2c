package service

import (
	"math"
	"strings"
)

var wordOnes = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var wordTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// AmountInWords renders a rupee amount in Indian-system words, e.g.
// "Rupees Fifteen Thousand Only" or "Rupees One Lakh Twenty Thousand and
// Fifty Paise Only". Best-effort formatting, not a grammar authority.
func AmountInWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}
	total := int64(math.Round(amount * 100))
	rupees := total / 100
	paise := total % 100

	var b strings.Builder
	b.WriteString("Rupees ")
	b.WriteString(numberWords(rupees))
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(numberWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

func numberWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	parts := []string{}
	appendPart := func(v int64, unit string) {
		if v > 0 {
			word := numberWords(v)
			if unit != "" {
				word += " " + unit
			}
			parts = append(parts, word)
		}
	}
	appendPart(n/10000000, "Crore")
	n %= 10000000
	appendPart(n/100000, "Lakh")
	n %= 100000
	appendPart(n/1000, "Thousand")
	n %= 1000
	appendPart(n/100, "Hundred")
	n %= 100
	if n > 0 {
		parts = append(parts, twoDigitWords(n))
	}
	return strings.Join(parts, " ")
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return wordOnes[n]
	}
	word := wordTens[n/10]
	if n%10 > 0 {
		word += " " + wordOnes[n%10]
	}
	return word
}
