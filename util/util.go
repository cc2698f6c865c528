package util

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}

// Digits keeps every decimal digit of s, in order, as its numeric value. Any
// Unicode decimal digit counts, not just ASCII.
func Digits(s string) []int {
	var res []int
	for _, r := range s {
		if unicode.Is(unicode.Nd, r) {
			res = append(res, digitValue(r))
		}
	}
	return res
}

// Nd digits come in runs of ten starting at zero, some runs back to back.
func digitValue(r rune) int {
	zero := r
	for unicode.Is(unicode.Nd, zero-1) {
		zero--
	}
	return int(r-zero) % 10
}

func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range ImageExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
