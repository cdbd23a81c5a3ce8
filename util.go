package nargs

import "sort"

func prependSpace(s string) string {
	if s != "" {
		return " " + s
	}
	return ""
}

func sortedRunes(set map[rune]struct{}) []rune {
	if len(set) == 0 {
		return nil
	}
	r := make([]rune, 0, len(set))
	for c := range set {
		r = append(r, c)
	}
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return r
}
