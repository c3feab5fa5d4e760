package checklist

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Classify buckets entries by percent. Entries at 0 belong to neither list.
func Classify(entries []Entry) Summary {
	sum := Summary{
		Ongoing:   []Entry{},
		Completed: []Entry{},
	}
	for _, e := range entries {
		switch {
		case e.Percent >= 100:
			sum.Completed = append(sum.Completed, e)
		case e.Percent > 0:
			sum.Ongoing = append(sum.Ongoing, e)
		}
	}

	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(sum.Ongoing, func(i, j int) bool {
		a, b := sum.Ongoing[i], sum.Ongoing[j]
		if a.Percent != b.Percent {
			return a.Percent > b.Percent
		}
		return col.CompareString(a.Title, b.Title) < 0
	})
	sort.SliceStable(sum.Completed, func(i, j int) bool {
		return col.CompareString(sum.Completed[i].Title, sum.Completed[j].Title) < 0
	})

	return sum
}
