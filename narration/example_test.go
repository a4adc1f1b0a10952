package narration_test

import (
	"fmt"
	"strings"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/narration"
)

// ExampleLoad overrides the stock listing with a YAML document that
// shifts every line by 100.
func ExampleLoad() {
	var doc strings.Builder
	doc.WriteString("points:\n")
	base := narration.Default()
	for _, p := range narration.Points() {
		fmt.Fprintf(&doc, "  %s: [%d]\n", p, base.Lines(p)[0]+100)
	}
	doc.WriteString("variables:\n  fresh: 106\n")

	tbl, err := narration.Load([]byte(doc.String()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(narration.SetRotten, tbl.Lines(narration.SetRotten))
	line, _ := tbl.VariableLine("fresh")
	fmt.Println("fresh", line)
	// Output:
	// set-rotten [136]
	// fresh 106
}
