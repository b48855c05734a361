// Package report renders password analysis results as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/pwmeter/internal/strength"
)

// Render writes a full analysis of res to w.
func Render(w io.Writer, res strength.Result) error {
	if _, err := fmt.Fprintf(w, "Strength: %s (%d/100)\n", res.Level, res.Score); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	metrics := [][]string{
		{"Length", strconv.Itoa(res.Length)},
		{"Entropy", fmt.Sprintf("%d bits", res.EntropyBits)},
		{"Crack time", res.CrackTime.String()},
	}
	for _, line := range formatTable([]string{"Metric", "Value"}, metrics, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	classes := [][]string{
		{"Uppercase", checkMark(res.Classes.Upper)},
		{"Lowercase", checkMark(res.Classes.Lower)},
		{"Numbers", checkMark(res.Classes.Digit)},
		{"Symbols", checkMark(res.Classes.Symbol)},
	}
	for _, line := range formatTable([]string{"Characters", "Present"}, classes, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(res.Warnings) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Warnings"); err != nil {
		return err
	}
	for _, warning := range res.Warnings {
		if _, err := fmt.Fprintf(w, "  ! %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

// Summary returns a one-line score and level for res.
func Summary(res strength.Result) string {
	return fmt.Sprintf("%d/100 %s", res.Score, res.Level)
}

func checkMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
