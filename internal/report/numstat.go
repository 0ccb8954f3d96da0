package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/diffreport/internal/domain"
)

// binaryMarker replaces counts for binary files in numstat output
const binaryMarker = "-"

// Summarize parses "git diff --numstat" output.
// Lines with fewer than three tab-separated fields are dropped; binary
// markers and unparseable counts contribute 0. Totals are exact sums of PerFile.
func Summarize(numstat string) domain.ReportDocument {
	doc := domain.ReportDocument{Counted: true}

	for _, line := range strings.Split(strings.TrimSpace(numstat), "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}

		stat := domain.LineStat{
			Added:   parseCount(parts[0]),
			Deleted: parseCount(parts[1]),
			File:    strings.TrimRight(parts[2], "\r"),
		}
		doc.PerFile = append(doc.PerFile, stat)
		doc.TotalAdded += stat.Added
		doc.TotalDeleted += stat.Deleted
	}

	return doc
}

// LineCountSummary formats the totals line shown above the report
func LineCountSummary(doc domain.ReportDocument) string {
	if !doc.Counted {
		return ""
	}
	return fmt.Sprintf("%d files changed, %d lines added, %d lines deleted",
		len(doc.PerFile), doc.TotalAdded, doc.TotalDeleted)
}

func parseCount(field string) int {
	if field == binaryMarker {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
