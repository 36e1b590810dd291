package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type result struct {
	Name       string  `json:"name"`
	Framework  string  `json:"framework"`
	Category   string  `json:"category"`
	NsPerOp    float64 `json:"ns_per_op"`
	BytesPerOp int64   `json:"bytes_per_op"`
	AllocsOp   int64   `json:"allocs_per_op"`
}

var categoryOrder = []string{
	"Provide_Simple", "Provide_Chain",
	"Resolve_Singleton", "Resolve_Chain", "Resolve_Transient",
	"Concurrent_Singleton", "Concurrent_Chain", "Concurrent_Transient",
	"Lifecycle_10", "Lifecycle_50",
}

var categoryTitles = map[string]string{
	"Provide_Simple":       "Provider declaration (single)",
	"Provide_Chain":        "Provider declaration (dependency chain)",
	"Resolve_Singleton":    "Resolution (cached singleton)",
	"Resolve_Chain":        "Resolution (cached dependency chain)",
	"Resolve_Transient":    "Resolution (fresh instance per call)",
	"Concurrent_Singleton": "Concurrent resolution (cached singleton)",
	"Concurrent_Chain":     "Concurrent resolution (cached chain)",
	"Concurrent_Transient": "Concurrent resolution (fresh instances)",
	"Lifecycle_10":         "Construct and drain (10 services)",
	"Lifecycle_50":         "Construct and drain (50 services)",
}

func main() {
	benchDir := ".."
	if len(os.Args) > 1 && os.Args[1] != "--json" {
		benchDir = os.Args[1]
	}

	fmt.Println("running benchmarks, this takes a minute...")

	cmd := exec.Command("go", "test", "-bench=.", "-benchmem", "-count=3", "-benchtime=100ms")
	cmd.Dir = benchDir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "benchmark failed: %s\n", string(exitErr.Stderr))
		} else {
			fmt.Fprintf(os.Stderr, "benchmark failed: %v\n", err)
		}
		os.Exit(1)
	}

	results := parse(output)
	for _, cat := range categoryOrder {
		printCategory(cat, results)
	}

	if len(os.Args) > 1 && os.Args[1] == "--json" {
		exportJSON(results)
	}
}

var benchLine = regexp.MustCompile(`^Benchmark(\w+)-\d+\s+(\d+)\s+([\d.]+) ns/op\s+(\d+) B/op\s+(\d+) allocs/op`)

// parse averages the repeated -count runs per benchmark name.
func parse(output []byte) []result {
	runs := make(map[string][]result)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		m := benchLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		name := m[1]
		ns, _ := strconv.ParseFloat(m[3], 64)
		bytesOp, _ := strconv.ParseInt(m[4], 10, 64)
		allocs, _ := strconv.ParseInt(m[5], 10, 64)

		parts := strings.Split(name, "_")
		if len(parts) < 3 {
			continue
		}
		framework := parts[len(parts)-1]
		category := strings.Join(parts[:len(parts)-1], "_")

		runs[name] = append(runs[name], result{
			Name:       name,
			Framework:  framework,
			Category:   category,
			NsPerOp:    ns,
			BytesPerOp: bytesOp,
			AllocsOp:   allocs,
		})
	}

	var averaged []result
	for _, rs := range runs {
		avg := rs[0]
		var ns float64
		var bytesOp, allocs int64
		for _, r := range rs {
			ns += r.NsPerOp
			bytesOp += r.BytesPerOp
			allocs += r.AllocsOp
		}
		n := float64(len(rs))
		avg.NsPerOp = ns / n
		avg.BytesPerOp = int64(float64(bytesOp) / n)
		avg.AllocsOp = int64(float64(allocs) / n)
		averaged = append(averaged, avg)
	}

	sort.Slice(averaged, func(i, j int) bool { return averaged[i].Name < averaged[j].Name })
	return averaged
}

func printCategory(category string, results []result) {
	var rows []result
	for _, r := range results {
		if r.Category == category {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].NsPerOp < rows[j].NsPerOp })
	fastest := rows[0].NsPerOp

	title := categoryTitles[category]
	if title == "" {
		title = category
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Framework", "ns/op", "B/op", "allocs/op", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for i, r := range rows {
		note := "fastest"
		if i > 0 && fastest > 0 {
			note = fmt.Sprintf("%.1fx slower", r.NsPerOp/fastest)
		}
		t.AppendRow(table.Row{
			r.Framework,
			formatNs(r.NsPerOp),
			strconv.FormatInt(r.BytesPerOp, 10),
			strconv.FormatInt(r.AllocsOp, 10),
			note,
		})
	}

	t.Render()
	fmt.Println()
}

func formatNs(ns float64) string {
	switch {
	case ns >= 1_000_000:
		return fmt.Sprintf("%.2f ms", ns/1_000_000)
	case ns >= 1_000:
		return fmt.Sprintf("%.2f µs", ns/1_000)
	default:
		return fmt.Sprintf("%.0f ns", ns)
	}
}

func exportJSON(results []result) {
	payload := struct {
		Benchmarks []result `json:"benchmarks"`
	}{Benchmarks: results}

	data, _ := json.MarshalIndent(payload, "", "  ")
	_ = os.WriteFile("benchmark_results.json", data, 0644)
	fmt.Println("results exported to benchmark_results.json")
}
