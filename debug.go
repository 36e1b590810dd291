package ioc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
)

type CacheInfo struct {
	Entries []CacheEntryInfo
}

type CacheEntryInfo struct {
	Provider string
	Mode     string
	Value    string
	Pending  bool
}

func (i CacheInfo) Len() int {
	return len(i.Entries)
}

// GlobalCacheInfo snapshots the global instance cache, completed
// entries in completion order, pending ones first.
func GlobalCacheInfo() CacheInfo {
	snapshot := engine.CacheSnapshot()

	entries := make([]CacheEntryInfo, 0, len(snapshot))
	for _, item := range snapshot {
		info := CacheEntryInfo{
			Provider: item.Provider.DisplayName(),
			Mode:     item.Provider.Mode().String(),
		}
		if item.Settled {
			info.Value = fmt.Sprintf("%v", item.Value)
		} else {
			info.Pending = true
		}
		entries = append(entries, info)
	}

	return CacheInfo{Entries: entries}
}

func PrintGlobalCache() {
	FprintGlobalCache(os.Stdout)
}

func FprintGlobalCache(w io.Writer) {
	info := GlobalCacheInfo()

	if len(info.Entries) == 0 {
		_, _ = fmt.Fprintln(w, "(empty cache)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Provider", "Mode", "Status", "Value"})

	for _, e := range info.Entries {
		status := "ready"
		value := truncateValue(e.Value)
		if e.Pending {
			status = "pending"
			value = ""
		}
		t.AppendRow(table.Row{e.Provider, e.Mode, status, value})
	}

	t.Render()
}

func SprintGlobalCache() string {
	var sb strings.Builder
	FprintGlobalCache(&sb)
	return sb.String()
}

func truncateValue(s string) string {
	const max = 48
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
