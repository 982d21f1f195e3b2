// Command vecinfo reports how vector growth policies behave under a run of
// appends.
//
// Usage:
//
//	vecinfo [flags] [policy-name ...]
//
// Without arguments it prints a summary for all known policies.
//
// Examples:
//
//	vecinfo double
//	vecinfo -n 100000 double triple
//	vecinfo -v -n 20 linear
//	vecinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
)

type policyEntry struct {
	name        string
	factor      int
	minCapacity int
}

var registry = []policyEntry{
	{"double", 2, 1},
	{"triple", 3, 1},
	{"linear", 1, 1},
	{"double-min16", 2, 16},
	{"quad-min64", 4, 64},
}

func main() {
	n := flag.Int("n", 1000, "number of appends per policy")
	reserve := flag.Int("reserve", 0, "capacity reserved before appending")
	list := flag.Bool("list", false, "list available policy names")
	verbose := flag.Bool("v", false, "log every reallocation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags] [policy-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints reallocation statistics of vector growth policies.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo double triple\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -n 100000 -reserve 4096\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to create logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching policies\n")
		os.Exit(1)
	}

	results := make([]growthReport, 0, len(entries))
	for _, e := range entries {
		results = append(results, simulate(e, *n, *reserve, logger.With(zap.String("policy", e.name))))
	}
	printReports(results)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []policyEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]policyEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []policyEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown policy %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printReports(reports []growthReport) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Policy\tAppends\tCapacity\tReallocs\tlog2 Bound\tRelocated\tSlack [%%]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t--------\t--------\t----------\t---------\t---------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, r := range reports {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			r.name,
			r.appends,
			r.capacity,
			r.reallocs,
			r.bound,
			r.relocated,
			r.slackPercent(),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
