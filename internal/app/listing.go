package app

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/specialistvlad/algoprovider/internal/host"
)

var (
	printer = message.NewPrinter(language.English)
	caser   = cases.Title(language.English)
)

func writeListings(w io.Writer, format string, listings []host.Listing) error {
	if format == "json" {
		return writeJSON(w, listings)
	}
	return writeTable(w, listings)
}

func writeJSON(w io.Writer, listings []host.Listing) error {
	if listings == nil {
		listings = []host.Listing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listings)
}

func writeTable(w io.Writer, listings []host.Listing) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Group", "Channel", "Editable")
	for _, l := range listings {
		if err := table.Append(l.QualifiedID, l.Name, l.Group, l.Channel, strconv.FormatBool(l.Editable)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, summary(listings))
	return err
}

// summary reads like "96 algorithms (Builtin: 93, Script: 3)".
func summary(listings []host.Listing) string {
	counts := make(map[string]int)
	for _, l := range listings {
		if l.Channel != "" {
			counts[l.Channel]++
		}
	}
	channels := make([]string, 0, len(counts))
	for ch := range counts {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	s := printer.Sprintf("%d algorithms", len(listings))
	if len(channels) == 0 {
		return s
	}
	s += " ("
	for i, ch := range channels {
		if i > 0 {
			s += ", "
		}
		s += printer.Sprintf("%s: %d", caser.String(ch), counts[ch])
	}
	return s + ")"
}
