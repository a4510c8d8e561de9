package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wiiuid/internal/config"
	"wiiuid/internal/titleid"
	"wiiuid/internal/uidsys"
)

// Render writes records to out in the given format. A nil lookup means no
// name database was supplied.
func Render(out io.Writer, format string, records []uidsys.TitleRecord, pretty bool, lookup titleid.Lookup) error {
	switch format {
	case config.FormatText:
		return renderText(out, records, pretty, lookup)
	case config.FormatTable:
		_, err := fmt.Fprintln(out, renderTable(records, pretty, lookup))
		return err
	case config.FormatJSON:
		return renderJSON(out, records, pretty, lookup)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderText(out io.Writer, records []uidsys.TitleRecord, pretty bool, lookup titleid.Lookup) error {
	for _, rec := range records {
		if _, err := fmt.Fprintln(out, titleid.FormatLine(rec, pretty, lookup)); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(out io.Writer, records []uidsys.TitleRecord, pretty bool, lookup titleid.Lookup) error {
	titles := make([]titleid.Title, 0, len(records))
	for _, rec := range records {
		t := titleid.Describe(rec, lookup)
		if !pretty {
			t.CategoryLabel = ""
		}
		titles = append(titles, t)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(titles)
}

func renderTable(records []uidsys.TitleRecord, pretty bool, lookup titleid.Lookup) string {
	headers := table.Row{"#"}
	if pretty {
		headers = append(headers, "Type")
	}
	headers = append(headers, "Category", "Code", "ID")
	if lookup != nil {
		headers = append(headers, "Name")
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(headers)

	for _, rec := range records {
		t := titleid.Describe(rec, lookup)
		row := table.Row{strconv.Itoa(t.InstallIndex)}
		if pretty {
			row = append(row, t.CategoryLabel)
		}
		row = append(row, t.Category, t.CodeHex, t.Code)
		if lookup != nil {
			row = append(row, t.Name)
		}
		tw.AppendRow(row)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
