package wizard

import (
	"strconv"
	"strings"
	"time"
)

// ExportFilename builds the download name: tender-<tenderId>-<date>.csv,
// falling back to "export" when no tender id was entered
func (w *Wizard) ExportFilename(now time.Time) string {
	id := w.BasicDetails.TenderID
	if id == "" {
		id = "export"
	}
	return "tender-" + id + "-" + now.Format("2006-01-02") + ".csv"
}

// ExportCSV serializes the wizard state: a basic-details key/value
// block, a blank separator row, a document-sets header, then one row
// per set. Every field is double-quoted regardless of content, and the
// output tolerates incomplete data by emitting empty fields.
func (w *Wizard) ExportCSV() []byte {
	var b strings.Builder

	writeRow(&b, "Field", "Value")
	writeRow(&b, "Participating Company", w.BasicDetails.ParticipatingCompany)
	writeRow(&b, "Tender Name", w.BasicDetails.TenderName)
	writeRow(&b, "Tender ID", w.BasicDetails.TenderID)
	writeRow(&b, "Client Name", w.BasicDetails.ClientName)
	writeRow(&b, "Delivery Location", w.BasicDetails.DeliveryLocation)
	writeRow(&b, "Publish Date", w.BasicDetails.PublishDate)
	writeRow(&b, "End Date", w.BasicDetails.EndDate)
	b.WriteString("\n")

	writeRow(&b, "Set Name", "Company", "Documents", "Tags")
	for _, set := range w.DocumentSets {
		writeRow(&b,
			set.Name,
			set.Company,
			strconv.Itoa(len(set.Documents)),
			strings.Join(set.Tags, ", "))
	}

	return []byte(b.String())
}

// writeRow emits one CSV record with every field quoted. encoding/csv
// quotes only when required, and the export format quotes always, so
// the quoting is done here.
func writeRow(b *strings.Builder, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"`)
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteString(`"`)
	}
	b.WriteString("\n")
}
