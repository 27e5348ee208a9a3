package journal

import (
	"fmt"
	"io"

	"github.com/dargueta/inodefs"
	"github.com/gocarina/gocsv"
)

type csvRecord struct {
	Sequence    int    `csv:"seq"`
	Description string `csv:"description"`
	Committed   bool   `csv:"committed"`
}

// WriteCSV writes the journal to `w` as CSV with a header row. Sequence numbers
// begin at 1, matching [Journal.Print].
func (journal *Journal) WriteCSV(w io.Writer) error {
	records := make([]*csvRecord, len(journal.entries))
	for i, entry := range journal.entries {
		records[i] = &csvRecord{
			Sequence:    i + 1,
			Description: entry.Description,
			Committed:   entry.Committed,
		}
	}

	if err := gocsv.Marshal(&records, w); err != nil {
		return inodefs.ErrIOFailed.Wrap(err)
	}
	return nil
}

// ReadCSV rebuilds a journal from the output of [Journal.WriteCSV]. Rows must
// be in sequence order.
func ReadCSV(r io.Reader) (*Journal, error) {
	var records []*csvRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, inodefs.ErrInvalidArgument.Wrap(err)
	}

	journal := New()
	for i, record := range records {
		if record.Sequence != i+1 {
			return nil, inodefs.ErrInvalidArgument.WithMessage(
				fmt.Sprintf(
					"journal row %d has sequence number %d, expected %d",
					i+1,
					record.Sequence,
					i+1,
				),
			)
		}
		journal.entries = append(
			journal.entries,
			Entry{Description: record.Description, Committed: record.Committed},
		)
	}
	return journal, nil
}
