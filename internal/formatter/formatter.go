// package formatter converts catalog data to and from exchange formats (CSV)
// and renders CLI reports.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/parser"
)

// CSVRow is one parsed line of a catalog CSV, tagged with its line number so
// import errors can point at the offending row.
type CSVRow struct {
	Line  int
	Video models.Video
}

// ParseCatalogCSV reads a catalog CSV with header song,artist,youtube_url.
//
// Rows that cannot be parsed land in the returned error list; parsing never
// aborts on a bad row. Thumbnails are derived from the video URL.
func ParseCatalogCSV(r io.Reader) ([]CSVRow, []string) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, []string{fmt.Sprintf("failed to read CSV header: %v", err)}
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"song", "artist", "youtube_url"} {
		if _, ok := columns[required]; !ok {
			return nil, []string{fmt.Sprintf("missing required column %q", required)}
		}
	}

	var rows []CSVRow
	var errors []string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errors = append(errors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}

		field := func(name string) string {
			i := columns[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		video := models.Video{
			Song:       field("song"),
			Artist:     field("artist"),
			YouTubeURL: field("youtube_url"),
		}
		if video.Song == "" || video.YouTubeURL == "" {
			errors = append(errors, fmt.Sprintf("Row %d: Missing required fields", line))
			continue
		}
		video.Thumbnail = parser.ThumbnailURL(video.YouTubeURL)

		rows = append(rows, CSVRow{Line: line, Video: video})
	}

	return rows, errors
}

// ExportToCSV converts catalog records to CSV in the same column layout the
// bulk importer accepts, so exports round-trip.
func ExportToCSV(videos []models.Video) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"song", "artist", "youtube_url"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, video := range videos {
		if err := writer.Write([]string{video.Song, video.Artist, video.YouTubeURL}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
