package core

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// datasetCacheVersion guards cached downloads: bump when the cached
// payload shape changes and old entries must be refetched.
const datasetCacheVersion = 1

// downloadTimeout bounds the dataset fetch. The extract is tens of MB,
// so this is generous but finite.
const downloadTimeout = 5 * time.Minute

// Source CSV column names the cleaner consumes. Every other column in
// the extract (coordinates, precinct, jurisdiction) is ignored at
// parse time, which is what drops them from the cleaned schema.
const (
	colIncidentKey  = "INCIDENT_KEY"
	colOccurDate    = "OCCUR_DATE"
	colOccurTime    = "OCCUR_TIME"
	colBorough      = "BORO"
	colLocationDesc = "LOCATION_DESC"
	colMurderFlag   = "STATISTICAL_MURDER_FLAG"
	colPerpAgeGroup = "PERP_AGE_GROUP"
	colPerpSex      = "PERP_SEX"
	colPerpRace     = "PERP_RACE"
	colVicAgeGroup  = "VIC_AGE_GROUP"
	colVicSex       = "VIC_SEX"
	colVicRace      = "VIC_RACE"
)

// requiredColumns must all be present in the header; the rest are
// optional text carried through when present.
var requiredColumns = []string{colIncidentKey, colOccurDate, colOccurTime, colMurderFlag, colBorough}

// FetchDataset returns the raw CSV bytes for the configured source.
// Local --input files bypass the cache entirely; URL downloads go
// through the cache store unless --refresh is set. The second return
// reports whether the bytes came from the cache.
func FetchDataset(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]byte, bool, error) {
	if cfg.InputFile != "" {
		data, err := os.ReadFile(cfg.InputFile)
		if err != nil {
			return nil, false, fmt.Errorf("read input file: %w", err)
		}
		return data, false, nil
	}

	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetDownloadStore()
	}

	if store != nil && !cfg.Refresh {
		if data, version, _, err := store.Get(cfg.DatasetURL); err == nil && version == datasetCacheVersion && len(data) > 0 {
			return data, true, nil
		}
	}

	data, err := downloadDataset(ctx, cfg.DatasetURL)
	if err != nil {
		return nil, false, err
	}

	if store != nil {
		if err := store.Set(cfg.DatasetURL, data, datasetCacheVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("caching dataset", err)
		}
	}
	return data, false, nil
}

// downloadDataset performs the HTTP fetch. Batch job: any failure is
// terminal, no retry.
func downloadDataset(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download dataset: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dataset body: %w", err)
	}
	return data, nil
}

// ParseRecords decodes CSV bytes into raw records. Column positions
// are resolved once from the header, so column order in the extract
// does not matter. The int return is the number of data rows read.
func ParseRecords(data []byte) ([]schema.RawIncidentRecord, int, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // header decides; trailing columns vary across extract vintages

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, 0, fmt.Errorf("dataset header missing required column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []schema.RawIncidentRecord
	rows := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rows, fmt.Errorf("read CSV row %d: %w", rows+1, err)
		}
		rows++

		records = append(records, schema.RawIncidentRecord{
			IncidentKey:   field(row, colIncidentKey),
			OccurDateText: field(row, colOccurDate),
			OccurTimeText: field(row, colOccurTime),
			Borough:       field(row, colBorough),
			LocationDesc:  field(row, colLocationDesc),
			MurderFlag:    field(row, colMurderFlag),
			PerpAgeGroup:  field(row, colPerpAgeGroup),
			PerpSex:       field(row, colPerpSex),
			PerpRace:      field(row, colPerpRace),
			VicAgeGroup:   field(row, colVicAgeGroup),
			VicSex:        field(row, colVicSex),
			VicRace:       field(row, colVicRace),
		})
	}
	return records, rows, nil
}
