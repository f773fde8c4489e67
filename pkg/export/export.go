// Package export serialises study results as flat files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/genrel/core/model"
)

// WriteJSON writes the run, metadata included, to w in JSON format.
func WriteJSON(w io.Writer, run model.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// WriteCSV writes the result table to w with a header row of column names.
// Row order is preserved.
func WriteCSV(w io.Writer, table model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.Columns); err != nil {
		return err
	}
	for _, c := range table {
		if err := cw.Write(Record(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(model.Columns)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	table := make(model.Table, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		c, err := parseRecord(rec)
		if err != nil {
			return nil, err
		}
		table = append(table, c)
	}
	return table, nil
}

// Record formats one case in column order.
func Record(c model.Case) []string {
	return []string{
		c.SizingCase,
		formatFloat(c.DemandKW),
		formatFloat(c.UnitCapacityKW),
		strconv.Itoa(c.UnitsRequired),
		strconv.Itoa(c.UnitsInstalled),
		formatFloat(c.UnitReliabilityPct),
		formatFloat(c.ScheduledOutageHrs),
		formatFloat(c.SystemCapacityKW),
		strconv.Itoa(c.RedundantUnits),
		formatFloat(c.SystemAvailability),
		c.TierLevel.String(),
	}
}

func parseRecord(rec []string) (model.Case, error) {
	var (
		c    model.Case
		err  error
		errs []error
	)
	float := func(s string) float64 {
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			errs = append(errs, perr)
		}
		return v
	}
	integer := func(s string) int {
		v, perr := strconv.Atoi(s)
		if perr != nil {
			errs = append(errs, perr)
		}
		return v
	}
	c.SizingCase = rec[0]
	c.DemandKW = float(rec[1])
	c.UnitCapacityKW = float(rec[2])
	c.UnitsRequired = integer(rec[3])
	c.UnitsInstalled = integer(rec[4])
	c.UnitReliabilityPct = float(rec[5])
	c.ScheduledOutageHrs = float(rec[6])
	c.SystemCapacityKW = float(rec[7])
	c.RedundantUnits = integer(rec[8])
	c.SystemAvailability = float(rec[9])
	if len(errs) > 0 {
		return c, errs[0]
	}
	if c.TierLevel, err = model.ParseTierLevel(rec[10]); err != nil {
		return c, err
	}
	return c, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
