package database

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

type sensorRecord struct {
	provinceCode string
	provinceName string
	deviceCode   string
	deviceName   string
	sensorCode   string
	sensorName   string
	sensorType   string
	unit         string
	min          *float64
	max          *float64
}

// Seed provisions provinces, devices and sensors from a semicolon separated
// file with a header row. Rows that already exist are left untouched.
//
//	province_code;province_name;device_code;device_name;sensor_code;sensor_name;sensor_type;unit;min_threshold;max_threshold
func (c *Catalog) Seed(ctx context.Context, reader io.Reader) error {
	r := csv.NewReader(reader)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv data from file: %w", err)
	}

	records, err := getRecordsFromRows(rows)
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Msgf("loaded %d sensors from file", len(records))

	provinces := map[string]uint{}
	devices := map[string]uint{}

	for _, rec := range records {
		var provinceID *uint

		if rec.provinceCode != "" {
			id, ok := provinces[rec.provinceCode]
			if !ok {
				p := Province{Code: rec.provinceCode, Name: rec.provinceName}
				err := c.db.WithContext(ctx).Where(Province{Code: rec.provinceCode}).FirstOrCreate(&p).Error
				if err != nil {
					return fmt.Errorf("could not seed province %s: %w", rec.provinceCode, err)
				}
				id = p.ID
				provinces[rec.provinceCode] = id
			}
			provinceID = &id
		}

		deviceID, ok := devices[rec.deviceCode]
		if !ok {
			d := Device{
				Code:       rec.deviceCode,
				Name:       rec.deviceName,
				Status:     string(types.DeviceStatusOnline),
				ProvinceID: provinceID,
			}
			err := c.db.WithContext(ctx).Where(Device{Code: rec.deviceCode}).FirstOrCreate(&d).Error
			if err != nil {
				return fmt.Errorf("could not seed device %s: %w", rec.deviceCode, err)
			}
			deviceID = d.ID
			devices[rec.deviceCode] = deviceID
		}

		s := Sensor{
			DeviceID:     deviceID,
			Code:         rec.sensorCode,
			Name:         rec.sensorName,
			Type:         rec.sensorType,
			Unit:         rec.unit,
			MinThreshold: rec.min,
			MaxThreshold: rec.max,
		}
		err := c.db.WithContext(ctx).Where(Sensor{DeviceID: deviceID, Code: rec.sensorCode}).FirstOrCreate(&s).Error
		if err != nil {
			return fmt.Errorf("could not seed sensor %s on device %s: %w", rec.sensorCode, rec.deviceCode, err)
		}
	}

	return nil
}

func getRecordsFromRows(rows [][]string) ([]sensorRecord, error) {
	var records []sensorRecord
	seen := map[string]bool{}

	for idx, row := range rows {
		if idx == 0 {
			// skip the header
			continue
		}

		line := idx + 1

		if len(row) != 10 {
			return nil, fmt.Errorf("expected 10 columns on line %d, found %d", line, len(row))
		}

		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}

		rec := sensorRecord{
			provinceCode: row[0],
			provinceName: row[1],
			deviceCode:   row[2],
			deviceName:   row[3],
			sensorCode:   row[4],
			sensorName:   row[5],
			sensorType:   row[6],
			unit:         row[7],
		}

		if rec.deviceCode == "" || rec.sensorCode == "" {
			return nil, fmt.Errorf("missing device or sensor code on line %d", line)
		}

		if rec.sensorType == "" {
			return nil, fmt.Errorf("missing sensor type on line %d", line)
		}

		key := rec.deviceCode + "/" + rec.sensorCode
		if seen[key] {
			return nil, fmt.Errorf("duplicate sensor %s found on line %d", key, line)
		}
		seen[key] = true

		var err error

		if rec.min, err = parseThreshold(row[8]); err != nil {
			return nil, fmt.Errorf("failed to parse min threshold on line %d: %w", line, err)
		}

		if rec.max, err = parseThreshold(row[9]); err != nil {
			return nil, fmt.Errorf("failed to parse max threshold on line %d: %w", line, err)
		}

		if rec.min != nil && rec.max != nil && *rec.min > *rec.max {
			return nil, fmt.Errorf("min threshold is greater than max threshold on line %d", line)
		}

		records = append(records, rec)
	}

	return records, nil
}

func parseThreshold(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return &f, nil
}
