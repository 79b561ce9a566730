package experiment

import (
	"bufio"
	"encoding/csv"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const csvColumns = 4

func formatSample(sample Sample) []string {
	return []string{
		strconv.FormatFloat(sample.OALoad, 'g', -1, 64),
		strconv.FormatUint(uint64(sample.OACollisions), 10),
		strconv.FormatFloat(sample.SCLoad, 'g', -1, 64),
		strconv.FormatUint(uint64(sample.SCCollisions), 10),
	}
}

func MapSample(record []string) (Sample, error) {
	if len(record) != csvColumns {
		return Sample{}, errors.Errorf("MapSample: want %d columns, got %d", csvColumns, len(record))
	}
	oaLoad, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return Sample{}, errors.Wrap(err, "MapSample.OALoad")
	}
	oaCollisions, err := strconv.ParseUint(record[1], 10, 32)
	if err != nil {
		return Sample{}, errors.Wrap(err, "MapSample.OACollisions")
	}
	scLoad, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return Sample{}, errors.Wrap(err, "MapSample.SCLoad")
	}
	scCollisions, err := strconv.ParseUint(record[3], 10, 32)
	if err != nil {
		return Sample{}, errors.Wrap(err, "MapSample.SCCollisions")
	}
	return Sample{
		OALoad:       oaLoad,
		OACollisions: uint32(oaCollisions),
		SCLoad:       scLoad,
		SCCollisions: uint32(scCollisions),
	}, nil
}

// WriteCSV writes one headerless row per sample to <dir>/<name>.csv.
func WriteCSV(fs afero.Fs, dir string, result *Result) (string, error) {
	path := filepath.Join(dir, result.Name()+".csv")
	file, err := fs.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "WriteCSV.Create")
	}
	defer func(file afero.File) {
		_ = file.Close()
	}(file)

	writer := bufio.NewWriter(file)
	csvWriter := csv.NewWriter(writer)
	for _, sample := range result.Samples {
		if err := csvWriter.Write(formatSample(sample)); err != nil {
			return "", errors.Wrap(err, "WriteCSV.Write")
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return "", errors.Wrap(err, "WriteCSV.Flush")
	}
	if err := writer.Flush(); err != nil {
		return "", errors.Wrap(err, "WriteCSV.Flush")
	}
	return path, file.Close()
}

func ReadCSV(fs afero.Fs, path string) ([]Sample, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadCSV.Open")
	}
	defer func(file afero.File) {
		_ = file.Close()
	}(file)

	csvReader := csv.NewReader(bufio.NewReader(file))
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "ReadCSV.ReadAll")
	}

	samples := make([]Sample, 0, len(records))
	for _, record := range records {
		sample, err := MapSample(record)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
