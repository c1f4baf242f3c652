// SPDX-License-Identifier: MIT
// Package dataset: embedding exporter.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteEmbedding serializes the embedding to CSV at path: header row
// "id,x_0,...,x_{d-1}", then one row per node in ascending id order,
// values rendered with strconv shortest round-trip formatting and
// otherwise untouched.
func WriteEmbedding(path string, emb *mat.Dense) error {
	n, d := emb.Dims()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, d+1)
	header[0] = "id"
	for j := 0; j < d; j++ {
		header[j+1] = "x_" + strconv.Itoa(j)
	}
	if err = w.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	record := make([]string, d+1)
	for i := 0; i < n; i++ {
		record[0] = strconv.Itoa(i)
		for j := 0; j < d; j++ {
			record[j+1] = strconv.FormatFloat(emb.At(i, j), 'g', -1, 64)
		}
		if err = w.Write(record); err != nil {
			return fmt.Errorf("export: write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("export: flush %s: %w", path, err)
	}

	return f.Close()
}
