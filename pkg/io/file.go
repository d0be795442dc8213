package io

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

// Import reads the table at path, choosing the decoder by file extension.
// Workbooks are read from their first sheet.
func Import(path string) (*Table, error) {
	if err := errors.ValidateInputFile(path); err != nil {
		return nil, err
	}
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		t, err = ReadCSV(f)
	case ".json":
		t, err = ReadJSON(f)
	case ".xlsx":
		t, err = ReadXLSX(f, "")
	}
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", filepath.Base(path))
	}
	return t, nil
}

// ExportJSON writes t to path as JSON.
func ExportJSON(t *Table, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteJSON(t, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}
