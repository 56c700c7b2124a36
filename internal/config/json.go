// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"
)

// validator is implemented by configuration values that carry invariants
// beyond what encoding/json can express.
type validator interface {
	Validate() error
}

// ReadJSONFile opens the file at path and decodes its whole content as a
// single JSON document into a value of type T.
//
// An open or read failure is reported as *[ReadFileError]; malformed JSON, a
// document whose shape does not match T, trailing data after the document or
// a failed Validate call are reported as *[JSONParseError]. Both carry path.
// On error the zero value of T is returned. Unknown keys are ignored.
//
// Every call re-reads the file; nothing is cached.
func ReadJSONFile[T any](path string) (T, error) {
	var zero T

	file, err := os.Open(path)
	if err != nil {
		return zero, &ReadFileError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return zero, &ReadFileError{Path: path, Err: err}
	}
	if info.IsDir() {
		return zero, &ReadFileError{Path: path, Err: errPathIsDirectory}
	}

	var value T
	decoder := json.NewDecoder(bufio.NewReader(file))
	if err = decoder.Decode(&value); err != nil {
		return zero, decodeError(path, err)
	}

	if _, err = decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return zero, &JSONParseError{Path: path, Err: err}
	}

	if err = validate(&value); err != nil {
		return zero, &JSONParseError{Path: path, Err: err}
	}

	return value, nil
}

// decodeError classifies a decoder failure. Errors coming from the
// underlying reader are I/O failures; everything else is a content failure.
func decodeError(path string, err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return &ReadFileError{Path: path, Err: err}
	}

	return &JSONParseError{Path: path, Err: err}
}

func validate[T any](value *T) error {
	if v, ok := any(value).(validator); ok {
		return v.Validate()
	}
	if v, ok := any(*value).(validator); ok {
		return v.Validate()
	}

	return nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
