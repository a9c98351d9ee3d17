package textfile

import (
	"fmt"
	"io"

	"github.com/npillmayer/strsplit"
)

// ReadConfig reads a configuration in the form of
//
//	# comment
//	KEY = VALUE
//
// Lines are split at the first '='; keys and values are trimmed. Blank lines and
// comment lines are skipped. Later lines override earlier ones with the same key.
func ReadConfig(r io.Reader) (map[string]string, error) {
	records, err := ReadRecords(r, Options{
		Delimiter:    "=",
		MaxSplits:    1,
		Trim:         true,
		SkipComments: true,
	})
	if err != nil {
		return nil, err
	}
	conf := make(map[string]string, len(records))
	for _, rec := range records {
		key := strsplit.Trim(rec.Field(0))
		if rec.Len() != 2 || key == "" {
			return nil, fmt.Errorf("line %d: %w", rec.Line, ErrMalformedLine)
		}
		conf[key] = strsplit.Trim(rec.Field(1))
	}
	return conf, nil
}

// LoadConfig reads a configuration file. See ReadConfig for the format.
func LoadConfig(name string) (map[string]string, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadConfig(file)
}
