package types

import "errors"

var (
	ErrUnsupportedSource       = errors.New("unsupported snapshot source. Use a file path, postgres://, sqlite:// or s3:// URL")
	ErrEmptySnapshot           = errors.New("snapshot contains no records")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	ErrNoSource                = errors.New("no snapshot source configured. Use --source or set CATERING_SOURCE")
)
