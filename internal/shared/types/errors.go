package types

import "errors"

var (
	ErrMissingStreamName = errors.New("no Firehose delivery stream configured. Set FIREHOSE_STREAM_NAME or --stream")
	ErrNoRegionsResolved = errors.New("could not resolve any region to audit")
)
