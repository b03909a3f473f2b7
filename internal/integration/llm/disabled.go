package llm

import "context"

// DisabledConnector stands in for a backend whose configuration is incomplete
type DisabledConnector struct {
	err error
}

func NewDisabledConnector(err error) *DisabledConnector {
	return &DisabledConnector{err: err}
}

func (d *DisabledConnector) Generate(_ context.Context, _ string) (string, error) {
	return "", d.err
}
