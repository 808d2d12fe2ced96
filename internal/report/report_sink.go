package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
)

// Artifact is a finished export, ready to stream or hand to a delivery
// transport.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Sink turns an aggregated table into a deliverable artifact. The delivery
// transport behind Deliver (filesystem drop, object store, mail) is
// interchangeable.
type Sink interface {
	Export(name string, table [][]string) (Artifact, error)
	Deliver(ctx context.Context, artifact Artifact, destination string) error
}

type csvSink struct{}

func NewCSVSink() Sink {
	return &csvSink{}
}

func (s *csvSink) Export(name string, table [][]string) (Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(table); err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Name:        name + ".csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func (s *csvSink) Deliver(ctx context.Context, artifact Artifact, destination string) error {
	if err := os.MkdirAll(destination, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(destination, artifact.Name), artifact.Data, 0o644)
}
