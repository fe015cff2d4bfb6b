// Package wizard reads and writes wizard files: the positional, one value
// per line dump of a Parameters record used to save and restore a
// footprint's inputs.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/atomicfile"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

var (
	// ErrMalformedWizardFile is returned when a wizard file cannot be read:
	// an I/O error, a missing line or a value that is not a number at all.
	ErrMalformedWizardFile = errors.New("wizard: malformed wizard file")

	// ErrLineBreak is returned by Write for a text value spanning lines.
	ErrLineBreak = errors.New("wizard: text value contains a line break")
)

// Write dumps p one field per line in wizard order.
func Write(w io.Writer, p *params.Parameters) error {
	bw := bufio.NewWriter(w)
	for _, f := range params.Fields() {
		v := f.Format(p)
		if strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("%w: %s", ErrLineBreak, f.Name)
		}
		bw.WriteString(v)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("wizard: write: %w", err)
	}
	return nil
}

// Read parses a wizard file. Recoverable problems (non-finite numbers,
// unknown enumeration names, trailing lines) are logged as warnings on
// logger, which may be nil. On error no Parameters are returned.
func Read(r io.Reader, logger *log.Logger) (*params.Parameters, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	warn := params.WarnFunc(logger.Warn)

	var p params.Parameters
	sc := bufio.NewScanner(r)
	line := 0
	for _, f := range params.Fields() {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedWizardFile, line+1, err)
			}
			return nil, fmt.Errorf("%w: line %d: missing %s", ErrMalformedWizardFile, line+1, f.Name)
		}
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if err := f.Parse(&p, text, warn); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedWizardFile, line, err)
		}
	}

	extra := 0
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			extra++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedWizardFile, line+1, err)
	}
	if extra > 0 {
		logger.Warn("ignoring trailing lines", "count", extra)
	}
	return &p, nil
}

// ReadFile reads the wizard file at path.
func ReadFile(path string, logger *log.Logger) (*params.Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWizardFile, err)
	}
	defer f.Close()

	p, err := Read(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteFile replaces the file at path with the wizard dump of p.
func WriteFile(path string, p *params.Parameters) error {
	return atomicfile.WriteFile(path, 0o644, func(w io.Writer) error {
		return Write(w, p)
	})
}
