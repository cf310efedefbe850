package coverage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kevinpostal/katamari-devtools/internal/logger"
)

// ErrNoCoverage is returned when neither report artifact exists on disk.
var ErrNoCoverage = errors.New("no coverage reports found")

// LoadError reports a failed read, parse, or schema check for one artifact.
type LoadError struct {
	Path   string
	Reason error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load coverage report %s: %v", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Reason
}

// LoadSummary reads and decodes a coverage-summary.json document.
// The document is schema-checked before decoding; a missing "total" entry
// or a malformed metric block is a load failure, not a panic later on.
func LoadSummary(path string) (SummaryDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: err}
	}

	if err := validateSummary(data); err != nil {
		return nil, &LoadError{Path: path, Reason: err}
	}

	var doc SummaryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Reason: err}
	}

	return doc, nil
}

// LoadDetail reads and decodes a coverage-final.json document. Missing
// s/f/b submaps decode to nil maps, which the extractor treats as empty.
func LoadDetail(path string) (DetailDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: err}
	}

	var doc DetailDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Reason: err}
	}

	return doc, nil
}

// LoadReports loads whichever of the two artifacts exist.
//
// Absence of one artifact is fine: the analyses that need it skip
// themselves. Absence of both is ErrNoCoverage. A file that exists but
// cannot be parsed is always fatal.
func LoadReports(summaryPath, detailPath string) (SummaryDocument, DetailDocument, error) {
	var (
		summary SummaryDocument
		detail  DetailDocument
	)

	if _, err := os.Stat(summaryPath); err == nil {
		summary, err = LoadSummary(summaryPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Debug("summary report not found at %s", summaryPath)
	}

	if _, err := os.Stat(detailPath); err == nil {
		detail, err = LoadDetail(detailPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Debug("detail report not found at %s", detailPath)
	}

	if summary == nil && detail == nil {
		return nil, nil, fmt.Errorf("%w (looked for %s and %s)", ErrNoCoverage, summaryPath, detailPath)
	}

	return summary, detail, nil
}
