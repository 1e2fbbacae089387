package output

import (
	"io"

	"github.com/salarycalc/salary-calculator/internal/domain"
)

// GenerateReport renders calc in the named format and writes it to w.
// Unknown formats return ErrUnsupportedFormat listing the available names and aliases.
func GenerateReport(w io.Writer, calc *domain.Calculation, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(calc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders calc into a timestamped file in dir and returns its path.
// The "all" format writes the console, detailed CSV and HTML reports and returns every path.
func SaveReport(calc *domain.Calculation, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console-lite", "detailed-csv", "html"} {
			p, err := WriteFormatted(GetFormatterByName(name), calc, dir, ExtensionFor(name))
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	p, err := WriteFormatted(f, calc, dir, ExtensionFor(format))
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}
