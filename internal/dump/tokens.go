package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"github.com/zesterer/ir/internal/tokens"
)

// TokenRecord is the serialised form of a token
type TokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Class  string `json:"class" yaml:"class"`
	Value  string `json:"value" yaml:"value"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Length int    `json:"length" yaml:"length"`
}

func tokenRecords(toks []tokens.Token) []TokenRecord {
	records := make([]TokenRecord, len(toks))
	for i, tok := range toks {
		records[i] = TokenRecord{
			Kind:   string(tok.Kind),
			Class:  tok.Class().String(),
			Value:  tok.Value,
			Line:   tok.Range.Start.Line,
			Column: tok.Range.Start.Column,
			Length: tok.Range.Length,
		}
	}
	return records
}

// Tokens writes the token stream of path in the given format.
func Tokens(w io.Writer, path string, toks []tokens.Token, format Format) error {
	switch format {
	case Text:
		for _, tok := range toks {
			tok.Debug(w, path)
		}
		return nil
	case Table:
		_, err := fmt.Fprintln(w, tokenTable(toks).Render())
		return err
	case JSON:
		return encodeJSON(w, tokenRecords(toks))
	case YAML:
		return encodeYAML(w, tokenRecords(toks))
	}
	return errors.Errorf("format %q is not supported for tokens", format)
}

func tokenTable(toks []tokens.Token) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("POS", "KIND", "CLASS", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style { return cell })

	for _, tok := range toks {
		t.Row(
			fmt.Sprintf("%d:%d", tok.Range.Start.Line, tok.Range.Start.Column),
			string(tok.Kind),
			tok.Class().String(),
			strconv.Quote(tok.Value),
		)
	}
	return t
}
