package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// EncodeRenderer prints encoded parameter lists
type EncodeRenderer struct {
	out io.Writer
}

// NewEncodeRenderer creates a new encode renderer
func NewEncodeRenderer(out io.Writer) *EncodeRenderer {
	return &EncodeRenderer{out: out}
}

// Render prints the parameter list in the form the node accepts
func (r *EncodeRenderer) Render(result *usecase.EncodeResult) error {
	if result.Output != "" {
		_, err := fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %d parameters to %s", len(result.Params), result.Output)))
		return err
	}

	data, err := json.MarshalIndent(result.Params, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}
