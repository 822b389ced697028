package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// BlocksRenderer renders block numbers
type BlocksRenderer struct {
	out io.Writer
}

// NewBlocksRenderer creates a new blocks renderer
func NewBlocksRenderer(out io.Writer) *BlocksRenderer {
	return &BlocksRenderer{out: out}
}

// Render prints the block number, and the previous one after an increase
func (r *BlocksRenderer) Render(result *usecase.BlockNumberResult) error {
	network := color.New(color.FgCyan).Sprint(result.Network)
	if result.Previous == nil {
		_, err := fmt.Fprintf(r.out, "%s block number: %d\n", network, result.Current)
		return err
	}
	_, err := fmt.Fprintf(r.out, "%s block number: %d → %d\n", network, *result.Previous, result.Current)
	return err
}
