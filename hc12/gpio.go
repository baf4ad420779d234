package hc12

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// GpioControlLine drives the module's SET pin through a Linux GPIO
// character device.
type GpioControlLine struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// RequestControlLine opens the GPIO chip at chipPath and requests the
// line at offset as an output, initially high (transparent regime).
func RequestControlLine(chipPath string, offset int) (*GpioControlLine, error) {
	chip, err := gpiocdev.NewChip(chipPath)
	if err != nil {
		return nil, fmt.Errorf("open GPIO chip %s: %w", chipPath, err)
	}

	line, err := chip.RequestLine(
		offset,
		gpiocdev.AsOutput(1),
		gpiocdev.WithConsumer("hc12-set"),
	)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request SET line %d: %w", offset, err)
	}

	return &GpioControlLine{chip: chip, line: line}, nil
}

func (g *GpioControlLine) SetHigh() error {
	return g.line.SetValue(1)
}

func (g *GpioControlLine) SetLow() error {
	return g.line.SetValue(0)
}

// Close releases the line and the chip.
func (g *GpioControlLine) Close() error {
	var errs []error
	if g.line != nil {
		if err := g.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close SET line: %w", err))
		}
		g.line = nil
	}
	if g.chip != nil {
		if err := g.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close GPIO chip: %w", err))
		}
		g.chip = nil
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
