package export

import (
	"fmt"
	"os"
	"path/filepath"

	"takeaway/internal/domain"

	"github.com/skip2/go-qrcode"
)

type SlipGenerator interface {
	Generate(order *domain.Order) ([]byte, error)
}

// DefaultSlipGenerator encodes the delivery slip text as a PNG QR code.
type DefaultSlipGenerator struct {
	Size int
}

func (g DefaultSlipGenerator) Generate(order *domain.Order) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(SlipText(order), qrcode.Medium, size)
}

func SlipText(order *domain.Order) string {
	return fmt.Sprintf("order:%s\ncustomer:%s\ncontact:%s\naddress:%s\ntotal:%s",
		order.ID(), order.CustomerName(), order.ContactNumber(), order.DeliveryAddress(),
		domain.FormatPrice(order.TotalCost()))
}

// WriteSlip stores the slip image as dir/slip-<order id>.png.
func WriteSlip(dir string, order *domain.Order, gen SlipGenerator) (string, error) {
	png, err := gen.Generate(order)
	if err != nil {
		return "", fmt.Errorf("generate slip for %s: %w", order.ID(), err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, "slip-"+order.ID()+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write slip: %w", err)
	}
	return path, nil
}
