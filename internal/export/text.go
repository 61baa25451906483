package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"takeaway/internal/domain"
)

const ExportFile = "orders_export.txt"

// WriteOrders renders orders as a plain-text report, one numbered block per
// order in the given sequence.
func WriteOrders(w io.Writer, orders []*domain.Order, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "TAKEAWAY ORDER EXPORT")
	fmt.Fprintf(bw, "Generated: %s\n", generatedAt.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(bw, "Total Orders: %d\n", len(orders))
	fmt.Fprintln(bw, strings.Repeat("=", 50))

	for i, order := range orders {
		fmt.Fprintf(bw, "\nOrder #%d\n", i+1)
		fmt.Fprintln(bw, order.String())
		fmt.Fprintln(bw, strings.Repeat("-", 30))
	}
	return bw.Flush()
}

// ToFile writes the report to dir/orders_export.txt and returns its path.
func ToFile(dir string, orders []*domain.Order, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WriteOrders(f, orders, generatedAt); err != nil {
		f.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}
