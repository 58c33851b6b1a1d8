package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/seamusw/cubesolver/internal/ble"
)

// scanForCube scans for GoCube devices. A single 5-second scan is
// sufficient for BLE discovery on most platforms.
func scanForCube() (*ble.Client, []ble.ScanResult, error) {
	fmt.Println("Scanning for GoCube devices...")

	client, err := ble.NewClient(newLogger())
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, err := client.Scan(ctx, 5*time.Second)
	if err != nil {
		return client, nil, fmt.Errorf("scan failed: %w", err)
	}

	if len(results) == 0 {
		return client, nil, nil
	}

	fmt.Printf("Found: %s\n", results[0].Name)
	return client, results, nil
}
