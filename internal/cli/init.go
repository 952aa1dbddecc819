package cli

import (
	"fmt"

	"github.com/selquery/selq/internal/config"
)

// Init writes a default selq.yaml into the given directory
func Init(dir string) error {
	path, err := config.WriteDefault(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
