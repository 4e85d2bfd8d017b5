// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and overrides the
// matching entries of EnemyLibrary. Archetypes missing from the file keep
// their built-in stats.
func LoadEnemyDefinitions(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	defer file.Close()

	n, err := DecodeEnemyDefinitions(file, EnemyLibrary)
	if err != nil {
		return err
	}
	slog.Info("loaded enemy definitions", "path", path, "count", n)
	return nil
}

// DecodeEnemyDefinitions merges a JSON array of definitions into lib.
func DecodeEnemyDefinitions(r io.Reader, lib map[EnemyType]EnemyDefinition) (int, error) {
	var enemyDefs []EnemyDefinition
	if err := json.NewDecoder(r).Decode(&enemyDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for _, def := range enemyDefs {
		if def.ID == "" {
			return 0, fmt.Errorf("enemy definition without id")
		}
		if def.HP <= 0 {
			return 0, fmt.Errorf("enemy %q: hp must be positive", def.ID)
		}
		lib[def.ID] = def
	}
	return len(enemyDefs), nil
}
