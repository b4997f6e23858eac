package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// writeFile writes content, creating the parent folder when needed
func (p *implProcessor) writeFile(ctx context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	p.logger.Info(ctx, "Saved to: %s", path)
	return nil
}

// Archive moves a processed transcript to the archived folder
func (p *implProcessor) Archive(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
