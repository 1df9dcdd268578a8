// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates
//              using fsnotify events.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
)

// startWatching starts monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if strings.TrimSpace(c.filePath) == "" {
		return pcerror.New("file path required for watching").
			WithCode(pcerror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return pcerror.Wrap(err, "failed to create file watcher").
			WithCode(pcerror.CodeConfigError).
			WithOperation("config.startWatching")
	}
	defer watcher.Close()

	// Watch the directory rather than the file itself: editors and
	// configuration management tools often replace the file (rename +
	// create), which drops a watch registered on the file directly.
	dir := filepath.Dir(c.filePath)
	if err := watcher.Add(dir); err != nil {
		return pcerror.Wrap(err, "failed to watch config directory").
			WithCode(pcerror.CodeConfigError).
			WithOperation("config.startWatching").
			WithDetail("directory", dir)
	}

	target := filepath.Clean(c.filePath)

	for {
		if !c.IsWatching() {
			return nil
		}

		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Check the modification time to suppress duplicate events
			fileInfo, err := os.Stat(c.filePath)
			if err != nil {
				// File might have been deleted or moved
				continue
			}

			c.mu.RLock()
			lastModified := c.lastModified
			c.mu.RUnlock()

			if fileInfo.ModTime().After(lastModified) {
				// File was modified - reload configuration
				if err := c.reload(); err != nil {
					// Keep watching; the old configuration stays active
					continue
				}
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; keep watching
		}
	}
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	// Read and parse the updated file
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return pcerror.Wrap(err, "failed to read config file during reload").
			WithCode(pcerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return pcerror.Wrap(err, "failed to parse config file during reload").
			WithCode(pcerror.CodeInvalidInput).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	// Create a copy of the old configuration for comparison
	c.mu.Lock()
	oldConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	// Update the configuration
	c.data = newData
	fileInfo, _ := os.Stat(c.filePath)
	if fileInfo != nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Get watchers (copy to avoid holding lock during callbacks)
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)
	c.mu.Unlock()

	// Notify all watchers
	newConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
