package filesystem

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

// Watch streams scripts as they appear under the root directory.
// Only Create and Write events for matching extensions are reported.
// The channel closes when the context is cancelled.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.RawScript, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(c.root); err != nil {
		watcher.Close()
		return nil, err
	}

	scripts := make(chan domain.RawScript)

	go func() {
		defer close(scripts)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !c.wantFile(event.Name) {
					continue
				}

				raw, err := c.readScript(event.Name)
				if err != nil {
					logger.Warn("watch: skipping %s: %v", event.Name, err)
					continue
				}

				select {
				case scripts <- raw:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch: %v", err)
			}
		}
	}()

	return scripts, nil
}
